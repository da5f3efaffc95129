package server

import (
	"encoding/json"
	"fmt"
	"net/http"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>Ductsizer</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>Ductsizer</h1>
<p>Live static pressure results at <code>/api/results</code>, updates on <code>/ws</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleProject(w http.ResponseWriter, _ *http.Request) {
	s.mu.RLock()
	proj := s.proj
	loadErr := s.state.LoadError
	s.mu.RUnlock()

	if proj == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": loadErr})
		return
	}
	writeJSON(w, http.StatusOK, proj)
}

func (s *Server) handleValidation(w http.ResponseWriter, _ *http.Request) {
	st := s.snapshot()
	if st.Validation == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": st.LoadError})
		return
	}
	writeJSON(w, http.StatusOK, st.Validation)
}

func (s *Server) handleResults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.snapshot())
}

func (s *Server) handleFittings(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.lib.Fittings())
}

// handleSolve forces a re-solve, mirroring what a project file change does.
func (s *Server) handleSolve(w http.ResponseWriter, _ *http.Request) {
	s.onProjectChange()

	st := s.snapshot()
	if st.LoadError != "" {
		writeJSON(w, http.StatusUnprocessableEntity, st)
		return
	}
	writeJSON(w, http.StatusOK, st)
}
