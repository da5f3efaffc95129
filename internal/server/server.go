package server

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/library"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/validation"
)

// State is the latest evaluation of the watched project, as served to API
// and websocket clients.
type State struct {
	ProjectName string             `json:"project_name"`
	LoadError   string             `json:"load_error,omitempty"`
	Validation  *validation.Report `json:"validation,omitempty"`
	Results     []calc.Result      `json:"results"`
	SolvedAt    time.Time          `json:"solved_at"`
}

// Server is the local development server for interactive duct design. It
// re-solves the project whenever the project file changes on disk and pushes
// the new state to websocket clients.
type Server struct {
	projectDir string
	addr       string
	lib        *library.Library
	hub        *hub

	mu    sync.RWMutex
	proj  *project.Project
	state State
}

// New creates a server for the given project directory.
func New(projectDir, addr string) *Server {
	return &Server{
		projectDir: projectDir,
		addr:       addr,
		lib:        library.Standard(),
		hub:        newHub(),
	}
}

// Start launches the HTTP server and the project watcher. It blocks until
// the context is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if err := s.reload(); err != nil {
		log.WithError(err).Warn("initial project load failed")
	}

	w, err := newWatcher(s.projectDir, s.onProjectChange)
	if err != nil {
		return fmt.Errorf("creating project watcher: %w", err)
	}
	if err := w.Start(ctx); err != nil {
		return fmt.Errorf("starting project watcher: %w", err)
	}
	defer w.Stop()

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.routes(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":    s.addr,
			"project": s.projectDir,
		}).Info("ductsizer server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter()

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/project", s.handleProject).Methods("GET")
	api.HandleFunc("/validation", s.handleValidation).Methods("GET")
	api.HandleFunc("/results", s.handleResults).Methods("GET")
	api.HandleFunc("/library/fittings", s.handleFittings).Methods("GET")
	api.HandleFunc("/solve", s.handleSolve).Methods("POST")

	r.HandleFunc("/ws", s.serveWs)
	r.HandleFunc("/", s.handleIndex).Methods("GET")

	return r
}

// reload reloads the project file, revalidates it, and re-evaluates every
// system. A load failure keeps the previous project out of the state so
// clients see the error instead of stale results.
func (s *Server) reload() error {
	proj, err := project.LoadProject(s.projectDir)
	if err != nil {
		s.mu.Lock()
		s.proj = nil
		s.state = State{
			LoadError: err.Error(),
			Results:   []calc.Result{},
			SolvedAt:  time.Now().UTC(),
		}
		s.mu.Unlock()
		return err
	}

	report := validation.Validate(proj)
	ev := calc.NewEvaluator(s.lib, nil)
	results := make([]calc.Result, len(proj.Systems))
	for i, sys := range proj.Systems {
		results[i] = ev.EvaluateSystem(sys)
	}

	s.mu.Lock()
	s.proj = proj
	s.state = State{
		ProjectName: proj.Name,
		Validation:  report,
		Results:     results,
		SolvedAt:    time.Now().UTC(),
	}
	s.mu.Unlock()

	return nil
}

// snapshot returns a copy of the current state for serialization.
func (s *Server) snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// onProjectChange re-solves the project and pushes the new state to all
// websocket clients.
func (s *Server) onProjectChange() {
	if err := s.reload(); err != nil {
		log.WithError(err).Error("project reload failed")
	} else {
		log.WithField("project", s.projectDir).Info("project reloaded")
	}
	s.hub.broadcast(s.snapshot())
}
