package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/calc"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/validation"
)

func writeProjectFile(t *testing.T, dir string, totalCfm int) {
	t.Helper()

	cfm := strconv.Itoa(totalCfm)
	content := `project_version: "1"
name: Test Project
systems:
  - id: ahu1
    name: AHU-1 Supply
    type: supply
    total_cfm: ` + cfm + `
    safety_factor: 0.25
    sections:
      - id: trunk
        name: Main trunk
        sort_order: 1
        type: straight
        shape: rectangular
        width_in: 24
        height_in: 12
        length_ft: 50
        material: galvanized_steel
        airflow_cfm: ` + cfm + `
        fittings:
          - type: elbow_90_smooth
            quantity: 2
`
	path := filepath.Join(dir, project.ProjectFileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func newTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()

	dir := t.TempDir()
	writeProjectFile(t, dir, 2000)

	s := New(dir, ":0")
	if err := s.reload(); err != nil {
		t.Fatalf("reload() error = %v", err)
	}

	ts := httptest.NewServer(s.routes())
	t.Cleanup(ts.Close)

	return s, ts
}

func getJSON(t *testing.T, url string, v any) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s error = %v", url, err)
	}
	defer resp.Body.Close()

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("decoding %s response: %v", url, err)
		}
	}
	return resp
}

func TestHandleProject(t *testing.T) {
	_, ts := newTestServer(t)

	var proj project.Project
	resp := getJSON(t, ts.URL+"/api/project", &proj)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if proj.Name != "Test Project" {
		t.Errorf("project name = %q, want %q", proj.Name, "Test Project")
	}
	if len(proj.Systems) != 1 || proj.Systems[0].ID != "ahu1" {
		t.Errorf("systems = %+v, want one system ahu1", proj.Systems)
	}
}

func TestHandleProjectMissing(t *testing.T) {
	s := New(t.TempDir(), ":0")
	s.reload()

	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	resp := getJSON(t, ts.URL+"/api/project", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusNotFound)
	}
}

func TestHandleValidation(t *testing.T) {
	_, ts := newTestServer(t)

	var report validation.Report
	resp := getJSON(t, ts.URL+"/api/validation", &report)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if !report.Valid {
		t.Errorf("report.Valid = false, errors: %+v", report.Errors)
	}
}

func TestHandleResults(t *testing.T) {
	_, ts := newTestServer(t)

	var st State
	resp := getJSON(t, ts.URL+"/api/results", &st)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if st.ProjectName != "Test Project" {
		t.Errorf("state.ProjectName = %q, want %q", st.ProjectName, "Test Project")
	}
	if len(st.Results) != 1 {
		t.Fatalf("state.Results has %d entries, want 1", len(st.Results))
	}
	if st.Results[0].SystemID != "ahu1" {
		t.Errorf("result system id = %q, want %q", st.Results[0].SystemID, "ahu1")
	}
	if st.Results[0].TotalLossInWc <= 0 {
		t.Errorf("result total loss = %v, want > 0", st.Results[0].TotalLossInWc)
	}
}

func TestHandleFittings(t *testing.T) {
	_, ts := newTestServer(t)

	var fittings []calc.FittingSpec
	resp := getJSON(t, ts.URL+"/api/library/fittings", &fittings)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	if len(fittings) == 0 {
		t.Fatal("fittings list is empty")
	}

	found := false
	for _, f := range fittings {
		if f.ID == "elbow_90_smooth" {
			found = true
		}
	}
	if !found {
		t.Error("fittings list missing elbow_90_smooth")
	}
}

func TestHandleSolveAfterEdit(t *testing.T) {
	s, ts := newTestServer(t)

	writeProjectFile(t, s.projectDir, 1500)

	resp, err := http.Post(ts.URL+"/api/solve", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/solve error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var st State
	if err := json.NewDecoder(resp.Body).Decode(&st); err != nil {
		t.Fatalf("decoding solve response: %v", err)
	}
	if len(st.Results) != 1 {
		t.Fatalf("state.Results has %d entries, want 1", len(st.Results))
	}
	if st.Results[0].TotalCfm != 1500 {
		t.Errorf("result total cfm = %v, want 1500 after edit", st.Results[0].TotalCfm)
	}
}

func TestHandleSolveMissingProject(t *testing.T) {
	s := New(t.TempDir(), ":0")
	s.reload()

	ts := httptest.NewServer(s.routes())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/api/solve", "application/json", nil)
	if err != nil {
		t.Fatalf("POST /api/solve error = %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
}

func TestWebsocketReceivesState(t *testing.T) {
	s, ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("dialing %s: %v", wsURL, err)
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))

	var st State
	if err := conn.ReadJSON(&st); err != nil {
		t.Fatalf("reading initial state: %v", err)
	}
	if st.ProjectName != "Test Project" {
		t.Errorf("initial state project = %q, want %q", st.ProjectName, "Test Project")
	}
	if s.hub.count() != 1 {
		t.Errorf("hub count = %d, want 1", s.hub.count())
	}

	writeProjectFile(t, s.projectDir, 1200)
	s.onProjectChange()

	var updated State
	if err := conn.ReadJSON(&updated); err != nil {
		t.Fatalf("reading broadcast state: %v", err)
	}
	if len(updated.Results) != 1 || updated.Results[0].TotalCfm != 1200 {
		t.Errorf("broadcast state results = %+v, want total cfm 1200", updated.Results)
	}
}

func TestWatcherFiresOnProjectChange(t *testing.T) {
	dir := t.TempDir()
	writeProjectFile(t, dir, 2000)

	fired := make(chan struct{}, 1)
	w, err := newWatcher(dir, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	writeProjectFile(t, dir, 1500)

	select {
	case <-fired:
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not fire after project file change")
	}
}

func TestWatcherIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	fired := make(chan struct{}, 1)
	w, err := newWatcher(dir, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("newWatcher() error = %v", err)
	}
	w.debounce = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := w.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case <-fired:
		t.Fatal("watcher fired for a non-project file")
	case <-time.After(500 * time.Millisecond):
	}
}
