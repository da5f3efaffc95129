package server

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"

	"github.com/collectifengineering-lang/wellness-MEP-Calulator-sub004/pkg/project"
)

// watcher watches a project directory and fires onChange once edits to the
// project file have settled past the debounce window. Editors often emit a
// burst of rename/write events per save; the debounce collapses them into a
// single re-solve.
type watcher struct {
	fsw      *fsnotify.Watcher
	dir      string
	onChange func()
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time

	stopCh chan struct{}
	doneCh chan struct{}
}

func newWatcher(dir string, onChange func()) (*watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &watcher{
		fsw:      fsw,
		dir:      dir,
		onChange: onChange,
		debounce: 500 * time.Millisecond,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching the project directory. Non-blocking; the event loop
// runs in a goroutine until Stop or context cancellation.
func (w *watcher) Start(ctx context.Context) error {
	if err := w.fsw.Add(w.dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.dir, err)
	}
	log.WithField("dir", w.dir).Debug("watching project directory")

	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit.
func (w *watcher) Stop() {
	close(w.stopCh)
	<-w.doneCh
	w.fsw.Close()
}

func (w *watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-w.stopCh:
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.WithError(err).Error("project watch error")

		case <-ticker.C:
			w.fireSettled()
		}
	}
}

func (w *watcher) handleEvent(event fsnotify.Event) {
	if filepath.Base(event.Name) != project.ProjectFileName {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

func (w *watcher) fireSettled() {
	w.mu.Lock()
	now := time.Now()
	fire := false
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			delete(w.pending, path)
			fire = true
		}
	}
	w.mu.Unlock()

	if fire {
		w.onChange()
	}
}
