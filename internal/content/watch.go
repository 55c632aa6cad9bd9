package content

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of events an editor produces per save.
const DefaultDebounce = 300 * time.Millisecond

// Watcher re-imports content files when they change on disk and notifies
// subscribers once a batch has been applied.
type Watcher struct {
	importer *Importer
	root     string
	pattern  string
	debounce time.Duration
	log      *zap.Logger

	mu       sync.Mutex
	watcher  *fsnotify.Watcher
	pending  map[string]time.Time
	onChange []func(ImportResult)
	running  bool
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewWatcher creates a watcher for files under root matching pattern.
func NewWatcher(importer *Importer, root, pattern string, log *zap.Logger) *Watcher {
	if pattern == "" {
		pattern = DefaultContentGlob
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		importer: importer,
		root:     root,
		pattern:  pattern,
		debounce: DefaultDebounce,
		log:      log,
		pending:  make(map[string]time.Time),
	}
}

// OnChange registers a callback run after each re-import that changed or
// removed at least one document.
func (w *Watcher) OnChange(f func(ImportResult)) {
	w.mu.Lock()
	w.onChange = append(w.onChange, f)
	w.mu.Unlock()
}

// Start begins watching root and every directory below it. It returns once
// the watches are in place; events are handled on a background goroutine
// until ctx is cancelled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return fw.Add(path)
		}
		return nil
	})
	if err != nil {
		fw.Close()
		return err
	}

	w.watcher = fw
	w.running = true
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	go w.run(ctx, fw, w.stopCh, w.doneCh)

	w.log.Info("watching content", zap.String("root", w.root), zap.String("pattern", w.pattern))
	return nil
}

// Stop ends the watch and waits for the event loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	stopCh, doneCh, fw := w.stopCh, w.doneCh, w.watcher
	w.mu.Unlock()

	close(stopCh)
	<-doneCh
	if err := fw.Close(); err != nil {
		w.log.Warn("closing content watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context, fw *fsnotify.Watcher, stopCh, doneCh chan struct{}) {
	defer close(doneCh)
	defer w.release(fw)

	tick := time.NewTicker(w.debounce / 3)
	defer tick.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case ev, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handle(fw, ev)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("content watcher error", zap.Error(err))
		case <-tick.C:
			w.flush(ctx)
		}
	}
}

// release closes fw when the event loop exits on its own, which happens
// when the start context is cancelled. After Stop it is a no-op.
func (w *Watcher) release(fw *fsnotify.Watcher) {
	w.mu.Lock()
	if !w.running || w.watcher != fw {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.watcher = nil
	w.mu.Unlock()

	if err := fw.Close(); err != nil {
		w.log.Warn("closing content watcher", zap.Error(err))
	}
}

func (w *Watcher) handle(fw *fsnotify.Watcher, ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
		return
	}
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := fw.Add(ev.Name); err != nil {
				w.log.Warn("watching new directory", zap.String("dir", ev.Name), zap.Error(err))
			}
			return
		}
	}
	rel, err := filepath.Rel(w.root, ev.Name)
	if err != nil {
		return
	}
	rel = filepath.ToSlash(rel)
	if ok, _ := doublestar.Match(w.pattern, rel); !ok {
		return
	}

	w.mu.Lock()
	w.pending[rel] = time.Now()
	w.mu.Unlock()
}

// flush imports files whose last event is older than the debounce window.
func (w *Watcher) flush(ctx context.Context) {
	w.mu.Lock()
	now := time.Now()
	var ready []string
	for rel, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, rel)
			delete(w.pending, rel)
		}
	}
	callbacks := append([]func(ImportResult){}, w.onChange...)
	w.mu.Unlock()

	if len(ready) == 0 {
		return
	}

	fsys := os.DirFS(w.root)
	var res ImportResult
	for _, rel := range ready {
		if _, err := fs.Stat(fsys, rel); errors.Is(err, fs.ErrNotExist) {
			// Deleted or renamed away.
			n, err := w.importer.RemoveFile(ctx, rel)
			if err != nil {
				w.log.Warn("removing content file failed", zap.String("file", rel), zap.Error(err))
				continue
			}
			res.Removed += n
			continue
		}
		n, removed, skipped, err := w.importer.importFile(ctx, fsys, rel)
		if err != nil {
			// Keep serving the last good content.
			w.log.Warn("re-importing content file failed", zap.String("file", rel), zap.Error(err))
			continue
		}
		res.Files++
		if skipped {
			res.Skipped++
		}
		res.Documents += n
		res.Removed += removed
	}
	if res.Documents == 0 && res.Removed == 0 {
		return
	}
	w.log.Info("content reloaded",
		zap.Int("files", res.Files),
		zap.Int("documents", res.Documents),
		zap.Int("removed", res.Removed),
	)
	for _, f := range callbacks {
		f(res)
	}
}
