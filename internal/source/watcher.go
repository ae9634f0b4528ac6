package source

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when a Watcher is created with a non-positive delay.
const DefaultDebounce = 300 * time.Millisecond

// Change is one debounced batch of file events touching the source.
type Change struct {
	Paths []string
	At    time.Time
}

// Watcher turns file system events under a source's roots into debounced
// Change notifications.
type Watcher struct {
	target   Watchable
	fsw      *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	pendingMu sync.Mutex
	pending   map[string]fsnotify.Op

	changes chan Change
}

// NewWatcher creates a watcher for target. Start must be called to begin.
func NewWatcher(target Watchable, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		target:   target,
		fsw:      fsw,
		debounce: debounce,
		logger:   logger,
		pending:  make(map[string]fsnotify.Op),
		changes:  make(chan Change, 1),
	}, nil
}

// Changes is closed when the watcher stops.
func (w *Watcher) Changes() <-chan Change {
	return w.changes
}

// Start adds watches for every root and processes events until ctx is done
// or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	for _, root := range w.target.WatchRoots() {
		if err := w.fsw.Add(root); err != nil {
			w.fsw.Close()
			return err
		}
		w.logger.Debug("watching directory", "path", root)
	}
	go w.processEvents(ctx)
	return nil
}

// Stop releases the underlying watcher.
func (w *Watcher) Stop() error {
	return w.fsw.Close()
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer close(w.changes)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
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
			w.logger.Error("watcher error", "error", err)
		case <-ticker.C:
			w.flush(ctx)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}
	if event.Has(fsnotify.Create) && isDir(event.Name) {
		if err := w.fsw.Add(event.Name); err != nil {
			w.logger.Warn("failed to watch new directory", "path", event.Name, "error", err)
		}
		return
	}
	if !w.target.Matches(event.Name) {
		return
	}
	w.pendingMu.Lock()
	w.pending[event.Name] |= event.Op
	w.pendingMu.Unlock()
}

func (w *Watcher) flush(ctx context.Context) {
	w.pendingMu.Lock()
	if len(w.pending) == 0 {
		w.pendingMu.Unlock()
		return
	}
	paths := make([]string, 0, len(w.pending))
	for p := range w.pending {
		paths = append(paths, p)
	}
	w.pending = make(map[string]fsnotify.Op)
	w.pendingMu.Unlock()

	slices.Sort(paths)
	change := Change{Paths: paths, At: time.Now()}
	select {
	case w.changes <- change:
		w.logger.Debug("source changed", "paths", paths)
	case <-ctx.Done():
	default:
		// A reload is already queued; it will read the latest data.
		w.logger.Debug("change coalesced", "paths", paths)
	}
}
