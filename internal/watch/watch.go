// Package watch reports changes to application vhost files in the apps
// directory.
package watch

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	apperrors "github.com/ksyq12/passengerpane/internal/errors"
	"github.com/ksyq12/passengerpane/internal/logger"
)

// Op is the kind of change seen on a vhost file.
type Op int

const (
	Changed Op = iota
	Removed
)

func (o Op) String() string {
	if o == Removed {
		return "removed"
	}
	return "changed"
}

// Event is a change to one vhost file.
type Event struct {
	File string
	Op   Op
}

// Watcher watches one directory for files ending in suffix.
type Watcher struct {
	fsw       *fsnotify.Watcher
	dir       string
	suffix    string
	closeOnce sync.Once
	closeErr  error
}

// New starts watching dir.
func New(dir, suffix string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, "failed to create watcher", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, apperrors.Wrap(apperrors.ErrCodeConfig, "failed to watch "+dir, err)
	}
	return &Watcher{fsw: fsw, dir: dir, suffix: suffix}, nil
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	w.closeOnce.Do(func() {
		w.closeErr = w.fsw.Close()
	})
	return w.closeErr
}

// Run delivers events to fn until ctx is done or the watcher fails. The
// watcher is closed when Run returns.
func (w *Watcher) Run(ctx context.Context, fn func(Event)) error {
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if e, ok := w.translate(ev); ok {
				fn(e)
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return apperrors.Wrap(apperrors.ErrCodeInternal, "watch "+w.dir, err)
		}
	}
}

// translate maps fsnotify ops to events; chmod-only changes and files
// without the suffix are dropped.
func (w *Watcher) translate(ev fsnotify.Event) (Event, bool) {
	name := filepath.Base(ev.Name)
	if strings.HasPrefix(name, ".") || !strings.HasSuffix(name, w.suffix) {
		return Event{}, false
	}

	logger.DebugFields("watch event", logger.Fields{"file": ev.Name, "op": ev.Op.String()})

	switch {
	case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
		return Event{File: ev.Name, Op: Removed}, true
	case ev.Op.Has(fsnotify.Create), ev.Op.Has(fsnotify.Write):
		return Event{File: ev.Name, Op: Changed}, true
	default:
		return Event{}, false
	}
}
