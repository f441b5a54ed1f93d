package glint

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports changes to one shader asset so callers can rebuild the
// program. Change notifications are delivered on a coalescing channel;
// the render loop polls it between frames and relinks on its own thread,
// since driver calls must stay on the context thread.
type Watcher struct {
	fw   *fsnotify.Watcher
	path string
	ch   chan struct{}
	done chan struct{}
}

// Watch starts watching the shader asset at path. The parent directory is
// watched rather than the file itself, because editors typically replace
// files by rename.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("glint: watch %q: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("glint: watch %q: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("glint: watch %q: %w", path, err)
	}

	w := &Watcher{
		fw:   fw,
		path: abs,
		ch:   make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			// Coalesce: one pending notification is enough.
			select {
			case w.ch <- struct{}{}:
			default:
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			Logger().Warn("glint: shader watcher error", "path", w.path, "err", err)
		}
	}
}

// Changed returns the notification channel. It receives at most one
// pending signal regardless of how many writes occurred since the last
// read.
func (w *Watcher) Changed() <-chan struct{} {
	return w.ch
}

// Close stops watching. The Changed channel stops receiving after Close
// returns.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}
