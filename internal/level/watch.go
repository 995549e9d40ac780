package level

import (
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounce is how long a level file must stay quiet before its change is
// reported. Editors emit several writes per save; only the last counts.
const debounce = 100 * time.Millisecond

// Watcher reports changes to level files in a set of directories.
type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the given directories.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, err
		}
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

// Close stops the watcher and closes its channels.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

// settled is a debounce timer firing for one generation of a path.
type settled struct {
	path string
	gen  int
}

func (w *Watcher) run() {
	defer close(w.Events)
	defer close(w.Errors)

	ready := make(chan settled)
	gens := make(map[string]int)
	timers := make(map[string]*time.Timer)
	defer func() {
		for _, t := range timers {
			t.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !IsLevelFile(event.Name) {
				continue
			}
			name := event.Name
			gens[name]++
			gen := gens[name]
			if t, ok := timers[name]; ok {
				t.Stop()
			}
			timers[name] = time.AfterFunc(debounce, func() {
				select {
				case ready <- settled{path: name, gen: gen}:
				case <-w.closeCh:
				}
			})
		case s := <-ready:
			// A timer that fired while a newer write was arriving.
			if s.gen != gens[s.path] {
				continue
			}
			delete(timers, s.path)
			select {
			case w.Events <- s.path:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}
