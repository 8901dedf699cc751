package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/fsnotify/fsnotify"
)

// reloadDebounce is how long the watcher waits after the last file event before reloading.
const reloadDebounce = 100 * time.Millisecond

// Watcher reloads a configuration file whenever it changes on disk.
// Parsed configurations arrive on Updates and load failures on Errors. Both channels are
// buffered and never closed; stop reading after Close.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	pool    worker.DynamicWorkerPool

	Updates chan *Config
	Errors  chan error

	closeCh chan struct{}
	once    sync.Once
	taskID  int
}

// NewWatcher starts watching path. The containing directory is watched so editors that
// replace the file via rename are still picked up.
//
// Parameters:
//   - path: the configuration file to watch
//
// Returns:
//   - *Watcher: the running watcher
//   - error: error if the path cannot be resolved or watched
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	// a single worker keeps reloads in file-event order
	w := &Watcher{
		path:    abs,
		watcher: fw,
		pool:    worker.NewDynamicWorkerPool(1, 8, 1*time.Second),
		Updates: make(chan *Config, 4),
		Errors:  make(chan error, 4),
		closeCh: make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
//
// Returns:
//   - string: the watched file path
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and its reload worker. Safe to call multiple times.
//
// Returns:
//   - error: error from closing the underlying file watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		w.pool.Stop()
	})
	return err
}

func (w *Watcher) run() {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(reloadDebounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(reloadDebounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(fmt.Errorf("config watcher: %w", err))
		case <-w.closeCh:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// reload parses the file on the worker pool and publishes the result.
func (w *Watcher) reload() {
	id := w.taskID
	w.taskID++
	w.pool.SubmitTask(worker.Task{
		ID: id,
		Do: func() (any, error) {
			cfg, err := Load(w.path)
			if err != nil {
				w.sendError(err)
				return nil, err
			}
			select {
			case w.Updates <- cfg:
			case <-w.closeCh:
			}
			return cfg, nil
		},
	})
}

func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	case <-w.closeCh:
	}
}
