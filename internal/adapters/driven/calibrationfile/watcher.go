package calibrationfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/orgair-labs/orgair-cli/internal/core/domain"
	"github.com/orgair-labs/orgair-cli/internal/logger"
)

// EventType classifies a calibration directory change.
type EventType string

const (
	// EventLoaded means a file was created or rewritten and parsed
	// successfully.
	EventLoaded EventType = "loaded"

	// EventRemoved means a calibration file was deleted or renamed away.
	EventRemoved EventType = "removed"

	// EventInvalid means a file changed but failed parsing or validation.
	EventInvalid EventType = "invalid"
)

// Event is one observed change to a calibration file.
type Event struct {
	Type EventType

	// Path is the file the event refers to.
	Path string

	// Calibration is set for EventLoaded.
	Calibration *domain.SectorCalibration

	// Err is set for EventInvalid.
	Err error
}

// Watcher streams calibration file changes from a directory.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
}

// NewWatcher creates a watcher over the given calibration directory.
func NewWatcher(dir string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{dir: dir, watcher: fsWatcher}, nil
}

// Watch emits an Event for every relevant file change until the context
// is cancelled. The returned channel is closed when watching stops.
func (w *Watcher) Watch(ctx context.Context) <-chan Event {
	events := make(chan Event)

	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case fsEvent, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				event := w.handleFsEvent(fsEvent)
				if event == nil {
					continue
				}
				select {
				case events <- *event:
				case <-ctx.Done():
					return
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				logger.Error("calibration watch error: %v", err)
			}
		}
	}()

	return events
}

// Close stops the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// handleFsEvent translates a filesystem event into a calibration event,
// or nil when the event is irrelevant (directories, hidden files, foreign
// extensions, chmod-only changes).
func (w *Watcher) handleFsEvent(fsEvent fsnotify.Event) *Event {
	if !isCalibrationFile(filepath.Base(fsEvent.Name)) {
		return nil
	}

	switch {
	case fsEvent.Op.Has(fsnotify.Remove) || fsEvent.Op.Has(fsnotify.Rename):
		return &Event{Type: EventRemoved, Path: fsEvent.Name}

	case fsEvent.Op.Has(fsnotify.Create) || fsEvent.Op.Has(fsnotify.Write):
		sc, err := Load(fsEvent.Name)
		if err != nil {
			return &Event{Type: EventInvalid, Path: fsEvent.Name, Err: err}
		}
		return &Event{Type: EventLoaded, Path: fsEvent.Name, Calibration: &sc}

	default:
		return nil
	}
}
