package app

import (
	"context"
	"fmt"

	"github.com/corey/lenz/internal/domain/source"
	"github.com/corey/lenz/internal/ports"
)

// Watch re-displays a source each time its file changes, until ctx is
// canceled. Display operations run one at a time on the calling goroutine;
// the watcher callback only queues paths. The watcher is stopped on return.
// onResult, if set, is called after every re-display.
func (a *App) Watch(ctx context.Context, w ports.Watcher, sources []*source.Source, onResult func(source.Result)) error {
	if len(sources) == 0 {
		return nil
	}

	byPath := make(map[string][]*source.Source, len(sources))
	paths := make([]string, 0, len(sources))
	for _, src := range sources {
		if _, seen := byPath[src.Path()]; !seen {
			paths = append(paths, src.Path())
		}
		byPath[src.Path()] = append(byPath[src.Path()], src)
	}

	changed := make(chan string, len(paths))
	err := w.Watch(paths, func(path string) {
		select {
		case changed <- path:
		case <-ctx.Done():
		}
	})
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer func() {
		if err := w.Stop(); err != nil {
			a.log.Warn("watcher stop failed", "error", err)
		}
	}()
	a.log.Debug("watching", "files", len(paths))

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-changed:
			a.log.Debug("file changed", "path", path)
			for _, src := range byPath[path] {
				res, err := a.Display(ctx, src)
				if err != nil {
					return err
				}
				if ctx.Err() != nil {
					return nil
				}
				if onResult != nil {
					onResult(res)
				}
			}
		}
	}
}
