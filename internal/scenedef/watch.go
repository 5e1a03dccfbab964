package scenedef

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// Watch reloads the scene file whenever it is written and delivers each valid result on
// the returned channel. Files that fail to parse are logged and skipped. Only the latest
// unread scene is kept. The channel is closed when ctx is done.
//
// The directory is watched rather than the file so that editors which replace the file on
// save keep being followed.
func Watch(ctx context.Context, path string, log zerolog.Logger) (<-chan *Scene, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("scenedef: watch: %w", err)
	}
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, fmt.Errorf("scenedef: watch: %w", err)
	}

	out := make(chan *Scene, 1)
	go func() {
		defer close(out)
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != path || !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				s, err := Load(path)
				if err != nil {
					log.Warn().Err(err).Msg("scene reload failed")
					continue
				}
				log.Info().Str("path", path).Msg("scene reloaded")
				// Drop an unread older scene in favour of this one.
				select {
				case <-out:
				default:
				}
				out <- s
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("scene watcher")
			}
		}
	}()
	return out, nil
}
