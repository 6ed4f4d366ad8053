package cli

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// watch calls regenerate after every change of the file at path until ctx
// is done. Failed regenerations are logged and do not stop the watch.
func watch(ctx context.Context, path string, logger *slog.Logger, regenerate func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the parent directory and filter events by file name.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	name := filepath.Clean(path)
	logger.Info("watching for changes", slog.String("input", path))

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopped watching", slog.String("input", path))
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != name {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("input changed", slog.String("event", event.Op.String()))
			if err := regenerate(); err != nil {
				logger.Error("generation failed", slog.Any("error", err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher received an error", slog.Any("error", err))
		}
	}
}
