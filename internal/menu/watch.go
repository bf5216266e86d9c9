package menu

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
)

// Sender is satisfied by *tea.Program.
type Sender interface {
	Send(msg tea.Msg)
}

// Watch sends MsgReload to s whenever a workout file in dir is created,
// written, removed or renamed, until ctx is done.
func Watch(ctx context.Context, dir string, s Sender, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !isWorkoutFile(event.Name) || event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				log.Debug("workout dir changed", "file", event.Name, "op", event.Op.String())
				s.Send(MsgReload{})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn("watching workout dir", "err", err)
			}
		}
	}()
	return nil
}

func isWorkoutFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yml" || ext == ".yaml"
}
