package audio

import (
	"io"
	"log/slog"
	"sync"
)

// Clip is something that can be played to completion.
type Clip interface {
	Play() error
}

// ClipFunc adapts a function to Clip.
type ClipFunc func() error

func (f ClipFunc) Play() error { return f() }

// Registry maps cue names to clips. Play never blocks and never reports
// failure to the caller.
type Registry struct {
	mu    sync.RWMutex
	clips map[Cue]Clip
	log   *slog.Logger
	wg    sync.WaitGroup
}

func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Registry{
		clips: make(map[Cue]Clip),
		log:   log,
	}
}

func (r *Registry) Register(name Cue, clip Clip) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if clip == nil {
		delete(r.clips, name)
		return
	}
	r.clips[name] = clip
}

func (r *Registry) Lookup(name Cue) (Clip, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.clips[name]
	return c, ok
}

// Play starts the clip registered under name on its own goroutine.
func (r *Registry) Play(name Cue) {
	clip, ok := r.Lookup(name)
	if !ok {
		r.log.Debug("no clip registered", "cue", name)
		return
	}

	r.wg.Add(1)
	go func() {
		defer r.wg.Done()
		if err := clip.Play(); err != nil {
			r.log.Debug("clip failed", "cue", name, "err", err)
		}
	}()
}

// Wait blocks until every clip started so far has finished.
func (r *Registry) Wait() {
	r.wg.Wait()
}
