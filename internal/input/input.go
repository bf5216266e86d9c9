// Package input turns blocking terminal key reads into a stream of events
// the playback loop can poll.
package input

import (
	"context"
	"fmt"
)

type Code int

const (
	Rune Code = iota
	Up
	Down
	Left
	Right
	Home
	End
	Other
)

type Key struct {
	Code Code
	Rune rune // set when Code is Rune
}

func RuneKey(r rune) Key { return Key{Code: Rune, Rune: r} }

func (k Key) String() string {
	switch k.Code {
	case Rune:
		return string(k.Rune)
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Home:
		return "home"
	case End:
		return "end"
	}
	return fmt.Sprintf("key(%d)", int(k.Code))
}

// Event carries either a key or the error that stopped the listener.
type Event struct {
	Key Key
	Err error
}

// KeyReader blocks until at least one key is available.
type KeyReader interface {
	ReadKeys() ([]Key, error)
}

// BufferSize is the capacity of the channel returned by Start.
const BufferSize = 16

// Listen reads keys from r and sends them to out until ctx is done or a read
// fails. A read failure is sent as a final Event with Err set. Listen never
// closes out.
func Listen(ctx context.Context, r KeyReader, out chan<- Event) {
	for {
		if ctx.Err() != nil {
			return
		}

		keys, err := r.ReadKeys()
		if err != nil {
			select {
			case out <- Event{Err: fmt.Errorf("reading keys: %w", err)}:
			case <-ctx.Done():
			}
			return
		}

		for _, k := range keys {
			select {
			case out <- Event{Key: k}:
			case <-ctx.Done():
				return
			}
		}
	}
}

// Start runs Listen on its own goroutine. The returned channel is closed
// when the listener exits.
func Start(ctx context.Context, r KeyReader) <-chan Event {
	ch := make(chan Event, BufferSize)
	go func() {
		defer close(ch)
		Listen(ctx, r, ch)
	}()
	return ch
}
