package input

import (
	"io"

	xinput "github.com/charmbracelet/x/input"
)

// DriverReader decodes raw terminal input. The terminal must already be in
// raw mode.
type DriverReader struct {
	d *xinput.Driver
}

func NewDriverReader(r io.Reader, termType string) (*DriverReader, error) {
	d, err := xinput.NewDriver(r, termType, 0)
	if err != nil {
		return nil, err
	}
	return &DriverReader{d: d}, nil
}

func (r *DriverReader) ReadKeys() ([]Key, error) {
	for {
		events, err := r.d.ReadEvents()
		if err != nil {
			return nil, err
		}
		keys := decodeAll(events)
		if len(keys) > 0 {
			return keys, nil
		}
	}
}

// Cancel unblocks a pending ReadKeys, which then returns an error.
func (r *DriverReader) Cancel() bool { return r.d.Cancel() }

func (r *DriverReader) Close() error { return r.d.Close() }

func decodeAll(events []xinput.Event) []Key {
	var keys []Key
	for _, ev := range events {
		switch ev := ev.(type) {
		case xinput.MultiEvent:
			keys = append(keys, decodeAll(ev)...)
		case xinput.KeyDownEvent:
			keys = append(keys, decode(ev))
		}
	}
	return keys
}

func decode(ev xinput.KeyDownEvent) Key {
	switch ev.Sym {
	case xinput.KeyUp:
		return Key{Code: Up}
	case xinput.KeyDown:
		return Key{Code: Down}
	case xinput.KeyLeft:
		return Key{Code: Left}
	case xinput.KeyRight:
		return Key{Code: Right}
	case xinput.KeyHome:
		return Key{Code: Home}
	case xinput.KeyEnd:
		return Key{Code: End}
	case xinput.KeyNone:
		if ev.Rune != 0 && !ev.Mod.IsCtrl() && !ev.Mod.IsAlt() {
			return RuneKey(ev.Rune)
		}
	}
	return Key{Code: Other}
}
