package audio

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Ext is the file extension of the sound files in a sounds directory.
const Ext = ".wav"

var ErrNoPlayer = errors.New("no audio player found")

// knownPlayers are tried in order when no player is configured.
var knownPlayers = [][]string{
	{"paplay"},
	{"aplay", "-q"},
	{"afplay"},
	{"ffplay", "-nodisp", "-autoexit", "-loglevel", "quiet"},
}

// CommandClip plays a file by running an external player to completion.
type CommandClip struct {
	Command []string
	Path    string
}

func (c CommandClip) Play() error {
	if len(c.Command) == 0 {
		return ErrNoPlayer
	}
	args := append(append([]string{}, c.Command[1:]...), c.Path)
	cmd := exec.Command(c.Command[0], args...)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s %s: %w: %s", c.Command[0], c.Path, err, strings.TrimSpace(string(out)))
	}
	return nil
}

// BellClip rings the terminal bell.
type BellClip struct {
	W io.Writer
}

func (b BellClip) Play() error {
	_, err := io.WriteString(b.W, "\a")
	return err
}

// FindPlayer resolves the player command. A non-empty preferred command is
// split on spaces and must exist on PATH; otherwise the known players are
// tried in order.
func FindPlayer(preferred string) ([]string, error) {
	if fields := strings.Fields(preferred); len(fields) > 0 {
		if _, err := exec.LookPath(fields[0]); err != nil {
			return nil, fmt.Errorf("audio player %q: %w", fields[0], err)
		}
		return fields, nil
	}
	for _, p := range knownPlayers {
		if _, err := exec.LookPath(p[0]); err == nil {
			return p, nil
		}
	}
	return nil, ErrNoPlayer
}

// LoadDir registers a CommandClip for every cue whose file exists in dir.
// Cues without a playable file get fallback, if it is non-nil. The returned
// slice names the cues that ended up with no clip at all.
func (r *Registry) LoadDir(dir string, player []string, fallback Clip) []Cue {
	var missing []Cue
	for _, name := range Names {
		path := filepath.Join(dir, string(name)+Ext)
		_, err := os.Stat(path)
		switch {
		case err == nil && len(player) > 0:
			r.Register(name, CommandClip{Command: player, Path: path})
		case fallback != nil:
			r.log.Debug("using fallback clip", "cue", name, "path", path)
			r.Register(name, fallback)
		default:
			r.log.Debug("cue has no clip", "cue", name, "path", path)
			missing = append(missing, name)
		}
	}
	return missing
}
