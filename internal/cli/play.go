package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"workout_tui/internal/audio"
	"workout_tui/internal/history"
	"workout_tui/internal/input"
	"workout_tui/internal/menu"
	"workout_tui/internal/playback"
	"workout_tui/internal/timer"
	"workout_tui/internal/workout"
)

func newPlayCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "play <title|file>",
		Short: "Play a workout by title or from a workout file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			w, err := e.resolveWorkout(args[0])
			if err != nil {
				return err
			}
			return e.play(cmd.Context(), opts, w)
		},
	}
}

func runPicker(cmd *cobra.Command, opts *rootOptions) error {
	e, err := setup(cmd, opts)
	if err != nil {
		return err
	}
	defer e.Close()

	if !isTerminal(opts.stdin) {
		return errNotTerminal
	}

	hist := e.openHistory()
	var mh menu.History
	if hist != nil {
		defer hist.Close()
		mh = hist
	}

	w, err := menu.Pick(cmd.Context(), menu.Options{
		Load:      e.loadWorkouts,
		History:   mh,
		Sequencer: e.seq,
		DataDir:   e.cfg.DataDir,
		Logger:    e.log,
	}, tea.WithInput(opts.stdin), tea.WithOutput(opts.stdout))
	if err != nil {
		return err
	}
	if w == nil {
		return nil
	}
	return e.play(cmd.Context(), opts, w)
}

func (e *env) openHistory() *history.Repository {
	repo, err := history.NewRepository(e.cfg.HistoryDB)
	if err != nil {
		e.log.Warn("session history unavailable", "path", e.cfg.HistoryDB, "err", err)
		return nil
	}
	return repo
}

// sounds builds the cue registry. The bell fallback writes to out, which
// must be the writer playback renders to.
func (e *env) sounds(out io.Writer) *audio.Registry {
	reg := audio.NewRegistry(e.log)
	if !e.cfg.Sound.Enabled {
		return reg
	}

	player, err := audio.FindPlayer(e.cfg.Sound.Player)
	if err != nil {
		e.log.Warn("sound files will not play", "err", err)
	}
	var fallback audio.Clip
	if e.cfg.Sound.BellFallback {
		fallback = audio.BellClip{W: out}
	}
	if missing := reg.LoadDir(e.cfg.SoundsDir, player, fallback); len(missing) > 0 {
		e.log.Info("cues without sound", "cues", missing, "dir", e.cfg.SoundsDir)
	}
	return reg
}

// play runs one session on the terminal and records it in the history.
func (e *env) play(ctx context.Context, opts *rootOptions, w *workout.Workout) error {
	if _, err := e.seq.Screens(w); err != nil {
		return err
	}

	restore, err := enterPlayback(opts.stdin, opts.stdout)
	if err != nil {
		return err
	}
	defer restore()

	reader, err := input.NewDriverReader(opts.stdin, os.Getenv("TERM"))
	if err != nil {
		return fmt.Errorf("reading keyboard: %w", err)
	}
	defer reader.Close()

	lctx, stopListener := context.WithCancel(ctx)
	events := input.Start(lctx, reader)

	out := &lockedWriter{w: opts.stdout}
	sounds := e.sounds(out)
	started := time.Now()
	res, runErr := playback.Run(ctx, w, playback.Options{
		Out:       out,
		Events:    events,
		Sounds:    sounds,
		Sequencer: e.seq,
		Logger:    e.log,
	})
	stopped := time.Now()

	stopListener()
	reader.Cancel()
	if err := restore(); err != nil {
		e.log.Warn("restoring terminal", "err", err)
	}

	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}
	if runErr != nil {
		e.log.Error("playback failed", "workout", w.Title, "err", runErr)
	}

	e.record(w, started, stopped, res)
	printStatus(e.out, "✓", fmt.Sprintf("%s: %s on screen %d/%d", w.Title, timer.Format(res.Spent), res.Furthest+1, res.Screens), color.FgGreen)
	return runErr
}

func (e *env) record(w *workout.Workout, started, stopped time.Time, res playback.Result) {
	if res.Spent == 0 && res.Furthest == 0 {
		return
	}
	hist := e.openHistory()
	if hist == nil {
		return
	}
	defer hist.Close()

	entry := &history.Entry{
		Workout:   w.Title,
		StartedAt: started,
		StoppedAt: stopped,
		Spent:     res.Spent,
		Furthest:  res.Furthest,
		Screens:   res.Screens,
		Completed: res.Completed,
	}
	if err := hist.Record(entry); err != nil {
		e.log.Warn("recording session", "err", err)
		return
	}
	e.log.Info("session recorded", "id", entry.ID, "workout", w.Title, "spent", res.Spent)
}
