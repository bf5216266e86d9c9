// Package cli wires the workouts command line: configuration, logging, the
// picker and playback.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"workout_tui/internal/config"
	"workout_tui/internal/screen"
	"workout_tui/internal/workout"
)

type rootOptions struct {
	configPath string
	verbose    bool

	stdin  *os.File
	stdout *os.File
}

func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := newRootCmd(&rootOptions{stdin: os.Stdin, stdout: os.Stdout})
	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workouts",
		Short: "Circuit workout timer for the terminal",
		Long: `Plays circuit workouts screen by screen: a warm-up, three rounds of each
three-exercise set with rests between them, and a cooldown.

With no arguments, opens a picker over the workouts in the data directory.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/workouts/config.yaml)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	cmd.AddCommand(
		newPlayCmd(opts),
		newListCmd(opts),
		newShowCmd(opts),
		newImportCmd(opts),
		newHistoryCmd(opts),
	)

	return cmd
}

// env is what every command needs once flags are parsed.
type env struct {
	cfg *config.Config
	log *slog.Logger
	seq *screen.Sequencer
	out io.Writer

	closeLog func() error
}

func (e *env) Close() error {
	if e.closeLog != nil {
		return e.closeLog()
	}
	return nil
}

func setup(cmd *cobra.Command, opts *rootOptions) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFromPath(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	level := cfg.Level()
	if opts.verbose {
		level = slog.LevelDebug
	}
	log, closeLog, err := newLogger(cfg.LogFile, level)
	if err != nil {
		return nil, err
	}

	return &env{
		cfg:      cfg,
		log:      log,
		seq:      screen.NewSequencer(cfg.Narrative.Narrative()),
		out:      cmd.OutOrStdout(),
		closeLog: closeLog,
	}, nil
}

// newLogger writes text logs to path; the terminal belongs to the UI.
func newLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("creating log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	log := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return log, f.Close, nil
}

// loadWorkouts reads the data directory, falling back to the built-in
// workout when it holds no workout files at all.
func (e *env) loadWorkouts() (workout.List, []workout.FileError, error) {
	list, bad, err := workout.LoadDir(e.cfg.DataDir)
	if err != nil {
		return nil, nil, err
	}
	if len(list) == 0 && len(bad) == 0 {
		e.log.Debug("no workout files, using built-in workout", "dir", e.cfg.DataDir)
		list = workout.List{workout.Default()}
	}
	return list, bad, nil
}

// resolveWorkout accepts a workout file path or a title from the data
// directory.
func (e *env) resolveWorkout(arg string) (*workout.Workout, error) {
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return workout.Load(arg)
	}

	list, bad, err := e.loadWorkouts()
	if err != nil {
		return nil, err
	}
	for _, b := range bad {
		e.log.Warn("skipping workout file", "path", b.Path, "err", b.Err)
	}
	if w := list.Find(arg); w != nil {
		return w, nil
	}
	return nil, fmt.Errorf("no workout named %q in %s", arg, e.cfg.DataDir)
}

func printStatus(w io.Writer, symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(w, "%s %s\n", c.Sprint(symbol), message)
}
