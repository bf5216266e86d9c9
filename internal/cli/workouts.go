package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"workout_tui/internal/screen"
	"workout_tui/internal/timer"
	"workout_tui/internal/workout"
)

func newListCmd(opts *rootOptions) *cobra.Command {
	var day, category string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List workouts with their total length",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			list, bad, err := e.loadWorkouts()
			if err != nil {
				return err
			}
			if day != "" {
				d, err := workout.ParseDay(day)
				if err != nil {
					return err
				}
				list = list.FilterByDay(d)
			}
			if category != "" {
				c, err := workout.ParseCategory(category)
				if err != nil {
					return err
				}
				list = list.FilterByCategory(c)
			}
			list.SortByDay()

			header := color.New(color.Bold)
			header.Fprintf(e.out, "%-10s %-18s %-9s %s\n", "DAY", "TYPE", "LENGTH", "TITLE")
			for _, w := range list {
				length := "invalid"
				if d, err := e.seq.Duration(w); err == nil {
					length = timer.Format(d)
				}
				fmt.Fprintf(e.out, "%-10s %-18s %-9s %s\n", w.Day, w.Category, length, w.Title)
			}
			for _, b := range bad {
				printStatus(e.out, "✗", b.Error(), color.FgRed)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&day, "day", "", "only workouts for this day (e.g. mon, Tuesday)")
	cmd.Flags().StringVar(&category, "category", "", `only workouts of this type (e.g. "Upper Body & Abs")`)
	return cmd
}

func newShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show <title|file>",
		Short: "Print the screen plan of a workout",
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
			screens, err := e.seq.Screens(w)
			if err != nil {
				return err
			}
			starts, total := screen.Offsets(screens)

			color.New(color.Bold).Fprintf(e.out, "%s (%s, %s)\n\n", w.Title, w.Day, w.Category)
			for i, s := range screens {
				fmt.Fprintf(e.out, "%3d  %s  %s  %s\n", i+1, timer.Format(starts[i]), timer.Format(s.Duration), s.Label())
			}
			fmt.Fprintln(e.out)
			printStatus(e.out, "⏱", "Total "+timer.Format(total), color.FgCyan)
			return nil
		},
	}
}

func newImportCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Convert import-format files into workout files",
		Long: `Reads every .yml/.yaml file in the import directory, where each exercise
is written as [name, description words...] and warmup_length is in minutes,
and writes the converted workouts to the data directory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			list, bad, err := workout.ImportDir(e.cfg.ImportDir)
			if err != nil {
				return err
			}
			if len(list) == 0 && len(bad) == 0 {
				printStatus(e.out, "⚠", "Nothing to import in "+e.cfg.ImportDir, color.FgYellow)
				return nil
			}

			for _, w := range list {
				path, err := workout.Save(e.cfg.DataDir, w)
				if err != nil {
					printStatus(e.out, "✗", err.Error(), color.FgRed)
					continue
				}
				e.log.Info("imported workout", "title", w.Title, "path", path)
				printStatus(e.out, "✓", fmt.Sprintf("%s -> %s", w.Title, path), color.FgGreen)
			}
			for _, b := range bad {
				printStatus(e.out, "✗", b.Error(), color.FgRed)
			}
			if len(bad) > 0 {
				return fmt.Errorf("%d import file(s) failed", len(bad))
			}
			return nil
		},
	}
}

func newHistoryCmd(opts *rootOptions) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recently played sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer e.Close()

			hist := e.openHistory()
			if hist == nil {
				return fmt.Errorf("session history unavailable at %s", e.cfg.HistoryDB)
			}
			defer hist.Close()

			entries, err := hist.Recent(limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				printStatus(e.out, "⚠", "No sessions yet", color.FgYellow)
				return nil
			}

			color.New(color.Bold).Fprintf(e.out, "%-16s %-9s %-7s %s\n", "FINISHED", "SPENT", "SCREEN", "WORKOUT")
			for _, en := range entries {
				progress := en.Progress()
				if en.Completed {
					progress = color.GreenString("done")
				}
				fmt.Fprintf(e.out, "%-16s %-9s %-7s %s\n",
					en.StoppedAt.Local().Format("2006-01-02 15:04"), timer.Format(en.Spent), progress, en.Workout)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of sessions to show (0 for all)")
	return cmd
}
