package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ErrConflictsFound is returned by check --fail-on-conflict.
var ErrConflictsFound = errors.New("conflicts found")

func (a *App) checkCmd() *cobra.Command {
	var (
		events         eventFlags
		sess           sessionFlags
		noColor        bool
		failOnConflict bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report conflicting events and suggested resolutions",
		Long: `Load events from --event flags and/or an events file, detect
overlapping pairs and suggest a new slot for the later event of each pair.

The default detector only compares neighbours in start order. Use
--mode=sweep to also catch overlaps between non-adjacent events.`,
		Example: `  slotcheck check -e "Standup,09:00,09:15" -e "Review,09:10,09:30"
  slotcheck check --file events.toml --mode sweep
  cat events.toml | slotcheck check -f -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if noColor {
				DisableColor()
			}

			inputs, err := events.inputs(cmd.InOrStdin())
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.newSession(ctx, sess)
			if err != nil {
				return err
			}
			defer func() { _ = s.Close() }()

			if err := loadEvents(ctx, s, inputs); err != nil {
				return err
			}

			report, err := s.Report(ctx)
			if err != nil {
				return fmt.Errorf("building report: %w", err)
			}

			PrintReport(cmd.OutOrStdout(), report)

			if failOnConflict && report.HasConflicts() {
				return fmt.Errorf("%w: %d", ErrConflictsFound, len(report.Conflicts))
			}
			return nil
		},
	}

	events.register(cmd)
	sess.register(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	cmd.Flags().BoolVar(&failOnConflict, "fail-on-conflict", false, "Exit with an error when any conflict is found")
	return cmd
}
