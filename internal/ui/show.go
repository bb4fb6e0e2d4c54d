package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) showCmd() *cobra.Command {
	var (
		events  eventFlags
		sess    sessionFlags
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show events sorted by start time",
		Long: `Display the loaded events in start order. Events that take part in
a detected conflict are marked with "!".`,
		Example: `  slotcheck show --file events.toml`,
		Args:    cobra.NoArgs,
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

			all, err := s.Events(ctx)
			if err != nil {
				return fmt.Errorf("fetching events: %w", err)
			}

			conflicts := s.DetectConflicts(all)
			out := cmd.OutOrStdout()
			PrintSchedule(out, all, conflicts)
			fmt.Fprintln(out, separator())
			fmt.Fprintf(out, "%d events, %d conflicts (%s)\n", len(all), len(conflicts), s.Mode())
			return nil
		},
	}

	events.register(cmd)
	sess.register(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}
