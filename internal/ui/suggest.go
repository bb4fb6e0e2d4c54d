package ui

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotcheck/internal/event"
)

// ErrEventNotFound is returned when suggest names an event that was not loaded.
var ErrEventNotFound = errors.New("event not found")

func (a *App) suggestCmd() *cobra.Command {
	var (
		events  eventFlags
		sess    sessionFlags
		noColor bool
	)

	cmd := &cobra.Command{
		Use:   "suggest NAME",
		Short: "Suggest a new slot for the events with a given name",
		Long: `Suggest a replacement slot within working hours for each event named NAME.

The slot starts right after the latest event that ends at or before
the event's current start (or at day start). It is not checked against
the remaining events.`,
		Example: `  slotcheck suggest Review -e "Standup,09:00,09:15" -e "Review,09:10,09:30"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
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

			targets := findEvents(all, args[0])
			if len(targets) == 0 {
				return fmt.Errorf("%w: %q", ErrEventNotFound, args[0])
			}

			for _, target := range targets {
				slot, ok := s.SuggestSlot(target, all, s.Hours())
				PrintSlot(cmd.OutOrStdout(), target, slot, ok)
			}
			return nil
		},
	}

	events.register(cmd)
	sess.register(cmd)
	cmd.Flags().BoolVar(&noColor, "no-color", false, "Disable color output")
	return cmd
}

// findEvents returns the events named name, in insertion order.
func findEvents(events []*event.Event, name string) []*event.Event {
	var found []*event.Event
	for _, e := range events {
		if e.Name == name {
			found = append(found, e)
		}
	}
	return found
}
