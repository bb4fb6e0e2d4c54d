package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/session"
)

// ErrInvalidEventSpec is returned for --event values that are not "name,start,end".
var ErrInvalidEventSpec = errors.New(`event must be "name,HH:MM,HH:MM"`)

// EventInput is one event as given on the command line or in an events file.
type EventInput struct {
	Name  string `toml:"name"`
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// eventsFile is the TOML layout accepted by --file.
type eventsFile struct {
	Events []EventInput `toml:"event"`
}

// eventFlags collects event inputs for a command.
type eventFlags struct {
	specs []string
	file  string
}

func (f *eventFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&f.specs, "event", "e", nil, `Event as "name,HH:MM,HH:MM" (repeatable)`)
	cmd.Flags().StringVarP(&f.file, "file", "f", "", `TOML file of [[event]] tables, "-" for stdin`)
}

// ParseEventSpec splits "name,start,end". The name may itself contain commas.
func ParseEventSpec(spec string) (EventInput, error) {
	last := strings.LastIndex(spec, ",")
	if last < 0 {
		return EventInput{}, fmt.Errorf("%w: %q", ErrInvalidEventSpec, spec)
	}
	middle := strings.LastIndex(spec[:last], ",")
	if middle < 0 {
		return EventInput{}, fmt.Errorf("%w: %q", ErrInvalidEventSpec, spec)
	}
	return EventInput{
		Name:  strings.TrimSpace(spec[:middle]),
		Start: strings.TrimSpace(spec[middle+1 : last]),
		End:   strings.TrimSpace(spec[last+1:]),
	}, nil
}

// ReadEventsFile decodes an events file.
func ReadEventsFile(r io.Reader) ([]EventInput, error) {
	var f eventsFile
	if err := toml.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("parsing events file: %w", err)
	}
	return f.Events, nil
}

// inputs gathers file events first, then --event flags, in order.
func (f *eventFlags) inputs(stdin io.Reader) ([]EventInput, error) {
	var result []EventInput

	if f.file != "" {
		var r io.Reader
		if f.file == "-" {
			r = stdin
		} else {
			path, err := resolvePath(f.file)
			if err != nil {
				return nil, err
			}
			file, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("opening events file: %w", err)
			}
			defer func() { _ = file.Close() }()
			r = file
		}
		fileEvents, err := ReadEventsFile(r)
		if err != nil {
			return nil, err
		}
		result = append(result, fileEvents...)
	}

	for _, spec := range f.specs {
		in, err := ParseEventSpec(spec)
		if err != nil {
			return nil, err
		}
		result = append(result, in)
	}

	return result, nil
}

// loadEvents validates every input and then stores them in one batch.
// Nothing is stored if any input is invalid.
func loadEvents(ctx context.Context, s *session.Session, inputs []EventInput) error {
	events := make([]*event.Event, 0, len(inputs))
	for i, in := range inputs {
		e, err := event.New(in.Name, in.Start, in.End)
		if err != nil {
			return fmt.Errorf("event %d (%s): %w", i+1, in.Name, err)
		}
		events = append(events, e)
	}
	return s.AddAll(ctx, events)
}

// resolvePath expands ~ and makes path absolute.
func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
