package ui

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/javiermolinar/slotcheck/internal/config"
	"github.com/javiermolinar/slotcheck/internal/db"
	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/session"
)

func TestMain(m *testing.M) {
	DisableColor()
	os.Exit(m.Run())
}

// run executes the CLI with args against the default config.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	return runWith(t, config.Default(), stdin, args...)
}

func runWith(t *testing.T, cfg *config.Config, stdin string, args ...string) (string, error) {
	t.Helper()
	app := NewApp(cfg)
	defer func() { _ = app.Close() }()

	var out bytes.Buffer
	app.SetOutput(&out)
	app.SetArgs(args)
	app.root.SetIn(strings.NewReader(stdin))

	err := app.Execute()
	return out.String(), err
}

func TestParseEventSpec(t *testing.T) {
	tests := []struct {
		spec    string
		want    EventInput
		wantErr bool
	}{
		{spec: "Standup,09:00,09:15", want: EventInput{"Standup", "09:00", "09:15"}},
		{spec: " Review , 09:10 , 09:30 ", want: EventInput{"Review", "09:10", "09:30"}},
		{spec: "Lunch, dinner,12:00,13:00", want: EventInput{"Lunch, dinner", "12:00", "13:00"}},
		{spec: ",09:00,10:00", want: EventInput{"", "09:00", "10:00"}},
		{spec: "Standup", wantErr: true},
		{spec: "Standup,09:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got, err := ParseEventSpec(tt.spec)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidEventSpec) {
					t.Fatalf("expected ErrInvalidEventSpec, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

const eventsTOML = `
[[event]]
name = "Standup"
start = "09:00"
end = "09:15"

[[event]]
name = "Review"
start = "09:10"
end = "09:30"
`

func TestReadEventsFile(t *testing.T) {
	got, err := ReadEventsFile(strings.NewReader(eventsTOML))
	if err != nil {
		t.Fatalf("ReadEventsFile: %v", err)
	}
	want := []EventInput{{"Standup", "09:00", "09:15"}, {"Review", "09:10", "09:30"}}
	if len(got) != len(want) {
		t.Fatalf("got %d events, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("event %d: got %+v, want %+v", i, got[i], want[i])
		}
	}

	if _, err := ReadEventsFile(strings.NewReader("[[event]\nname=")); err == nil {
		t.Error("expected error for malformed TOML")
	}
}

func TestCheck_StandupReview(t *testing.T) {
	out, err := run(t, "", "check", "-e", "Standup,09:00,09:15", "-e", "Review,09:10,09:30")
	if err != nil {
		t.Fatalf("check: %v", err)
	}

	want := "Conflicting Events:\n" +
		"Standup: 09:00 - 09:15 and Review: 09:10 - 09:30\n" +
		"\nSuggested Resolutions:\n" +
		"Reschedule Review to Start: 08:00, End: 08:20\n"
	if out != want {
		t.Errorf("output mismatch:\ngot:\n%s\nwant:\n%s", out, want)
	}
}

func TestCheck_NoConflicts(t *testing.T) {
	out, err := run(t, "", "check", "-e", "A,09:00,10:00", "-e", "B,10:00,11:00")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if out != "No conflicts detected in the schedule.\n" {
		t.Errorf("got %q", out)
	}
}

func TestCheck_Stdin(t *testing.T) {
	out, err := run(t, eventsTOML, "check", "--file", "-")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "Reschedule Review to Start: 08:00, End: 08:20") {
		t.Errorf("missing resolution in output:\n%s", out)
	}
}

func TestCheck_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.toml")
	if err := os.WriteFile(path, []byte(eventsTOML), 0o600); err != nil {
		t.Fatalf("writing events file: %v", err)
	}

	out, err := run(t, "", "check", "-f", path, "-e", "Lunch,12:00,13:00")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "Standup: 09:00 - 09:15 and Review: 09:10 - 09:30") {
		t.Errorf("missing conflict in output:\n%s", out)
	}
}

func TestCheck_Modes(t *testing.T) {
	args := []string{"check", "-e", "A,09:00,12:00", "-e", "B,09:30,10:00", "-e", "C,10:30,11:00"}

	out, err := run(t, "", args...)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if strings.Contains(out, "and C:") {
		t.Errorf("adjacent mode should miss (A, C):\n%s", out)
	}

	out, err = run(t, "", append(args, "--mode", "sweep")...)
	if err != nil {
		t.Fatalf("check --mode sweep: %v", err)
	}
	if !strings.Contains(out, "A: 09:00 - 12:00 and C: 10:30 - 11:00") {
		t.Errorf("sweep mode should report (A, C):\n%s", out)
	}

	if _, err := run(t, "", append(args, "--mode", "bogus")...); err == nil {
		t.Error("expected error for unknown mode")
	}
}

func TestCheck_WorkingHoursFlags(t *testing.T) {
	out, err := run(t, "", "check",
		"-e", "Standup,09:00,09:15", "-e", "Review,09:10,09:30",
		"--day-start", "07:30")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "Reschedule Review to Start: 07:30, End: 07:50") {
		t.Errorf("expected day start override:\n%s", out)
	}

	out, err = run(t, "", "check",
		"-e", "Standup,09:00,09:15", "-e", "Review,09:10,09:30",
		"--day-end", "08:10")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "No available slot for Review") {
		t.Errorf("expected no slot:\n%s", out)
	}
}

func TestCheck_FailOnConflict(t *testing.T) {
	_, err := run(t, "", "check", "--fail-on-conflict",
		"-e", "Standup,09:00,09:15", "-e", "Review,09:10,09:30")
	if !errors.Is(err, ErrConflictsFound) {
		t.Errorf("expected ErrConflictsFound, got %v", err)
	}

	if _, err := run(t, "", "check", "--fail-on-conflict", "-e", "A,09:00,10:00"); err != nil {
		t.Errorf("unexpected error without conflicts: %v", err)
	}
}

func TestCheck_InvalidEvent(t *testing.T) {
	tests := []struct {
		spec    string
		wantErr error
	}{
		{spec: "Bad,9:00,10:00", wantErr: event.ErrInvalidTimeFormat},
		{spec: "Bad,10:00,09:00", wantErr: event.ErrEndBeforeStart},
		{spec: "Bad,10:00", wantErr: ErrInvalidEventSpec},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			_, err := run(t, "", "check", "-e", tt.spec)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadEvents_InvalidEntryStoresNothing(t *testing.T) {
	ctx := context.Background()
	s := session.New(nil)
	defer func() { _ = s.Close() }()

	inputs := []EventInput{
		{Name: "Standup", Start: "09:00", End: "09:15"},
		{Name: "Bad", Start: "10:00", End: "09:00"},
	}
	err := loadEvents(ctx, s, inputs)
	if !errors.Is(err, event.ErrEndBeforeStart) {
		t.Fatalf("got %v, want ErrEndBeforeStart", err)
	}
	if !strings.HasPrefix(err.Error(), "event 2 (Bad): ") {
		t.Errorf("error should name the entry: %v", err)
	}

	events, _ := s.Events(ctx)
	if len(events) != 0 {
		t.Errorf("expected empty store, got %d events", len(events))
	}
}

func TestLoadEvents_SQLiteBatch(t *testing.T) {
	ctx := context.Background()
	repo, err := db.Open(ctx)
	if err != nil {
		t.Fatalf("db.Open: %v", err)
	}
	s := session.New(repo)
	defer func() { _ = s.Close() }()

	inputs := []EventInput{
		{Name: "Standup", Start: "09:00", End: "09:15"},
		{Name: "Review", Start: "09:10", End: "09:30"},
	}
	if err := loadEvents(ctx, s, inputs); err != nil {
		t.Fatalf("loadEvents: %v", err)
	}
	events, _ := s.Events(ctx)
	if len(events) != 2 || events[0].Name != "Standup" || events[1].Name != "Review" {
		t.Errorf("unexpected events: %v", events)
	}
}

func TestCheck_SQLiteBackend(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Backend = config.BackendSQLite

	out, err := runWith(t, cfg, "", "check", "-e", "Standup,09:00,09:15", "-e", "Review,09:10,09:30")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(out, "Reschedule Review to Start: 08:00, End: 08:20") {
		t.Errorf("missing resolution in output:\n%s", out)
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "", "show",
		"-e", "Lunch,12:00,13:00", "-e", "Standup,09:00,09:15", "-e", "Review,09:10,09:30")
	if err != nil {
		t.Fatalf("show: %v", err)
	}

	lines := strings.Split(out, "\n")
	want := []string{
		"Sorted Schedule:",
		"Standup: 09:00 - 09:15 !",
		"Review: 09:10 - 09:30 !",
		"Lunch: 12:00 - 13:00",
	}
	for i, w := range want {
		if lines[i] != w {
			t.Errorf("line %d: got %q, want %q", i, lines[i], w)
		}
	}
	if !strings.Contains(out, "3 events, 1 conflicts (adjacent)") {
		t.Errorf("missing summary:\n%s", out)
	}
}

func TestShow_Empty(t *testing.T) {
	out, err := run(t, "", "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if !strings.Contains(out, "No events.") {
		t.Errorf("got %q", out)
	}
}

func TestSuggest(t *testing.T) {
	out, err := run(t, "", "suggest", "Review",
		"-e", "Standup,09:00,09:15", "-e", "Review,09:10,09:30")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.HasPrefix(out, "Reschedule Review to Start: 08:00, End: 08:20 (was 09:10-09:30)") {
		t.Errorf("got %q", out)
	}

	out, err = run(t, "", "suggest", "E",
		"-e", "D,09:00,10:15", "-e", "E,10:00,10:30")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	if !strings.HasPrefix(out, "Reschedule E to Start: 08:00, End: 08:30") {
		t.Errorf("got %q", out)
	}
}

func TestSuggest_NotFound(t *testing.T) {
	_, err := run(t, "", "suggest", "Missing", "-e", "A,09:00,10:00")
	if !errors.Is(err, ErrEventNotFound) {
		t.Errorf("expected ErrEventNotFound, got %v", err)
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "slotcheck dev") {
		t.Errorf("got %q", out)
	}
}

func TestConfigShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.Default()
	cfg.Schedule.DayStart = "07:00"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	out, err := runWith(t, nil, "", "config", "--show", "--config", path)
	if err != nil {
		t.Fatalf("config --show: %v", err)
	}
	if !strings.Contains(out, "day_start = 07:00") {
		t.Errorf("expected loaded day_start:\n%s", out)
	}
}

func TestConfigInteractive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	logPath := filepath.Join(t.TempDir(), "debug.log")
	input := strings.Join([]string{
		"y",
		"07:30",
		"17:00",
		"nope",
		"sweep",
		"sqlite",
		"latte",
		"info",
		logPath,
	}, "\n") + "\n"

	var out bytes.Buffer
	if err := runConfigInteractive(strings.NewReader(input), &out, path); err != nil {
		t.Fatalf("runConfigInteractive: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "Invalid value \"nope\"") {
		t.Errorf("expected invalid mode prompt:\n%s", out.String())
	}

	cfg, err := config.LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if cfg.Schedule.DayStart != "07:30" || cfg.Schedule.DayEnd != "17:00" {
		t.Errorf("got hours %s-%s", cfg.Schedule.DayStart, cfg.Schedule.DayEnd)
	}
	if cfg.Detect.Mode != "sweep" || cfg.Storage.Backend != "sqlite" || cfg.UI.Theme != "latte" {
		t.Errorf("got %+v", cfg)
	}
	if cfg.Log.Level != "info" || cfg.Log.Path != logPath {
		t.Errorf("got log %+v", cfg.Log)
	}
}

func TestConfigInteractive_CreatesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	var out bytes.Buffer
	if err := runConfigInteractive(strings.NewReader("n\n"), &out, path); err != nil {
		t.Fatalf("runConfigInteractive: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected config file to be created: %v", err)
	}
	if !strings.Contains(out.String(), "Creating with default values") {
		t.Errorf("got %q", out.String())
	}
}

func TestSuggest_EveryMatch(t *testing.T) {
	out, err := run(t, "", "suggest", "Sync",
		"-e", "Sync,09:00,09:30", "-e", "Lunch,12:00,13:00", "-e", "Sync,13:30,14:00")
	if err != nil {
		t.Fatalf("suggest: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "Reschedule Sync to Start: 08:00, End: 08:30") {
		t.Errorf("line 0: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "Reschedule Sync to Start: 13:00, End: 13:30") {
		t.Errorf("line 1: %q", lines[1])
	}
}
