// Package session ties an event repository to conflict detection and slot suggestion.
package session

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/javiermolinar/slotcheck/internal/conflict"
	"github.com/javiermolinar/slotcheck/internal/event"
	"github.com/javiermolinar/slotcheck/internal/scheduler"
)

// DefaultHours is the working-hours window used when none is configured.
var DefaultHours = scheduler.WorkingHours{
	DayStart: event.MustParseClock("08:00"),
	DayEnd:   event.MustParseClock("18:00"),
}

// Session owns the event list of one running instance.
type Session struct {
	mu     sync.Mutex
	repo   event.Repository
	hours  scheduler.WorkingHours
	mode   conflict.Mode
	logger *zap.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithWorkingHours sets the window used by Report.
func WithWorkingHours(h scheduler.WorkingHours) Option {
	return func(s *Session) {
		s.hours = h
	}
}

// WithMode sets the detection algorithm.
func WithMode(m conflict.Mode) Option {
	return func(s *Session) {
		s.mode = m
	}
}

// WithLogger sets the session logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Session backed by repo. A nil repo gets an in-memory store.
func New(repo event.Repository, opts ...Option) *Session {
	if repo == nil {
		repo = event.NewStore()
	}
	s := &Session{
		repo:   repo,
		hours:  DefaultHours,
		mode:   conflict.ModeAdjacent,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Hours returns the session working hours.
func (s *Session) Hours() scheduler.WorkingHours {
	return s.hours
}

// Mode returns the session detection mode.
func (s *Session) Mode() conflict.Mode {
	return s.mode
}

// AddEvent validates and stores a new event.
// On a validation error the store is left unchanged and the
// *event.ValidationError is returned as is.
func (s *Session) AddEvent(ctx context.Context, name, start, end string) (*event.Event, error) {
	e, err := event.New(name, start, end)
	if err != nil {
		s.logger.Debug("event rejected",
			zap.String("name", name),
			zap.String("start", start),
			zap.String("end", end),
			zap.Error(err),
		)
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.Add(ctx, e); err != nil {
		return nil, fmt.Errorf("adding event: %w", err)
	}

	s.logger.Debug("event added",
		zap.String("id", e.ID),
		zap.String("name", e.Name),
		zap.Stringer("start", e.Start),
		zap.Stringer("end", e.End),
	)
	return e, nil
}

// AddAll stores already validated events in one batch.
func (s *Session) AddAll(ctx context.Context, events []*event.Event) error {
	if len(events) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.repo.AddAll(ctx, events); err != nil {
		return fmt.Errorf("adding events: %w", err)
	}
	s.logger.Debug("events added", zap.Int("count", len(events)))
	return nil
}

// Events returns the events in insertion order.
func (s *Session) Events(ctx context.Context) ([]*event.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot(ctx)
}

// Schedule returns the events sorted by start time.
func (s *Session) Schedule(ctx context.Context) ([]*event.Event, error) {
	events, err := s.Events(ctx)
	if err != nil {
		return nil, err
	}
	return conflict.Sorted(events), nil
}

// DetectConflicts reports conflicting pairs using the session mode.
func (s *Session) DetectConflicts(events []*event.Event) []conflict.Pair {
	return s.mode.Detect(events)
}

// SuggestSlot proposes a replacement slot for e within hours.
func (s *Session) SuggestSlot(e *event.Event, events []*event.Event, hours scheduler.WorkingHours) (scheduler.Slot, bool) {
	return scheduler.Suggest(e, events, hours)
}

// SuggestTimes is SuggestSlot with working hours and the result as "HH:MM"
// strings. It fails only when the working hours cannot be parsed.
func (s *Session) SuggestTimes(e *event.Event, events []*event.Event, dayStart, dayEnd string) (start, end string, ok bool, err error) {
	hours, err := scheduler.ParseWorkingHours(dayStart, dayEnd)
	if err != nil {
		return "", "", false, err
	}
	slot, ok := s.SuggestSlot(e, events, hours)
	if !ok {
		return "", "", false, nil
	}
	return slot.Start.String(), slot.End.String(), true, nil
}

// Report detects conflicts on the current events and suggests a slot for the
// later event of each pair.
func (s *Session) Report(ctx context.Context) (Report, error) {
	s.mu.Lock()
	events, err := s.snapshot(ctx)
	s.mu.Unlock()
	if err != nil {
		return Report{}, err
	}

	r := BuildReport(events, s.mode, s.hours)
	s.logger.Debug("conflicts detected",
		zap.String("mode", string(s.mode)),
		zap.Int("events", len(events)),
		zap.Int("conflicts", len(r.Conflicts)),
	)
	return r, nil
}

func (s *Session) snapshot(ctx context.Context) ([]*event.Event, error) {
	events, err := s.repo.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}
	return events, nil
}

// Close releases the underlying repository.
func (s *Session) Close() error {
	return s.repo.Close()
}
