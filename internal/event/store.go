package event

import (
	"context"
	"sync"
)

// Store is an in-memory, insertion-ordered Repository.
type Store struct {
	mu     sync.RWMutex
	events []*Event
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{events: make([]*Event, 0)}
}

// Add appends an event to the end of the store.
func (s *Store) Add(_ context.Context, e *Event) error {
	if e == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

// AddAll appends events in order, skipping nil entries.
func (s *Store) AddAll(_ context.Context, events []*Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range events {
		if e != nil {
			s.events = append(s.events, e)
		}
	}
	return nil
}

// All returns a copy of the event slice in insertion order.
func (s *Store) All(_ context.Context) ([]*Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]*Event, len(s.events))
	copy(result, s.events)
	return result, nil
}

// Len returns the number of events in the store.
func (s *Store) Len(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.events), nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}
