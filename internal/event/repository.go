package event

import "context"

// Repository defines the storage interface for events.
type Repository interface {
	// Add appends an event. Insertion order is preserved.
	Add(ctx context.Context, e *Event) error

	// AddAll appends events in order. Either all of them are stored or none.
	AddAll(ctx context.Context, events []*Event) error

	// All returns every event in insertion order.
	// The returned slice is owned by the caller.
	All(ctx context.Context) ([]*Event, error)

	// Len returns the number of stored events.
	Len(ctx context.Context) (int, error)

	// Close releases any resources held by the repository.
	Close() error
}
