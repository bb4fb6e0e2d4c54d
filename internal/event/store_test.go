package event

import (
	"context"
	"sync"
	"testing"
)

func TestStore_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	names := []string{"Lunch", "Standup", "Review"}
	starts := []string{"12:00", "09:00", "10:00"}
	for i, n := range names {
		e, err := New(n, starts[i], "13:00")
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		if err := s.Add(ctx, e); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	all, err := s.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d events, want 3", len(all))
	}
	for i, e := range all {
		if e.Name != names[i] {
			t.Errorf("position %d: got %q, want %q", i, e.Name, names[i])
		}
	}
}

func mustNew(t *testing.T, name, start, end string) *Event {
	t.Helper()
	e, err := New(name, start, end)
	if err != nil {
		t.Fatalf("New(%q): %v", name, err)
	}
	return e
}

func TestStore_AddAll(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	first := mustNew(t, "Standup", "09:00", "09:15")
	if err := s.Add(ctx, first); err != nil {
		t.Fatalf("Add: %v", err)
	}
	batch := []*Event{
		mustNew(t, "Review", "09:10", "09:30"),
		nil,
		mustNew(t, "Lunch", "12:00", "13:00"),
	}
	if err := s.AddAll(ctx, batch); err != nil {
		t.Fatalf("AddAll: %v", err)
	}

	all, _ := s.All(ctx)
	want := []string{"Standup", "Review", "Lunch"}
	if len(all) != len(want) {
		t.Fatalf("got %d events, want %d", len(all), len(want))
	}
	for i, e := range all {
		if e.Name != want[i] {
			t.Errorf("position %d: got %q, want %q", i, e.Name, want[i])
		}
	}
}

func TestStore_AllReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	e, _ := New("Standup", "09:00", "09:15")
	_ = s.Add(ctx, e)

	all, _ := s.All(ctx)
	all[0] = nil
	_ = append(all, e)

	again, _ := s.All(ctx)
	if len(again) != 1 || again[0] != e {
		t.Errorf("store membership changed through returned slice: %v", again)
	}
}

func TestStore_AllowsDuplicates(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	e, _ := New("Sync", "10:00", "11:00")
	_ = s.Add(ctx, e)
	_ = s.Add(ctx, e)

	n, _ := s.Len(ctx)
	if n != 2 {
		t.Errorf("Len() = %d, want 2", n)
	}
}

func TestStore_AddNil(t *testing.T) {
	ctx := context.Background()
	s := NewStore()
	if err := s.Add(ctx, nil); err != nil {
		t.Fatalf("Add(nil): %v", err)
	}
	if n, _ := s.Len(ctx); n != 0 {
		t.Errorf("Len() = %d, want 0", n)
	}
}

func TestStore_ConcurrentAdd(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			e, _ := New("x", "09:00", "10:00")
			_ = s.Add(ctx, e)
		}()
	}
	wg.Wait()

	if n, _ := s.Len(ctx); n != 50 {
		t.Errorf("Len() = %d, want 50", n)
	}
}
