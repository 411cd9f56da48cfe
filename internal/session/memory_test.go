package session_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"outlet-assistant/internal/session"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any) {}

func newStore() session.Store {
	return session.NewMemoryStore(&mockLogger{}, session.Config{})
}

func TestGetOrCreate(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	id := store.GetOrCreate(ctx, "")
	if id == "" {
		t.Fatal("expected a new session id")
	}

	// Known ids are returned unchanged.
	if got := store.GetOrCreate(ctx, id); got != id {
		t.Errorf("expected %q, got %q", id, got)
	}

	// Unknown ids are not adopted: a fresh session is minted instead.
	if got := store.GetOrCreate(ctx, "no-such-session"); got == "no-such-session" || got == id {
		t.Errorf("expected a fresh id, got %q", got)
	}
}

func TestAddTurnWindow(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	id := store.GetOrCreate(ctx, "")

	for i := 1; i <= 15; i++ {
		store.AddTurn(ctx, id, fmt.Sprintf("message %d", i), "ok")
	}

	turns := store.History(ctx, id)
	if len(turns) != session.DefaultWindowSize {
		t.Fatalf("expected %d retained turns, got %d", session.DefaultWindowSize, len(turns))
	}

	// Oldest turns are dropped first.
	if turns[0].UserMessage != "message 6" {
		t.Errorf("expected oldest retained turn to be message 6, got %q", turns[0].UserMessage)
	}
	if turns[len(turns)-1].UserMessage != "message 15" {
		t.Errorf("expected newest turn to be message 15, got %q", turns[len(turns)-1].UserMessage)
	}
}

func TestAddTurnNumberSaturates(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(&mockLogger{}, session.Config{WindowSize: 3})
	id := store.GetOrCreate(ctx, "")

	var last int
	for i := 0; i < 6; i++ {
		last = store.AddTurn(ctx, id, "hi", "hello")
	}

	// Turn numbers are derived from the trimmed window, so they cap at
	// window size + 1 once turns start falling off.
	if last != 4 {
		t.Errorf("expected saturated turn number 4, got %d", last)
	}
}

func TestContextSnapshotIsolation(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	id := store.GetOrCreate(ctx, "")

	store.UpdateContext(ctx, id, "area", "petaling_jaya")

	snapshot := store.Context(ctx, id)
	snapshot["area"] = "kuala_lumpur"

	if got := store.GetContext(ctx, id, "area"); got != "petaling_jaya" {
		t.Errorf("mutating the snapshot leaked into the store: got %v", got)
	}
}

func TestContextUnknownSession(t *testing.T) {
	ctx := context.Background()
	store := newStore()

	if got := store.GetContext(ctx, "missing", "area"); got != nil {
		t.Errorf("expected nil for unknown session, got %v", got)
	}
	if got := store.Context(ctx, "missing"); len(got) != 0 {
		t.Errorf("expected empty snapshot for unknown session, got %v", got)
	}

	// Writes to unknown sessions are dropped, not resurrected.
	store.UpdateContext(ctx, "missing", "area", "kuala_lumpur")
	if store.Stats(ctx, "missing") != nil {
		t.Error("expected no session to be created by UpdateContext")
	}
}

func TestStatsAndClear(t *testing.T) {
	ctx := context.Background()
	store := newStore()
	id := store.GetOrCreate(ctx, "")

	store.AddTurn(ctx, id, "hello", "Hello!")
	store.UpdateContext(ctx, id, "last_outlet_mentioned", "ss 2")

	stats := store.Stats(ctx, id)
	if stats == nil {
		t.Fatal("expected stats for existing session")
	}
	if stats.SessionID != id {
		t.Errorf("expected session id %q, got %q", id, stats.SessionID)
	}
	if stats.TotalTurns != 1 {
		t.Errorf("expected 1 turn, got %d", stats.TotalTurns)
	}
	if len(stats.ContextKeys) != 1 || stats.ContextKeys[0] != "last_outlet_mentioned" {
		t.Errorf("unexpected context keys: %v", stats.ContextKeys)
	}

	if !store.Clear(ctx, id) {
		t.Error("expected Clear to report the session existed")
	}
	if store.Clear(ctx, id) {
		t.Error("expected second Clear to report missing")
	}
	if store.Stats(ctx, id) != nil {
		t.Error("expected no stats after Clear")
	}
}

func TestTTLEviction(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore(&mockLogger{}, session.Config{TTL: 50 * time.Millisecond})
	id := store.GetOrCreate(ctx, "")

	store.AddTurn(ctx, id, "hello", "Hello!")
	time.Sleep(120 * time.Millisecond)

	if store.Stats(ctx, id) != nil {
		t.Error("expected session to be evicted after the TTL")
	}
}
