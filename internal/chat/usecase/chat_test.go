package usecase_test

import (
	"context"
	"strings"
	"testing"

	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/chat/orchestrator"
	"outlet-assistant/internal/chat/tools"
	"outlet-assistant/internal/chat/usecase"
	"outlet-assistant/internal/outlet"
	"outlet-assistant/internal/session"
)

// mockLogger
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

func newUseCase(t *testing.T) chat.UseCase {
	t.Helper()
	l := &mockLogger{}
	catalog := outlet.NewCatalog()

	registry := chat.NewToolRegistry()
	registry.Register(tools.NewCalculator())
	registry.Register(tools.NewSearchOutlets(catalog))
	registry.Register(tools.NewHoursInfo(catalog))
	registry.Register(tools.NewLocationInfo(catalog))
	registry.Register(tools.NewPhoneInfo(catalog))
	registry.Register(tools.NewWeather(l, nil))
	registry.Register(tools.NewForecast(l, nil))

	store := session.NewMemoryStore(l, session.Config{WindowSize: 10})
	return usecase.New(l, store, orchestrator.New(l, registry))
}

func TestChat_Calculation(t *testing.T) {
	uc := newUseCase(t)

	out, err := uc.Chat(context.Background(), chat.ChatInput{Message: "5 + 3"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}
	if out.Response != "5 + 3 = 8" {
		t.Errorf("response = %q, want %q", out.Response, "5 + 3 = 8")
	}
	if out.SessionID == "" {
		t.Error("session ID not assigned")
	}
	if out.TurnNumber != 1 {
		t.Errorf("turn number = %d, want 1", out.TurnNumber)
	}
}

func TestChat_ContextCarriesAcrossTurns(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	first, err := uc.Chat(ctx, chat.ChatInput{Message: "are there outlets in ss 2?"})
	if err != nil {
		t.Fatalf("first turn error = %v", err)
	}
	if !first.ContextUpdated {
		t.Error("first turn did not update context")
	}

	second, err := uc.Chat(ctx, chat.ChatInput{SessionID: first.SessionID, Message: "what's the opening time?"})
	if err != nil {
		t.Fatalf("second turn error = %v", err)
	}
	if second.TurnNumber != 2 {
		t.Errorf("turn number = %d, want 2", second.TurnNumber)
	}
	if !strings.Contains(second.Response, "SS 2 Outlet: 9:00 AM - 10:00 PM") {
		t.Errorf("second response = %q, want hours resolved from remembered outlet", second.Response)
	}
}

func TestChat_Validation(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	if _, err := uc.Chat(ctx, chat.ChatInput{Message: strings.Repeat("a", 10001)}); err != chat.ErrMessageTooLong {
		t.Errorf("long message error = %v, want ErrMessageTooLong", err)
	}
	if _, err := uc.Chat(ctx, chat.ChatInput{SessionID: strings.Repeat("s", 101), Message: "hi"}); err != chat.ErrSessionIDTooLong {
		t.Errorf("long session id error = %v, want ErrSessionIDTooLong", err)
	}
}

func TestChatAgentic_EmptyMessageShortCircuits(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	out, err := uc.ChatAgentic(ctx, chat.ChatInput{Message: "   "})
	if err != nil {
		t.Fatalf("ChatAgentic() error = %v", err)
	}
	if out.Intent != "unclear" || out.ActionType != "ask_clarification" {
		t.Errorf("metadata = %s/%s, want unclear/ask_clarification", out.Intent, out.ActionType)
	}
	if out.Confidence != 1.0 {
		t.Errorf("confidence = %v, want 1.0", out.Confidence)
	}
	if out.ContextUpdated {
		t.Error("empty message should not update context")
	}

	// No turn was recorded for the empty message.
	history, err := uc.History(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(history) != 0 {
		t.Errorf("history length = %d, want 0", len(history))
	}
}

func TestChatAgentic_Metadata(t *testing.T) {
	uc := newUseCase(t)

	out, err := uc.ChatAgentic(context.Background(), chat.ChatInput{Message: "10 * 2"})
	if err != nil {
		t.Fatalf("ChatAgentic() error = %v", err)
	}
	if out.Intent != "calculation" {
		t.Errorf("intent = %q, want calculation", out.Intent)
	}
	if out.ActionType != "calculate" {
		t.Errorf("action = %q, want calculate", out.ActionType)
	}
	if out.Confidence != 0.8 {
		t.Errorf("confidence = %v, want 0.8", out.Confidence)
	}
	if len(out.ToolsUsed) != 1 || out.ToolsUsed[0] != "calculator" {
		t.Errorf("tools used = %v, want [calculator]", out.ToolsUsed)
	}
	if out.Response != "10 * 2 = 20" {
		t.Errorf("response = %q, want %q", out.Response, "10 * 2 = 20")
	}
}

func TestSessionLifecycle(t *testing.T) {
	uc := newUseCase(t)
	ctx := context.Background()

	out, err := uc.Chat(ctx, chat.ChatInput{Message: "hello"})
	if err != nil {
		t.Fatalf("Chat() error = %v", err)
	}

	stats, err := uc.Stats(ctx, out.SessionID)
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if stats.TotalTurns != 1 {
		t.Errorf("total turns = %d, want 1", stats.TotalTurns)
	}

	if err := uc.ClearSession(ctx, out.SessionID); err != nil {
		t.Fatalf("ClearSession() error = %v", err)
	}
	if err := uc.ClearSession(ctx, out.SessionID); err != chat.ErrSessionNotFound {
		t.Errorf("second clear error = %v, want ErrSessionNotFound", err)
	}
	if _, err := uc.Stats(ctx, "missing-session"); err != chat.ErrSessionNotFound {
		t.Errorf("stats error = %v, want ErrSessionNotFound", err)
	}
}
