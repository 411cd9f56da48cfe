package orchestrator_test

import (
	"context"
	"strings"
	"testing"

	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/chat/orchestrator"
	"outlet-assistant/internal/chat/tools"
	"outlet-assistant/internal/outlet"
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

// panicTool
type panicTool struct{ name string }

func (t *panicTool) Name() string        { return t.name }
func (t *panicTool) Description() string { return "always panics" }
func (t *panicTool) Execute(ctx context.Context, params map[string]any) string {
	panic("boom")
}

func newOrchestrator() *orchestrator.Orchestrator {
	registry := chat.NewToolRegistry()
	registry.Register(tools.NewCalculator())
	catalog := outlet.NewCatalog()
	registry.Register(tools.NewSearchOutlets(catalog))
	registry.Register(tools.NewHoursInfo(catalog))
	registry.Register(tools.NewLocationInfo(catalog))
	registry.Register(tools.NewPhoneInfo(catalog))
	registry.Register(tools.NewWeather(&mockLogger{}, nil))
	registry.Register(tools.NewForecast(&mockLogger{}, nil))
	return orchestrator.New(&mockLogger{}, registry)
}

func TestProcess_CalculationEndToEnd(t *testing.T) {
	o := newOrchestrator()

	got := o.Process(context.Background(), "5 + 3", map[string]any{})
	if got.Intent.Intent != chat.IntentCalculation {
		t.Fatalf("intent = %q, want calculation", got.Intent.Intent)
	}
	if got.Action.ActionType != chat.ActionCalculate {
		t.Fatalf("action = %q, want calculate", got.Action.ActionType)
	}
	if got.Action.ResponseText() != "5 + 3 = 8" {
		t.Errorf("response = %q, want %q", got.Action.ResponseText(), "5 + 3 = 8")
	}
}

func TestProcess_DeferredHoursLookup(t *testing.T) {
	o := newOrchestrator()

	got := o.Process(context.Background(), "SS 2, what's the opening time?", map[string]any{})
	if got.Action.ActionType != chat.ActionProvideInfo {
		t.Fatalf("action = %q, want provide_info", got.Action.ActionType)
	}
	if got.Action.Parameters["tool_call"] != "get_hours_info" {
		t.Errorf("tool_call = %v, want get_hours_info", got.Action.Parameters["tool_call"])
	}
	if !strings.Contains(got.Action.ResponseText(), "SS 2 Outlet: 9:00 AM - 10:00 PM") {
		t.Errorf("response = %q, want SS 2 hours", got.Action.ResponseText())
	}
}

func TestProcess_AddressResolvedFromAreaContext(t *testing.T) {
	o := newOrchestrator()

	sessionContext := map[string]any{"area": "kuala_lumpur"}
	got := o.Process(context.Background(), "what's the address?", sessionContext)
	if got.Action.ActionType != chat.ActionProvideInfo {
		t.Fatalf("action = %q, want provide_info (not clarification)", got.Action.ActionType)
	}
	resp := got.Action.ResponseText()
	if !strings.Contains(resp, "KLCC Outlet") || !strings.Contains(resp, "Suria KLCC") {
		t.Errorf("response = %q, want Kuala Lumpur addresses", resp)
	}
}

func TestProcess_ContextUpdates(t *testing.T) {
	o := newOrchestrator()

	tests := []struct {
		name         string
		message      string
		wantArea     string
		wantSpecific string
	}{
		{"ss2 maps to petaling jaya", "is the ss2 outlet open?", "petaling_jaya", "ss 2"},
		{"damansara maps to petaling jaya", "damansara utama outlet hours", "petaling_jaya", "damansara utama"},
		{"klcc maps to kuala lumpur", "klcc outlet phone number", "kuala_lumpur", "klcc"},
		{"bukit bintang maps to kuala lumpur", "where is the bukit bintang store", "kuala_lumpur", "bukit bintang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := o.Process(context.Background(), tt.message, map[string]any{})
			if got.ContextUpdates["area"] != tt.wantArea {
				t.Errorf("area = %v, want %q", got.ContextUpdates["area"], tt.wantArea)
			}
			if got.ContextUpdates["specific_location"] != tt.wantSpecific {
				t.Errorf("specific_location = %v, want %q", got.ContextUpdates["specific_location"], tt.wantSpecific)
			}
			if got.ContextUpdates["last_outlet_mentioned"] == "" {
				t.Error("last_outlet_mentioned not recorded")
			}
		})
	}

	t.Run("no location leaves context untouched", func(t *testing.T) {
		got := o.Process(context.Background(), "hello", map[string]any{})
		if len(got.ContextUpdates) != 0 {
			t.Errorf("ContextUpdates = %v, want empty", got.ContextUpdates)
		}
	})
}

func TestProcess_WeatherUnavailableDegrades(t *testing.T) {
	o := newOrchestrator()

	got := o.Process(context.Background(), "what's the weather in penang?", map[string]any{})
	if got.Action.ActionType != chat.ActionGetWeather {
		t.Fatalf("action = %q, want get_weather", got.Action.ActionType)
	}
	if !strings.Contains(got.Action.ResponseText(), "currently unavailable") {
		t.Errorf("response = %q, want degraded message", got.Action.ResponseText())
	}
}

func TestProcess_RecoversFromToolPanic(t *testing.T) {
	registry := chat.NewToolRegistry()
	registry.Register(&panicTool{name: "calculator"})
	o := orchestrator.New(&mockLogger{}, registry)

	got := o.Process(context.Background(), "5 + 3", map[string]any{})
	if got.Intent.Intent != chat.IntentGeneralQuestion {
		t.Errorf("intent = %q, want general_question fallback", got.Intent.Intent)
	}
	if got.Intent.Confidence != 0.5 {
		t.Errorf("confidence = %v, want 0.5", got.Intent.Confidence)
	}
	if got.Action.ResponseText() == "" {
		t.Error("fallback response is empty")
	}
	if got.ContextUpdates == nil {
		t.Error("fallback ContextUpdates is nil")
	}
}

func TestProcess_UnregisteredToolStillAnswers(t *testing.T) {
	o := orchestrator.New(&mockLogger{}, chat.NewToolRegistry())

	got := o.Process(context.Background(), "5 + 3", map[string]any{})
	if got.Action.ResponseText() == "" {
		t.Error("response is empty when the planned tool is missing")
	}
}
