package classifier

import (
	"testing"

	"outlet-assistant/internal/chat"
)

func TestClassify_Intents(t *testing.T) {
	c := New()

	tests := []struct {
		name       string
		message    string
		wantIntent chat.Intent
		wantConf   float64
	}{
		{"greeting", "Hello there", chat.IntentGreeting, 0.9},
		{"goodbye", "thanks, bye", chat.IntentGoodbye, 0.9},
		{"calculation with expression", "5 + 3", chat.IntentCalculation, 0.8},
		{"calculation keyword without expression", "please calculate something for me, the sum", chat.IntentCalculation, 0.6},
		{"vague single word calculate", "Calculate", chat.IntentCalculation, 0.5},
		{"forecast", "weather forecast for penang", chat.IntentWeatherForecast, 0.8},
		{"current weather with city", "what's the temperature in ipoh", chat.IntentWeatherCurrent, 0.8},
		{"bare weather word", "weather", chat.IntentWeatherCurrent, 0.6},
		{"product search", "do you sell tumblers", chat.IntentProductSearch, 0.8},
		{"outlet nl search", "any outlets with drive-thru", chat.IntentOutletSearchNL, 0.8},
		{"outlet search with location", "outlets in petaling jaya", chat.IntentOutletSearch, 0.8},
		{"outlet search without location", "outlets", chat.IntentOutletSearch, 0.6},
		{"hours inquiry", "SS 2, what's the opening time?", chat.IntentHoursInquiry, 0.8},
		{"location inquiry", "what's the address of the klcc branch", chat.IntentLocationInquiry, 0.8},
		{"phone inquiry", "phone for bukit bintang", chat.IntentPhoneInquiry, 0.8},
		{"unclear", "zzzzz qwerty", chat.IntentUnclear, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.message, map[string]any{})
			if got.Intent != tt.wantIntent {
				t.Errorf("intent = %q, want %q", got.Intent, tt.wantIntent)
			}
			if got.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", got.Confidence, tt.wantConf)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("confidence %v out of [0,1]", got.Confidence)
			}
		})
	}
}

func TestClassify_EmptyMessage(t *testing.T) {
	c := New()

	for _, msg := range []string{"", "   ", "\t\n"} {
		got := c.Classify(msg, nil)
		if got.Intent != chat.IntentUnclear {
			t.Errorf("Classify(%q).Intent = %q, want unclear", msg, got.Intent)
		}
		if got.Confidence != 0.0 {
			t.Errorf("Classify(%q).Confidence = %v, want 0.0", msg, got.Confidence)
		}
		if len(got.MissingInfo) == 0 {
			t.Errorf("Classify(%q).MissingInfo is empty, want non-empty", msg)
		}
	}
}

func TestClassify_MathEntities(t *testing.T) {
	c := New()

	got := c.Classify("what is 10 * 2?", nil)
	if got.Intent != chat.IntentCalculation {
		t.Fatalf("intent = %q, want calculation", got.Intent)
	}
	if got.Entities["operand1"] != 10 || got.Entities["operator"] != "*" || got.Entities["operand2"] != 2 {
		t.Errorf("entities = %v, want operands 10 * 2", got.Entities)
	}
	if got.Missing("calculation_expression") {
		t.Error("calculation_expression flagged missing despite a full expression")
	}
}

func TestClassify_LocationEntityBeforeDispatch(t *testing.T) {
	c := New()

	got := c.Classify("SS 2, what's the opening time?", nil)
	if got.Intent != chat.IntentHoursInquiry {
		t.Fatalf("intent = %q, want hours_inquiry", got.Intent)
	}
	if got.Entities["location"] != "ss 2" {
		t.Errorf("location entity = %v, want %q", got.Entities["location"], "ss 2")
	}
	if got.Missing("location") {
		t.Error("location flagged missing despite explicit entity")
	}
}

func TestClassify_InfoInquiryUsesSessionContext(t *testing.T) {
	c := New()

	withCtx := c.Classify("what's the address?", map[string]any{"area": "kuala_lumpur"})
	if withCtx.Intent != chat.IntentLocationInquiry {
		t.Fatalf("intent = %q, want location_inquiry", withCtx.Intent)
	}
	if withCtx.Missing("location") {
		t.Error("location flagged missing despite area in session context")
	}

	noCtx := c.Classify("what's the address?", map[string]any{})
	if !noCtx.Missing("location") {
		t.Error("location not flagged missing without entity or context")
	}
}

func TestClassify_ForecastDays(t *testing.T) {
	c := New()

	got := c.Classify("5-day weather forecast for kl", nil)
	if got.Intent != chat.IntentWeatherForecast {
		t.Fatalf("intent = %q, want weather_forecast", got.Intent)
	}
	if got.Entities["forecast_days"] != 5 {
		t.Errorf("forecast_days = %v, want 5", got.Entities["forecast_days"])
	}
	if got.Entities["weather_location"] != "kl" {
		t.Errorf("weather_location = %v, want %q", got.Entities["weather_location"], "kl")
	}

	def := c.Classify("weather forecast for penang", nil)
	if def.Entities["forecast_days"] != 3 {
		t.Errorf("default forecast_days = %v, want 3", def.Entities["forecast_days"])
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := New()

	first := c.Classify("outlets in pj", map[string]any{"area": "petaling_jaya"})
	for i := 0; i < 5; i++ {
		again := c.Classify("outlets in pj", map[string]any{"area": "petaling_jaya"})
		if again.Intent != first.Intent || again.Confidence != first.Confidence {
			t.Fatalf("run %d diverged: %+v vs %+v", i, again, first)
		}
	}
}
