package planner

import (
	"strings"
	"testing"

	"outlet-assistant/internal/chat"
)

func TestPlan_Greeting(t *testing.T) {
	p := New()

	got := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentGreeting, Confidence: 0.9}, nil)
	if got.ActionType != chat.ActionProvideInfo {
		t.Errorf("action = %q, want provide_info", got.ActionType)
	}
	if msg, _ := got.Parameters["message"].(string); !strings.HasPrefix(msg, "Hello!") {
		t.Errorf("message = %q, want welcome text", msg)
	}
}

func TestPlan_Goodbye(t *testing.T) {
	p := New()

	got := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentGoodbye, Confidence: 0.9}, nil)
	if got.ActionType != chat.ActionFinish {
		t.Errorf("action = %q, want finish", got.ActionType)
	}
}

func TestPlan_Calculation(t *testing.T) {
	p := New()

	t.Run("with expression", func(t *testing.T) {
		got := p.Plan(chat.ClassifiedIntent{
			Intent:   chat.IntentCalculation,
			Entities: map[string]any{"operand1": 5, "operator": "+", "operand2": 3},
		}, nil)
		if got.ActionType != chat.ActionCalculate {
			t.Fatalf("action = %q, want calculate", got.ActionType)
		}
		if got.Parameters["operand1"] != 5 || got.Parameters["operator"] != "+" || got.Parameters["operand2"] != 3 {
			t.Errorf("parameters = %v, want 5 + 3", got.Parameters)
		}
	})

	t.Run("missing expression asks with example", func(t *testing.T) {
		got := p.Plan(chat.ClassifiedIntent{
			Intent:      chat.IntentCalculation,
			MissingInfo: []string{"calculation_expression"},
		}, nil)
		if got.ActionType != chat.ActionAskClarification {
			t.Fatalf("action = %q, want ask_clarification", got.ActionType)
		}
		q, _ := got.Parameters["question"].(string)
		if !strings.Contains(q, "5 + 3") {
			t.Errorf("question = %q, want an example expression", q)
		}
	})
}

func TestPlan_WeatherDefaults(t *testing.T) {
	p := New()

	got := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentWeatherCurrent, Entities: map[string]any{}}, nil)
	if got.ActionType != chat.ActionGetWeather {
		t.Fatalf("action = %q, want get_weather", got.ActionType)
	}
	if got.Parameters["location"] != "Kuala Lumpur, Malaysia" {
		t.Errorf("location = %v, want default city", got.Parameters["location"])
	}

	fc := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentWeatherForecast, Entities: map[string]any{"weather_location": "penang"}}, nil)
	if fc.ActionType != chat.ActionGetForecast {
		t.Fatalf("action = %q, want get_forecast", fc.ActionType)
	}
	if fc.Parameters["days"] != 3 {
		t.Errorf("days = %v, want default 3", fc.Parameters["days"])
	}
	if fc.Parameters["location"] != "penang" {
		t.Errorf("location = %v, want penang", fc.Parameters["location"])
	}
}

func TestPlan_HoursInquiryDefersToolCall(t *testing.T) {
	p := New()

	got := p.Plan(chat.ClassifiedIntent{
		Intent:   chat.IntentHoursInquiry,
		Entities: map[string]any{"location": "ss 2"},
	}, nil)
	if got.ActionType != chat.ActionProvideInfo {
		t.Fatalf("action = %q, want provide_info", got.ActionType)
	}
	if got.Parameters["tool_call"] != "get_hours_info" {
		t.Errorf("tool_call = %v, want get_hours_info", got.Parameters["tool_call"])
	}
	tp, ok := got.Parameters["tool_params"].(map[string]any)
	if !ok || tp["location"] != "ss 2" {
		t.Errorf("tool_params = %v, want location ss 2", got.Parameters["tool_params"])
	}
}

func TestPlan_InfoInquiryResolvesFromContext(t *testing.T) {
	p := New()

	tests := []struct {
		name     string
		ctx      map[string]any
		wantLoc  string
	}{
		{"last outlet wins", map[string]any{"last_outlet_mentioned": "klcc", "specific_location": "ss 2", "area": "petaling_jaya"}, "klcc"},
		{"specific location over area", map[string]any{"specific_location": "bukit bintang", "area": "kuala_lumpur"}, "bukit bintang"},
		{"area alone resolves", map[string]any{"area": "kuala_lumpur"}, "kuala_lumpur"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentLocationInquiry, Entities: map[string]any{}}, tt.ctx)
			if got.ActionType != chat.ActionProvideInfo {
				t.Fatalf("action = %q, want provide_info", got.ActionType)
			}
			tp, _ := got.Parameters["tool_params"].(map[string]any)
			if tp["location"] != tt.wantLoc {
				t.Errorf("resolved location = %v, want %q", tp["location"], tt.wantLoc)
			}
		})
	}

	t.Run("nothing to resolve asks", func(t *testing.T) {
		got := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentLocationInquiry, Entities: map[string]any{}}, map[string]any{})
		if got.ActionType != chat.ActionAskClarification {
			t.Errorf("action = %q, want ask_clarification", got.ActionType)
		}
	})
}

func TestPlan_OutletSearch(t *testing.T) {
	p := New()

	t.Run("without location lists areas", func(t *testing.T) {
		got := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentOutletSearch, Entities: map[string]any{}}, nil)
		if got.ActionType != chat.ActionAskClarification {
			t.Fatalf("action = %q, want ask_clarification", got.ActionType)
		}
		q, _ := got.Parameters["question"].(string)
		if !strings.Contains(q, "Petaling Jaya") || !strings.Contains(q, "Kuala Lumpur") {
			t.Errorf("question = %q, want both areas listed", q)
		}
	})

	t.Run("with location searches", func(t *testing.T) {
		got := p.Plan(chat.ClassifiedIntent{Intent: chat.IntentOutletSearch, Entities: map[string]any{"location": "pj"}}, nil)
		if got.ActionType != chat.ActionSearchOutlets {
			t.Fatalf("action = %q, want search_outlets", got.ActionType)
		}
		if got.Parameters["location"] != "pj" {
			t.Errorf("location = %v, want pj", got.Parameters["location"])
		}
	})
}

func TestPlan_Totality(t *testing.T) {
	p := New()

	intents := []chat.Intent{
		chat.IntentGreeting, chat.IntentGoodbye, chat.IntentOutletSearch,
		chat.IntentOutletSearchNL, chat.IntentHoursInquiry, chat.IntentLocationInquiry,
		chat.IntentPhoneInquiry, chat.IntentCalculation, chat.IntentWeatherCurrent,
		chat.IntentWeatherForecast, chat.IntentProductSearch, chat.IntentGeneralQuestion,
		chat.IntentUnclear, chat.Intent("bogus"),
	}
	known := map[chat.ActionType]bool{
		chat.ActionAskClarification: true,
		chat.ActionSearchOutlets:    true,
		chat.ActionCalculate:        true,
		chat.ActionGetWeather:       true,
		chat.ActionGetForecast:      true,
		chat.ActionSearchProducts:   true,
		chat.ActionSearchOutletsNL:  true,
		chat.ActionProvideInfo:      true,
		chat.ActionFinish:           true,
	}

	for _, in := range intents {
		got := p.Plan(chat.ClassifiedIntent{Intent: in, Entities: map[string]any{}}, nil)
		if !known[got.ActionType] {
			t.Errorf("Plan(%q) returned unknown action %q", in, got.ActionType)
		}
		if got.ResponseText() == "" && got.Parameters["tool_call"] == nil {
			t.Errorf("Plan(%q) produced no usable response path", in)
		}
	}
}
