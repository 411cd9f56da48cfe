package orchestrator

import (
	"context"
	"strings"

	"outlet-assistant/internal/chat"
)

// Process handles one user message against the session context. The
// session itself is not mutated here; the caller applies ContextUpdates.
func (o *Orchestrator) Process(ctx context.Context, message string, sessionContext map[string]any) (result chat.Result) {
	defer func() {
		if r := recover(); r != nil {
			o.l.Errorf(ctx, "orchestrator panic recovered: %v", r)
			result = fallbackResult()
		}
	}()

	intent := o.classifier.Classify(message, sessionContext)
	action := o.planner.Plan(intent, sessionContext)
	o.execute(ctx, &action)

	return chat.Result{
		Intent:         intent,
		Action:         action,
		ContextUpdates: deriveContextUpdates(intent),
	}
}

// execute runs the tool an action calls for and appends the rendered text
// as the "message" parameter. Actions without tools pass through.
func (o *Orchestrator) execute(ctx context.Context, action *chat.PlannedAction) {
	var name string
	params := action.Parameters

	switch action.ActionType {
	case chat.ActionCalculate:
		name = "calculator"
	case chat.ActionSearchOutlets:
		name = "search_outlets"
	case chat.ActionGetWeather:
		name = "get_weather"
	case chat.ActionGetForecast:
		name = "get_forecast"
	case chat.ActionSearchProducts:
		name = "search_products"
	case chat.ActionSearchOutletsNL:
		name = "search_outlets_nl"
	default:
		// Deferred calls ride on provide_info actions.
		deferred, _ := action.Parameters["tool_call"].(string)
		if deferred == "" {
			return
		}
		name = deferred
		if tp, ok := action.Parameters["tool_params"].(map[string]any); ok {
			params = tp
		}
	}

	tool, ok := o.registry.Get(name)
	if !ok {
		o.l.Warnf(ctx, "planned tool %q is not registered", name)
		return
	}
	action.Parameters["message"] = tool.Execute(ctx, params)
}

// deriveContextUpdates turns a recognized outlet location into memory for
// later turns: the outlet itself, its parent area, and, when the mention
// was specific enough, the sub-location.
func deriveContextUpdates(intent chat.ClassifiedIntent) map[string]any {
	updates := map[string]any{}

	location, ok := intent.Entities["location"].(string)
	if !ok || location == "" {
		return updates
	}
	loc := strings.ToLower(location)
	updates["last_outlet_mentioned"] = location

	if containsAny(loc, "petaling jaya", "pj", "ss 2", "ss2", "ss 15", "ss15", "damansara") {
		updates["area"] = "petaling_jaya"
		switch {
		case strings.Contains(loc, "ss 2") || strings.Contains(loc, "ss2"):
			updates["specific_location"] = "ss 2"
		case strings.Contains(loc, "ss 15") || strings.Contains(loc, "ss15"):
			updates["specific_location"] = "ss 15"
		case strings.Contains(loc, "damansara"):
			updates["specific_location"] = "damansara utama"
		}
	} else if containsAny(loc, "kuala lumpur", "kl", "klcc", "bukit bintang") {
		updates["area"] = "kuala_lumpur"
		switch {
		case strings.Contains(loc, "klcc"):
			updates["specific_location"] = "klcc"
		case strings.Contains(loc, "bukit bintang"):
			updates["specific_location"] = "bukit bintang"
		}
	}
	return updates
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func fallbackResult() chat.Result {
	return chat.Result{
		Intent: chat.ClassifiedIntent{
			Intent:      chat.IntentGeneralQuestion,
			Entities:    map[string]any{},
			MissingInfo: []string{},
			Confidence:  0.5,
		},
		Action: chat.PlannedAction{
			ActionType: chat.ActionProvideInfo,
			Parameters: map[string]any{
				"message": "I'm sorry, something went wrong while handling that. Could you try rephrasing your question?",
			},
			Reasoning: "Recovered from an internal failure",
		},
		ContextUpdates: map[string]any{},
	}
}
