package planner

import (
	"outlet-assistant/internal/chat"
)

// Planner maps a classified intent onto the next action. It is pure and
// total: every intent, including malformed ones, yields a usable action.
type Planner struct{}

// New creates a planner.
func New() *Planner {
	return &Planner{}
}

// Plan decides the next action for a classified intent. Missing slots are
// first resolved against the session context; only then does the planner
// ask for clarification.
func (p *Planner) Plan(intent chat.ClassifiedIntent, sessionContext map[string]any) chat.PlannedAction {
	switch intent.Intent {
	case chat.IntentGreeting:
		return chat.PlannedAction{
			ActionType: chat.ActionProvideInfo,
			Parameters: map[string]any{
				"message": "Hello! I'm here to help you find information about our outlets. How can I assist you today?",
			},
			Reasoning: "User greeted, responding with welcome message",
		}

	case chat.IntentGoodbye:
		return chat.PlannedAction{
			ActionType: chat.ActionFinish,
			Parameters: map[string]any{
				"message": "Thank you for using our outlet assistant! Have a great day!",
			},
			Reasoning: "User is ending the conversation",
		}

	case chat.IntentCalculation:
		return p.planCalculation(intent)

	case chat.IntentWeatherCurrent:
		return p.planWeatherCurrent(intent)

	case chat.IntentWeatherForecast:
		return p.planWeatherForecast(intent)

	case chat.IntentProductSearch:
		return chat.PlannedAction{
			ActionType: chat.ActionSearchProducts,
			Parameters: map[string]any{
				"query": stringEntity(intent, "product_query"),
			},
			Reasoning:     "User is asking about drinkware products",
			RequiredTools: []string{"product_kb"},
		}

	case chat.IntentOutletSearchNL:
		return chat.PlannedAction{
			ActionType: chat.ActionSearchOutletsNL,
			Parameters: map[string]any{
				"query": stringEntity(intent, "outlet_query"),
			},
			Reasoning:     "User is searching outlets by attributes, routing to database search",
			RequiredTools: []string{"outlets_db"},
		}

	case chat.IntentOutletSearch:
		return p.planOutletSearch(intent, sessionContext)

	case chat.IntentHoursInquiry:
		return p.planInfoInquiry(intent, sessionContext,
			"get_hours_info",
			"Which outlet would you like the opening hours for? Please specify the location.",
			"Providing opening hours for the resolved outlet")

	case chat.IntentLocationInquiry:
		return p.planInfoInquiry(intent, sessionContext,
			"get_location_info",
			"Which outlet's address would you like? Please specify the location.",
			"Providing the address for the resolved outlet")

	case chat.IntentPhoneInquiry:
		return p.planInfoInquiry(intent, sessionContext,
			"get_phone_info",
			"Which outlet's phone number would you like? Please specify the location.",
			"Providing the phone number for the resolved outlet")

	case chat.IntentUnclear:
		return chat.PlannedAction{
			ActionType: chat.ActionAskClarification,
			Parameters: map[string]any{
				"question": "I'm not sure I understand. Are you looking for outlet locations, opening hours, contact information, or something else? I can also help with simple calculations!",
			},
			Reasoning: "Intent unclear, asking for clarification",
		}
	}

	// Unknown or general intents get a capability summary instead of a
	// dead end.
	return chat.PlannedAction{
		ActionType: chat.ActionAskClarification,
		Parameters: map[string]any{
			"question": "How can I help you today? I can provide information about our outlet locations, hours, contact details, current weather conditions, and weather forecasts for Malaysia.",
		},
		Reasoning: "No specific intent matched, offering general help",
	}
}

func (p *Planner) planCalculation(intent chat.ClassifiedIntent) chat.PlannedAction {
	if intent.Missing("calculation_expression") {
		return chat.PlannedAction{
			ActionType: chat.ActionAskClarification,
			Parameters: map[string]any{
				"question": "I'd be happy to help with calculations! Could you please provide a clear math expression? For example: '5 + 3' or '10 * 2'",
			},
			Reasoning: "Calculation requested but no valid expression found",
		}
	}
	return chat.PlannedAction{
		ActionType: chat.ActionCalculate,
		Parameters: map[string]any{
			"operand1": intent.Entities["operand1"],
			"operator": intent.Entities["operator"],
			"operand2": intent.Entities["operand2"],
		},
		Reasoning:     "User wants to perform a calculation",
		RequiredTools: []string{"calculator"},
	}
}

func (p *Planner) planWeatherCurrent(intent chat.ClassifiedIntent) chat.PlannedAction {
	if intent.Missing("location") {
		return chat.PlannedAction{
			ActionType: chat.ActionAskClarification,
			Parameters: map[string]any{
				"question": "Which city would you like the weather for? I can provide weather for any Malaysian city. If you don't specify, I'll show weather for Kuala Lumpur.",
			},
			Reasoning: "Weather requested but location is ambiguous",
		}
	}
	location := stringEntity(intent, "weather_location")
	if location == "" {
		location = "Kuala Lumpur, Malaysia"
	}
	return chat.PlannedAction{
		ActionType: chat.ActionGetWeather,
		Parameters: map[string]any{
			"location": location,
		},
		Reasoning:     "User wants current weather conditions",
		RequiredTools: []string{"weather_api"},
	}
}

func (p *Planner) planWeatherForecast(intent chat.ClassifiedIntent) chat.PlannedAction {
	if intent.Missing("location") {
		return chat.PlannedAction{
			ActionType: chat.ActionAskClarification,
			Parameters: map[string]any{
				"question": "Which city would you like the weather forecast for? I can provide forecasts for any Malaysian city.",
			},
			Reasoning: "Forecast requested but location is ambiguous",
		}
	}
	location := stringEntity(intent, "weather_location")
	if location == "" {
		location = "Kuala Lumpur, Malaysia"
	}
	days := 3
	if d, ok := intent.Entities["forecast_days"].(int); ok && d > 0 {
		days = d
	}
	return chat.PlannedAction{
		ActionType: chat.ActionGetForecast,
		Parameters: map[string]any{
			"location": location,
			"days":     days,
		},
		Reasoning:     "User wants a weather forecast",
		RequiredTools: []string{"weather_api"},
	}
}

func (p *Planner) planOutletSearch(intent chat.ClassifiedIntent, sessionContext map[string]any) chat.PlannedAction {
	location := stringEntity(intent, "location")
	if location == "" {
		location = resolveLocation(sessionContext)
	}
	if location == "" {
		return chat.PlannedAction{
			ActionType: chat.ActionAskClarification,
			Parameters: map[string]any{
				"question": "Which area are you interested in? We have outlets in Petaling Jaya (SS 2, SS 15, Damansara Utama) and Kuala Lumpur (KLCC, Bukit Bintang).",
			},
			Reasoning: "Outlet search requested but no area given or remembered",
		}
	}
	return chat.PlannedAction{
		ActionType: chat.ActionSearchOutlets,
		Parameters: map[string]any{
			"location": location,
		},
		Reasoning:     "User wants outlets in a known area",
		RequiredTools: []string{"outlet_search"},
	}
}

// planInfoInquiry handles hours, address, and phone questions. The tool
// call is deferred: the planner emits a provide_info action carrying the
// tool name and parameters, and the executor fills in the message.
func (p *Planner) planInfoInquiry(intent chat.ClassifiedIntent, sessionContext map[string]any, toolCall, clarify, reasoning string) chat.PlannedAction {
	location := stringEntity(intent, "location")
	if location == "" {
		location = resolveLocation(sessionContext)
	}
	if location == "" {
		return chat.PlannedAction{
			ActionType: chat.ActionAskClarification,
			Parameters: map[string]any{
				"question": clarify,
			},
			Reasoning: "Outlet detail requested but no location given or remembered",
		}
	}
	return chat.PlannedAction{
		ActionType: chat.ActionProvideInfo,
		Parameters: map[string]any{
			"tool_call": toolCall,
			"tool_params": map[string]any{
				"location": location,
			},
		},
		Reasoning:     reasoning,
		RequiredTools: []string{"outlet_search"},
	}
}

// resolveLocation walks the session context in priority order: the most
// recently mentioned outlet wins over the remembered sub-location, which
// wins over the broad area.
func resolveLocation(sessionContext map[string]any) string {
	for _, key := range []string{"last_outlet_mentioned", "specific_location", "area"} {
		if v, ok := sessionContext[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func stringEntity(intent chat.ClassifiedIntent, key string) string {
	if v, ok := intent.Entities[key].(string); ok {
		return v
	}
	return ""
}
