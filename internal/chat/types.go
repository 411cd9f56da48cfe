package chat

import "context"

// Intent is the classified purpose of a user message.
type Intent string

const (
	IntentGreeting        Intent = "greeting"
	IntentGoodbye         Intent = "goodbye"
	IntentOutletSearch    Intent = "outlet_search"
	IntentOutletSearchNL  Intent = "outlet_search_nl"
	IntentHoursInquiry    Intent = "hours_inquiry"
	IntentLocationInquiry Intent = "location_inquiry"
	IntentPhoneInquiry    Intent = "phone_inquiry"
	IntentCalculation     Intent = "calculation"
	IntentWeatherCurrent  Intent = "weather_current"
	IntentWeatherForecast Intent = "weather_forecast"
	IntentProductSearch   Intent = "product_search"
	IntentGeneralQuestion Intent = "general_question"
	IntentUnclear         Intent = "unclear"
)

// ActionType is the planner's decision of what to do next.
type ActionType string

const (
	ActionAskClarification ActionType = "ask_clarification"
	ActionSearchOutlets    ActionType = "search_outlets"
	ActionCalculate        ActionType = "calculate"
	ActionGetWeather       ActionType = "get_weather"
	ActionGetForecast      ActionType = "get_forecast"
	ActionSearchProducts   ActionType = "search_products"
	ActionSearchOutletsNL  ActionType = "search_outlets_nl"
	ActionProvideInfo      ActionType = "provide_info"
	ActionFinish           ActionType = "finish"
)

// ClassifiedIntent is the classifier output: intent, extracted entities,
// required-but-absent fields, and a confidence in [0,1].
type ClassifiedIntent struct {
	Intent      Intent
	Entities    map[string]any
	MissingInfo []string
	Confidence  float64
}

// Missing reports whether a required field was flagged as absent.
func (ci ClassifiedIntent) Missing(field string) bool {
	for _, m := range ci.MissingInfo {
		if m == field {
			return true
		}
	}
	return false
}

// PlannedAction is the planner output. The tool executor may append a
// rendered "message" parameter; it never replaces existing parameters.
type PlannedAction struct {
	ActionType    ActionType
	Parameters    map[string]any
	Reasoning     string
	RequiredTools []string
}

// ResponseText selects the user-facing text of an executed action.
func (a PlannedAction) ResponseText() string {
	if msg, ok := a.Parameters["message"].(string); ok && msg != "" {
		return msg
	}
	if q, ok := a.Parameters["question"].(string); ok && q != "" {
		return q
	}
	return "I'm here to help with outlet information, weather updates, and calculations. Could you please rephrase your question?"
}

// Result is the orchestrator output for one message.
type Result struct {
	Intent         ClassifiedIntent
	Action         PlannedAction
	ContextUpdates map[string]any
}

// Tool is one executor operation. Execute is total: it always returns
// renderable text, absorbing every internal failure into a user-facing
// message.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, params map[string]any) string
}

// ToolRegistry manages available tools.
type ToolRegistry struct {
	tools map[string]Tool
}

// NewToolRegistry creates a new tool registry.
func NewToolRegistry() *ToolRegistry {
	return &ToolRegistry{
		tools: make(map[string]Tool),
	}
}

// Register adds a tool to the registry.
func (r *ToolRegistry) Register(tool Tool) {
	r.tools[tool.Name()] = tool
}

// Get retrieves a tool by name.
func (r *ToolRegistry) Get(name string) (Tool, bool) {
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools.
func (r *ToolRegistry) List() []Tool {
	tools := make([]Tool, 0, len(r.tools))
	for _, tool := range r.tools {
		tools = append(tools, tool)
	}
	return tools
}

// --- UseCase IO ---

// ChatInput is one inbound chat message.
type ChatInput struct {
	SessionID string // optional; a new session is created when absent/unknown
	Message   string
}

// ChatOutput is the basic chat response envelope.
type ChatOutput struct {
	Response       string
	SessionID      string
	TurnNumber     int
	ContextUpdated bool
}

// AgenticOutput is the detailed chat response with planner metadata.
type AgenticOutput struct {
	ChatOutput
	Intent     string
	ActionType string
	Reasoning  string
	Confidence float64
	ToolsUsed  []string
}
