package orchestrator

import (
	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/chat/classifier"
	"outlet-assistant/internal/chat/planner"
	"outlet-assistant/pkg/log"
)

// Orchestrator runs the full message pipeline: classify, plan, execute,
// derive context updates. Process never fails; any panic inside a stage
// collapses into a safe fallback result.
type Orchestrator struct {
	l          log.Logger
	classifier *classifier.Classifier
	planner    *planner.Planner
	registry   *chat.ToolRegistry
}

// New creates an orchestrator over a tool registry.
func New(l log.Logger, registry *chat.ToolRegistry) *Orchestrator {
	return &Orchestrator{
		l:          l,
		classifier: classifier.New(),
		planner:    planner.New(),
		registry:   registry,
	}
}
