package usecase

import (
	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/chat/orchestrator"
	"outlet-assistant/internal/session"
	"outlet-assistant/pkg/log"
)

type implUseCase struct {
	l     log.Logger
	store session.Store
	orch  *orchestrator.Orchestrator
}

// New creates the chat use case.
func New(l log.Logger, store session.Store, orch *orchestrator.Orchestrator) chat.UseCase {
	return &implUseCase{
		l:     l,
		store: store,
		orch:  orch,
	}
}
