package usecase

import (
	"context"
	"strings"

	"outlet-assistant/internal/chat"
)

const (
	maxMessageLen   = 10000
	maxSessionIDLen = 100
)

func (uc *implUseCase) Chat(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, error) {
	if err := validate(input); err != nil {
		return chat.ChatOutput{}, err
	}

	out, _ := uc.process(ctx, input)
	return out, nil
}

func (uc *implUseCase) ChatAgentic(ctx context.Context, input chat.ChatInput) (chat.AgenticOutput, error) {
	if err := validate(input); err != nil {
		return chat.AgenticOutput{}, err
	}

	// Whitespace-only messages are answered without recording a turn.
	if strings.TrimSpace(input.Message) == "" {
		sessionID := uc.store.GetOrCreate(ctx, input.SessionID)
		return chat.AgenticOutput{
			ChatOutput: chat.ChatOutput{
				Response:   "I'm here to help! What would you like to know about outlets, weather, or calculations?",
				SessionID:  sessionID,
				TurnNumber: 1,
			},
			Intent:     string(chat.IntentUnclear),
			ActionType: string(chat.ActionAskClarification),
			Reasoning:  "Empty or whitespace-only message received",
			Confidence: 1.0,
			ToolsUsed:  []string{},
		}, nil
	}

	out, result := uc.process(ctx, input)
	toolsUsed := result.Action.RequiredTools
	if toolsUsed == nil {
		toolsUsed = []string{}
	}
	return chat.AgenticOutput{
		ChatOutput: out,
		Intent:     string(result.Intent.Intent),
		ActionType: string(result.Action.ActionType),
		Reasoning:  result.Action.Reasoning,
		Confidence: result.Intent.Confidence,
		ToolsUsed:  toolsUsed,
	}, nil
}

// process runs one turn: resolve the session, hand the message to the
// orchestrator, persist the context deltas, record the turn.
func (uc *implUseCase) process(ctx context.Context, input chat.ChatInput) (chat.ChatOutput, chat.Result) {
	sessionID := uc.store.GetOrCreate(ctx, input.SessionID)
	sessionContext := uc.store.Context(ctx, sessionID)

	result := uc.orch.Process(ctx, input.Message, sessionContext)

	for key, value := range result.ContextUpdates {
		uc.store.UpdateContext(ctx, sessionID, key, value)
	}

	response := result.Action.ResponseText()
	turnNumber := uc.store.AddTurn(ctx, sessionID, input.Message, response)

	uc.l.Debugf(ctx, "chat turn %d session=%s intent=%s action=%s",
		turnNumber, sessionID, result.Intent.Intent, result.Action.ActionType)

	return chat.ChatOutput{
		Response:       response,
		SessionID:      sessionID,
		TurnNumber:     turnNumber,
		ContextUpdated: len(result.ContextUpdates) > 0,
	}, result
}

func validate(input chat.ChatInput) error {
	if len(input.Message) > maxMessageLen {
		return chat.ErrMessageTooLong
	}
	if len(input.SessionID) > maxSessionIDLen {
		return chat.ErrSessionIDTooLong
	}
	return nil
}
