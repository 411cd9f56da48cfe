package http

import (
	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/model"
)

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResp struct {
	Response       string `json:"response"`
	SessionID      string `json:"session_id"`
	TurnNumber     int    `json:"turn_number"`
	ContextUpdated bool   `json:"context_updated"`
}

type agenticChatResp struct {
	chatResp
	Intent     string   `json:"intent"`
	ActionType string   `json:"action_type"`
	Reasoning  string   `json:"reasoning"`
	Confidence float64  `json:"confidence"`
	ToolsUsed  []string `json:"tools_used"`
}

type conversationResp struct {
	SessionID string       `json:"session_id"`
	Turns     []model.Turn `json:"turns"`
}

type clearSessionResp struct {
	Message string `json:"message"`
}

func newChatResp(out chat.ChatOutput) chatResp {
	return chatResp{
		Response:       out.Response,
		SessionID:      out.SessionID,
		TurnNumber:     out.TurnNumber,
		ContextUpdated: out.ContextUpdated,
	}
}

func newAgenticChatResp(out chat.AgenticOutput) agenticChatResp {
	return agenticChatResp{
		chatResp:   newChatResp(out.ChatOutput),
		Intent:     out.Intent,
		ActionType: out.ActionType,
		Reasoning:  out.Reasoning,
		Confidence: out.Confidence,
		ToolsUsed:  out.ToolsUsed,
	}
}
