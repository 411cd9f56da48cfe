package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/chat"
	"outlet-assistant/pkg/response"
)

// Chat godoc
// @Summary     Chat with the outlet assistant
// @Description Processes one message through the intent pipeline and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processChatRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.Chat: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newChatResp(out))
}

// ChatAgentic godoc
// @Summary     Chat with planner metadata
// @Description Same pipeline as /chat, with the classified intent, planned action, and confidence attached.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200 {object} agenticChatResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /chat/agentic [POST]
func (h *handler) ChatAgentic(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processChatRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.ChatAgentic(ctx, input)
	if err != nil {
		h.l.Warnf(ctx, "uc.ChatAgentic: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, newAgenticChatResp(out))
}

// Conversation godoc
// @Summary     Get conversation history
// @Description Returns the retained turns of a session, oldest first.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} conversationResp
// @Router      /conversation/{session_id} [GET]
func (h *handler) Conversation(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")
	turns, err := h.uc.History(ctx, sessionID)
	if err != nil {
		h.l.Errorf(ctx, "uc.History: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, conversationResp{SessionID: sessionID, Turns: turns})
}

// SessionStats godoc
// @Summary     Get session statistics
// @Description Returns turn counts, timestamps, and remembered context keys.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} model.SessionStats
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /session/{session_id}/stats [GET]
func (h *handler) SessionStats(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")
	stats, err := h.uc.Stats(ctx, sessionID)
	if err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, stats)
}

// ClearSession godoc
// @Summary     Clear a session
// @Description Deletes a session and its remembered context.
// @Tags        Chat
// @Produce     json
// @Param       session_id path string true "Session ID"
// @Success     200 {object} clearSessionResp
// @Failure     404 {object} response.Resp "Session not found"
// @Router      /session/{session_id} [DELETE]
func (h *handler) ClearSession(c *gin.Context) {
	ctx := c.Request.Context()

	sessionID := c.Param("session_id")
	if err := h.uc.ClearSession(ctx, sessionID); err != nil {
		if errors.Is(err, chat.ErrSessionNotFound) {
			response.NotFound(c, err)
			return
		}
		h.l.Errorf(ctx, "uc.ClearSession: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, clearSessionResp{Message: "Session cleared successfully"})
}
