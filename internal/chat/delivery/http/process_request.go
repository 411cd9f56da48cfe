package http

import (
	"html"

	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/chat"
)

// processChatRequest binds and sanitizes an inbound chat payload. The
// message is HTML-escaped before it reaches the pipeline; length limits
// are enforced downstream by the use case.
func (h *handler) processChatRequest(c *gin.Context) (chat.ChatInput, error) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return chat.ChatInput{}, err
	}

	return chat.ChatInput{
		SessionID: req.SessionID,
		Message:   html.EscapeString(req.Message),
	}, nil
}
