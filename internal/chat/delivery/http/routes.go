package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/chat", h.Chat)
	rg.POST("/chat/agentic", h.ChatAgentic)
	rg.GET("/conversation/:session_id", h.Conversation)

	session := rg.Group("/session/:session_id")
	{
		session.GET("/stats", h.SessionStats)
		session.DELETE("", h.ClearSession)
	}
}
