package telegram

import (
	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/chat"
	pkgLog "outlet-assistant/pkg/log"
	pkgTelegram "outlet-assistant/pkg/telegram"
)

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

// New creates a new Telegram delivery handler.
func New(l pkgLog.Logger, uc chat.UseCase, bot *pkgTelegram.Bot) Handler {
	return &handler{
		l:        l,
		uc:       uc,
		bot:      bot,
		sessions: make(map[int64]string),
	}
}
