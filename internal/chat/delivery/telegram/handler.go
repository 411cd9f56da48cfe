package telegram

import (
	"context"
	"sync"

	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/chat"
	pkgLog "outlet-assistant/pkg/log"
	pkgResponse "outlet-assistant/pkg/response"
	pkgTelegram "outlet-assistant/pkg/telegram"
)

type handler struct {
	l   pkgLog.Logger
	uc  chat.UseCase
	bot *pkgTelegram.Bot

	// Telegram chats map onto assistant sessions. The store mints its own
	// session IDs, so the mapping lives here; an evicted session simply
	// gets a fresh ID on the next message.
	mu       sync.Mutex
	sessions map[int64]string
}

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and processes the message in a
// background goroutine; Telegram expects an acknowledgment within a few
// seconds, and a weather or product lookup can take longer.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-message updates (polls, channel_post, etc.)
	if update.Message == nil {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message

	go func() {
		// Detach from the HTTP request context, which is cancelled after the response
		bgCtx := context.Background()
		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
			_ = h.bot.SendMessage(msg.Chat.ID, "Something went wrong while handling your message. Please try again.")
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage handles a single Telegram message. Each Telegram chat
// maps to one assistant session, so area context carries across messages.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	if msg.Text == "" {
		return nil
	}

	// ---- Built-in commands ----
	switch msg.Text {
	case "/start":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"👋 Welcome to the *Outlet Assistant*!\n\nAsk me about:\n• 📍 Outlet locations, hours, and phone numbers\n• 🌤️ Current weather and forecasts for Malaysia\n• ☕ ZUS drinkware products\n• 🧮 Simple calculations\n\n_Example: \"What time does the SS 2 outlet open?\"_",
			"Markdown",
		)
	case "/help":
		return h.bot.SendMessageWithMode(msg.Chat.ID,
			"*How to use:*\n\nJust ask in plain language, for example:\n`outlets in Petaling Jaya`\n`weather forecast for Penang`\n`do you have ceramic mugs?`\n`5 + 3`\n\nI remember the outlet you mentioned, so follow-ups like \"what's the address?\" work too.",
			"Markdown",
		)
	}

	h.mu.Lock()
	sessionID := h.sessions[msg.Chat.ID]
	h.mu.Unlock()

	out, err := h.uc.Chat(ctx, chat.ChatInput{
		SessionID: sessionID,
		Message:   msg.Text,
	})
	if err != nil {
		h.l.Errorf(ctx, "telegram handler: Chat failed: %v", err)
		return h.bot.SendMessage(msg.Chat.ID, "I couldn't process that message. Please try again.")
	}

	h.mu.Lock()
	h.sessions[msg.Chat.ID] = out.SessionID
	h.mu.Unlock()

	return h.bot.SendMessageWithMode(msg.Chat.ID, out.Response, "Markdown")
}
