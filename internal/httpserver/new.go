package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"outlet-assistant/config"
	"outlet-assistant/internal/chat"
	tgDelivery "outlet-assistant/internal/chat/delivery/telegram"
	"outlet-assistant/internal/outlet"
	"outlet-assistant/internal/product"
	"outlet-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Domain use cases
	chatUC    chat.UseCase
	outletUC  outlet.UseCase
	productUC product.UseCase

	// Telegram webhook (optional)
	telegramHandler tgDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	ChatUC    chat.UseCase
	OutletUC  outlet.UseCase
	ProductUC product.UseCase

	TelegramHandler tgDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimit:       cfg.RateLimit,
		chatUC:          cfg.ChatUC,
		outletUC:        cfg.OutletUC,
		productUC:       cfg.ProductUC,
		telegramHandler: cfg.TelegramHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.outletUC == nil {
		return errors.New("outlet use case is required")
	}
	if srv.productUC == nil {
		return errors.New("product use case is required")
	}
	return nil
}
