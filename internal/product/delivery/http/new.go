package http

import (
	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/product"
	"outlet-assistant/pkg/log"
)

// Handler is the public interface for the product HTTP delivery layer.
type Handler interface {
	Search(c *gin.Context)
	SearchPost(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc product.UseCase
}

// New creates a new HTTP handler for the product domain.
func New(l log.Logger, uc product.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
