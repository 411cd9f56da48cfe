package http

import (
	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/outlet"
	"outlet-assistant/pkg/log"
)

// Handler is the public interface for the outlet HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	ListByArea(c *gin.Context)
	SearchNL(c *gin.Context)
	SearchNLPost(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc outlet.UseCase
}

// New creates a new HTTP handler for the outlet domain.
func New(l log.Logger, uc outlet.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
