package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	outlets := rg.Group("/outlets")
	{
		outlets.GET("", h.List)
		outlets.GET("/search", h.SearchNL)
		outlets.POST("/search", h.SearchNLPost)
		outlets.GET("/:area", h.ListByArea)
	}
}
