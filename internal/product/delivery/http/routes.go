package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	products := rg.Group("/products")
	{
		products.GET("", h.Search)
		products.POST("", h.SearchPost)
	}
}
