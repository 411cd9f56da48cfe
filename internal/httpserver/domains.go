package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	chatHTTP "outlet-assistant/internal/chat/delivery/http"
	"outlet-assistant/internal/middleware"
	outletHTTP "outlet-assistant/internal/outlet/delivery/http"
	productHTTP "outlet-assistant/internal/product/delivery/http"
)

// setupChatDomain registers the conversational endpoints behind the
// rate limiter.
func (srv HTTPServer) setupChatDomain(ctx context.Context, root *gin.RouterGroup, mw middleware.Middleware) {
	h := chatHTTP.New(srv.l, srv.chatUC)

	limited := root.Group("", mw.RateLimit())
	chatHTTP.RegisterRoutes(limited, h)

	srv.l.Infof(ctx, "Chat domain registered")
}

func (srv HTTPServer) setupOutletDomain(ctx context.Context, root *gin.RouterGroup) {
	h := outletHTTP.New(srv.l, srv.outletUC)
	outletHTTP.RegisterRoutes(root, h)

	srv.l.Infof(ctx, "Outlet domain registered")
}

func (srv HTTPServer) setupProductDomain(ctx context.Context, root *gin.RouterGroup) {
	h := productHTTP.New(srv.l, srv.productUC)
	productHTTP.RegisterRoutes(root, h)

	srv.l.Infof(ctx, "Product domain registered")
}
