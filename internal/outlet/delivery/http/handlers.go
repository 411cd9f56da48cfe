package http

import (
	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/outlet"
	"outlet-assistant/pkg/response"
)

// List godoc
// @Summary     List all outlets
// @Description Returns the full outlet catalog.
// @Tags        Outlets
// @Produce     json
// @Success     200 {object} listResp
// @Router      /outlets [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	outlets := h.uc.List(ctx)
	response.OK(c, h.newListResp(outlets))
}

// ListByArea godoc
// @Summary     List outlets by area
// @Description Returns the catalog outlets in one area, e.g. "petaling_jaya".
// @Tags        Outlets
// @Produce     json
// @Param       area path string true "Area key"
// @Success     200 {object} listResp
// @Failure     404 {object} response.Resp "No outlets in area"
// @Router      /outlets/{area} [GET]
func (h *handler) ListByArea(c *gin.Context) {
	ctx := c.Request.Context()

	area := c.Param("area")
	outlets, err := h.uc.ListByArea(ctx, area)
	if err != nil {
		h.l.Warnf(ctx, "uc.ListByArea: area=%q: %v", area, err)
		response.NotFound(c, err)
		return
	}

	response.OK(c, h.newListResp(outlets))
}

// SearchNL godoc
// @Summary     Natural-language outlet search
// @Description Converts the query to SQL, executes it, and returns matching rows.
// @Tags        Outlets
// @Produce     json
// @Param       query query string true "Natural language query"
// @Success     200 {object} searchNLResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /outlets/search [GET]
func (h *handler) SearchNL(c *gin.Context) {
	h.searchNL(c, c.Query("query"))
}

// SearchNLPost godoc
// @Summary     Natural-language outlet search (POST)
// @Description Same as the GET variant with the query in the request body.
// @Tags        Outlets
// @Accept      json
// @Produce     json
// @Param       body body searchNLReq true "Search query"
// @Success     200 {object} searchNLResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /outlets/search [POST]
func (h *handler) SearchNLPost(c *gin.Context) {
	var req searchNLReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	h.searchNL(c, req.Query)
}

func (h *handler) searchNL(c *gin.Context, query string) {
	ctx := c.Request.Context()

	output, err := h.uc.SearchNL(ctx, outlet.SearchNLInput{Query: query})
	if err != nil {
		h.l.Errorf(ctx, "uc.SearchNL: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newSearchNLResp(output))
}
