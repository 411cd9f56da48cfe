package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"outlet-assistant/internal/product"
	"outlet-assistant/pkg/response"
)

// Search godoc
// @Summary     Search drinkware products
// @Description Vector search over the product knowledge base with a generated answer.
// @Tags        Products
// @Produce     json
// @Param       query       query string true  "Natural language query"
// @Param       max_results query int    false "Max products to retrieve (default 5)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /products [GET]
func (h *handler) Search(c *gin.Context) {
	maxResults, _ := strconv.Atoi(c.DefaultQuery("max_results", "5"))
	h.search(c, c.Query("query"), maxResults)
}

// SearchPost godoc
// @Summary     Search drinkware products (POST)
// @Description Same as the GET variant with the query in the request body.
// @Tags        Products
// @Accept      json
// @Produce     json
// @Param       body body searchReq true "Search query"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /products [POST]
func (h *handler) SearchPost(c *gin.Context) {
	var req searchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}
	h.search(c, req.Query, req.MaxResults)
}

func (h *handler) search(c *gin.Context, query string, maxResults int) {
	ctx := c.Request.Context()

	output, err := h.uc.Query(ctx, product.QueryInput{
		Query:      query,
		MaxResults: maxResults,
	})
	if err != nil {
		h.l.Errorf(ctx, "uc.Query: %v", err)
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newSearchResp(output))
}
