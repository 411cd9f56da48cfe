package http

import (
	"outlet-assistant/internal/model"
	"outlet-assistant/internal/product"
)

// --- Request DTOs ---

type searchReq struct {
	Query      string `json:"query" binding:"required"`
	MaxResults int    `json:"max_results"`
}

// --- Response DTOs ---

type searchResp struct {
	Query      string          `json:"query"`
	Answer     string          `json:"answer"`
	Products   []model.Product `json:"products"`
	Sources    []string        `json:"sources"`
	TotalFound int             `json:"total_found"`
	Success    bool            `json:"success"`
}

func (h *handler) newSearchResp(out product.QueryOutput) searchResp {
	return searchResp{
		Query:      out.Query,
		Answer:     out.Answer,
		Products:   out.Products,
		Sources:    out.Sources,
		TotalFound: out.TotalFound,
		Success:    true,
	}
}
