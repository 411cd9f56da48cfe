package http

import (
	"outlet-assistant/internal/model"
	"outlet-assistant/internal/outlet"
)

// --- Request DTOs ---

type searchNLReq struct {
	Query string `json:"query" binding:"required"`
}

func (r searchNLReq) toInput() outlet.SearchNLInput {
	return outlet.SearchNLInput{Query: r.Query}
}

// --- Response DTOs ---

type listResp struct {
	Outlets []model.Outlet `json:"outlets"`
	Count   int            `json:"count"`
}

func (h *handler) newListResp(outlets []model.Outlet) listResp {
	return listResp{
		Outlets: outlets,
		Count:   len(outlets),
	}
}

type searchNLResp struct {
	Query    string            `json:"query"`
	SQLQuery string            `json:"sql_query"`
	Results  []model.OutletRow `json:"results"`
	Count    int               `json:"count"`
	Success  bool              `json:"success"`
}

func (h *handler) newSearchNLResp(out outlet.SearchNLOutput) searchNLResp {
	return searchNLResp{
		Query:    out.Query,
		SQLQuery: out.SQLQuery,
		Results:  out.Results,
		Count:    out.Count,
		Success:  true,
	}
}
