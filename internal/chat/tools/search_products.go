package tools

import (
	"context"
	"fmt"

	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/product"
	"outlet-assistant/pkg/log"
)

// searchProductsTool answers drinkware questions through the product
// knowledge base. Direct in-process call, no HTTP loopback.
type searchProductsTool struct {
	l  log.Logger
	uc product.UseCase
}

// NewSearchProducts creates the product search tool.
func NewSearchProducts(l log.Logger, uc product.UseCase) chat.Tool {
	return &searchProductsTool{l: l, uc: uc}
}

func (t *searchProductsTool) Name() string { return "search_products" }

func (t *searchProductsTool) Description() string {
	return "Searches the drinkware product knowledge base and answers in prose"
}

func (t *searchProductsTool) Execute(ctx context.Context, params map[string]any) string {
	query, _ := params["query"].(string)

	out, err := t.uc.Query(ctx, product.QueryInput{Query: query, MaxResults: 3})
	if err != nil {
		t.l.Warnf(ctx, "product search failed: %v", err)
		return fmt.Sprintf("Product search is currently unavailable: %v", err)
	}
	if out.Answer == "" {
		return "No products found."
	}
	return out.Answer
}
