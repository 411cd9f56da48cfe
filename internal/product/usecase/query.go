package usecase

import (
	"context"
	"fmt"
	"strings"

	"outlet-assistant/internal/model"
	"outlet-assistant/internal/product"
)

// Query retrieves relevant products and generates a grounded answer.
func (uc *implUseCase) Query(ctx context.Context, input product.QueryInput) (product.QueryOutput, error) {
	if strings.TrimSpace(input.Query) == "" {
		return product.QueryOutput{}, product.ErrEmptyQuery
	}
	if uc.vectorRepo == nil {
		return product.QueryOutput{}, product.ErrUnavailable
	}

	limit := input.MaxResults
	if limit <= 0 {
		limit = 5
	}

	uc.l.Infof(ctx, "Query: query=%q limit=%d", input.Query, limit)

	results, err := uc.vectorRepo.Search(ctx, input.Query, limit)
	if err != nil {
		uc.l.Errorf(ctx, "Query: vector search failed: %v", err)
		return product.QueryOutput{}, fmt.Errorf("failed to search products: %w", err)
	}

	if len(results) == 0 {
		return product.QueryOutput{
			Query:    input.Query,
			Answer:   "I couldn't find any relevant products for your query.",
			Products: []model.Product{},
			Sources:  []string{},
		}, nil
	}

	top := results
	if len(top) > 3 {
		top = top[:3]
	}

	answer := uc.generateAnswer(ctx, input.Query, top)

	sources := make([]string, len(top))
	for i, p := range top {
		sources[i] = p.Name
	}

	return product.QueryOutput{
		Query:      input.Query,
		Answer:     answer,
		Products:   top,
		Sources:    sources,
		TotalFound: len(results),
	}, nil
}

// generateAnswer asks the LLM for a recommendation grounded on the
// retrieved products. Falls back to a plain listing when generation fails.
func (uc *implUseCase) generateAnswer(ctx context.Context, query string, products []model.Product) string {
	var context strings.Builder
	context.WriteString("Based on ZUS Coffee's drinkware collection, here are the relevant products:\n\n")
	for i, p := range products {
		context.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, p.Name, p.Price))
		context.WriteString(fmt.Sprintf("   Description: %s\n", p.Description))
		if len(p.Features) > 0 {
			context.WriteString(fmt.Sprintf("   Features: %s\n", strings.Join(p.Features, ", ")))
		}
		if p.Material != "" {
			context.WriteString(fmt.Sprintf("   Material: %s\n", p.Material))
		}
		if p.Capacity != "" {
			context.WriteString(fmt.Sprintf("   Capacity: %s\n", p.Capacity))
		}
		context.WriteString("\n")
	}

	prompt := fmt.Sprintf(`You are a helpful ZUS Coffee product expert. Use the provided product information to answer the customer's question about drinkware products.

Product Information:
%s

Customer Question: %s

Please provide a helpful, accurate response based on the product information. If recommending products, explain why they match the customer's needs. Be friendly and informative.

Response:`, context.String(), query)

	if uc.llm != nil {
		answer, err := uc.llm.Complete(ctx,
			"You are a knowledgeable ZUS Coffee product specialist helping customers find the perfect drinkware.",
			prompt,
		)
		if err == nil {
			return answer
		}
		uc.l.Warnf(ctx, "generateAnswer: LLM failed, degrading to listing: %v", err)
	}

	var fallback strings.Builder
	fallback.WriteString("Here are the products that best match your query:\n")
	for _, p := range products {
		fallback.WriteString(fmt.Sprintf("- %s (%s): %s\n", p.Name, p.Price, p.Description))
	}
	return fallback.String()
}
