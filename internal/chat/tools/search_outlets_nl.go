package tools

import (
	"context"
	"fmt"
	"strings"

	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/model"
	"outlet-assistant/internal/outlet"
	"outlet-assistant/pkg/log"
)

// searchOutletsNLTool answers attribute questions ("24-hour outlets with
// parking") through the text-to-SQL outlet search. Direct in-process call,
// no HTTP loopback.
type searchOutletsNLTool struct {
	l  log.Logger
	uc outlet.UseCase
}

// NewSearchOutletsNL creates the natural-language outlet search tool.
func NewSearchOutletsNL(l log.Logger, uc outlet.UseCase) chat.Tool {
	return &searchOutletsNLTool{l: l, uc: uc}
}

func (t *searchOutletsNLTool) Name() string { return "search_outlets_nl" }

func (t *searchOutletsNLTool) Description() string {
	return "Searches the outlets database by natural-language attributes"
}

func (t *searchOutletsNLTool) Execute(ctx context.Context, params map[string]any) string {
	query, _ := params["query"].(string)

	out, err := t.uc.SearchNL(ctx, outlet.SearchNLInput{Query: query})
	if err != nil {
		t.l.Warnf(ctx, "outlet NL search failed: %v", err)
		return "I'm unable to search outlets at the moment. Please try again later."
	}
	if len(out.Results) == 0 {
		return "No outlets found matching your criteria."
	}

	rows := out.Results
	if len(rows) > 5 {
		rows = rows[:5]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d outlet(s):\n\n", len(out.Results))
	for _, row := range rows {
		fmt.Fprintf(&b, "📍 **%s**\n", rowString(row, "name", "Unknown"))
		fmt.Fprintf(&b, "   📧 %s\n", rowString(row, "address", "Address not available"))
		if phone := rowString(row, "phone", ""); phone != "" {
			fmt.Fprintf(&b, "   📞 %s\n", phone)
		}
		opening := rowString(row, "opening_time", "")
		closing := rowString(row, "closing_time", "")
		if opening != "" && closing != "" {
			fmt.Fprintf(&b, "   🕐 %s - %s\n", opening, closing)
		}

		features := make([]string, 0, 3)
		if rowBool(row, "has_drive_thru") {
			features = append(features, "Drive-thru")
		}
		if rowBool(row, "is_24_hours") {
			features = append(features, "24-hours")
		}
		if rowBool(row, "has_wifi") {
			features = append(features, "WiFi")
		}
		if len(features) > 0 {
			fmt.Fprintf(&b, "   ✨ %s\n", strings.Join(features, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func rowString(row model.OutletRow, key, fallback string) string {
	if s, ok := row[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// rowBool tolerates the integer encodings SQLite uses for booleans.
func rowBool(row model.OutletRow, key string) bool {
	switch v := row[key].(type) {
	case bool:
		return v
	case int64:
		return v != 0
	case int:
		return v != 0
	case float64:
		return v != 0
	}
	return false
}
