package tools

import (
	"context"
	"fmt"
	"strings"

	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/model"
	"outlet-assistant/internal/outlet"
)

// The outlet info tools answer from the static catalog. They share the
// filter semantics: an explicit location beats an area hint, and an empty
// filter set means "everything" for listing but "ask back" for details.

type searchOutletsTool struct {
	catalog *outlet.Catalog
}

// NewSearchOutlets creates the catalog listing tool.
func NewSearchOutlets(catalog *outlet.Catalog) chat.Tool {
	return &searchOutletsTool{catalog: catalog}
}

func (t *searchOutletsTool) Name() string { return "search_outlets" }

func (t *searchOutletsTool) Description() string {
	return "Lists catalog outlets matching a location or area"
}

func (t *searchOutletsTool) Execute(_ context.Context, params map[string]any) string {
	location, area := locationParams(params)
	outlets := t.catalog.Filter(location, area)
	if len(outlets) == 0 {
		return "No outlets found matching your criteria."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d outlet(s):\n", len(outlets))
	for _, o := range outlets {
		fmt.Fprintf(&b, "• %s - %s\n", o.Name, o.Location)
	}
	return b.String()
}

type hoursInfoTool struct {
	catalog *outlet.Catalog
}

// NewHoursInfo creates the opening hours tool.
func NewHoursInfo(catalog *outlet.Catalog) chat.Tool {
	return &hoursInfoTool{catalog: catalog}
}

func (t *hoursInfoTool) Name() string { return "get_hours_info" }

func (t *hoursInfoTool) Description() string {
	return "Returns opening hours for outlets matching a location or area"
}

func (t *hoursInfoTool) Execute(_ context.Context, params map[string]any) string {
	return detailLookup(t.catalog, params,
		"Please specify which outlet you'd like hours for.",
		"Opening hours:\n",
		func(o model.Outlet) string {
			return fmt.Sprintf("• %s: %s - %s\n", o.Name, o.OpeningTime, o.ClosingTime)
		})
}

type locationInfoTool struct {
	catalog *outlet.Catalog
}

// NewLocationInfo creates the address lookup tool.
func NewLocationInfo(catalog *outlet.Catalog) chat.Tool {
	return &locationInfoTool{catalog: catalog}
}

func (t *locationInfoTool) Name() string { return "get_location_info" }

func (t *locationInfoTool) Description() string {
	return "Returns addresses for outlets matching a location or area"
}

func (t *locationInfoTool) Execute(_ context.Context, params map[string]any) string {
	return detailLookup(t.catalog, params,
		"Please specify which outlet's address you'd like.",
		"Addresses:\n",
		func(o model.Outlet) string {
			return fmt.Sprintf("• %s: %s\n", o.Name, o.Address)
		})
}

type phoneInfoTool struct {
	catalog *outlet.Catalog
}

// NewPhoneInfo creates the phone lookup tool.
func NewPhoneInfo(catalog *outlet.Catalog) chat.Tool {
	return &phoneInfoTool{catalog: catalog}
}

func (t *phoneInfoTool) Name() string { return "get_phone_info" }

func (t *phoneInfoTool) Description() string {
	return "Returns phone numbers for outlets matching a location or area"
}

func (t *phoneInfoTool) Execute(_ context.Context, params map[string]any) string {
	return detailLookup(t.catalog, params,
		"Please specify which outlet's phone number you'd like.",
		"Phone numbers:\n",
		func(o model.Outlet) string {
			return fmt.Sprintf("• %s: %s\n", o.Name, o.Phone)
		})
}

func detailLookup(catalog *outlet.Catalog, params map[string]any, askBack, header string, line func(model.Outlet) string) string {
	location, area := locationParams(params)
	if location == "" && area == "" {
		return askBack
	}
	outlets := catalog.Filter(location, area)
	if len(outlets) == 0 {
		return "No outlets found matching your criteria."
	}

	var b strings.Builder
	b.WriteString(header)
	for _, o := range outlets {
		b.WriteString(line(o))
	}
	return b.String()
}

func locationParams(params map[string]any) (location, area string) {
	location, _ = params["location"].(string)
	area, _ = params["area"].(string)
	return location, area
}
