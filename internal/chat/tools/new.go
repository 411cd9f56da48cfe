package tools

import (
	"outlet-assistant/internal/chat"
	"outlet-assistant/internal/outlet"
	"outlet-assistant/internal/product"
	"outlet-assistant/pkg/log"
	"outlet-assistant/pkg/weatherapi"
)

// Deps carries the external services the tools run against. Weather may
// be nil when no API key is configured; the weather tools degrade to a
// service-unavailable message.
type Deps struct {
	Weather  weatherapi.IWeather
	Catalog  *outlet.Catalog
	Outlets  outlet.UseCase
	Products product.UseCase
}

// NewRegistry assembles the full tool set.
func NewRegistry(l log.Logger, deps Deps) *chat.ToolRegistry {
	registry := chat.NewToolRegistry()
	registry.Register(NewCalculator())
	registry.Register(NewSearchOutlets(deps.Catalog))
	registry.Register(NewHoursInfo(deps.Catalog))
	registry.Register(NewLocationInfo(deps.Catalog))
	registry.Register(NewPhoneInfo(deps.Catalog))
	registry.Register(NewWeather(l, deps.Weather))
	registry.Register(NewForecast(l, deps.Weather))
	registry.Register(NewSearchProducts(l, deps.Products))
	registry.Register(NewSearchOutletsNL(l, deps.Outlets))
	return registry
}
