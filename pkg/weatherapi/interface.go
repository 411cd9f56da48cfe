package weatherapi

import "context"

// IWeather defines the interface for the weather provider client
type IWeather interface {
	Current(ctx context.Context, location string) (*CurrentResponse, error)
	Forecast(ctx context.Context, location string, days int) (*ForecastResponse, error)
	SearchLocations(ctx context.Context, query string) ([]SearchResult, error)
}
