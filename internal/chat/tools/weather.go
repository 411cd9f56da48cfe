package tools

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"outlet-assistant/internal/chat"
	"outlet-assistant/pkg/log"
	"outlet-assistant/pkg/weatherapi"
)

const (
	weatherUnavailableMsg = "I'm sorry, but the weather service is currently unavailable. Please try again later or contact support."
	weatherTimeoutMsg     = "The weather service is taking longer than expected to respond. Please try again in a moment."
	weatherAPIErrorMsg    = "The weather service is currently experiencing issues. Please try again later."
	defaultLocation       = "Kuala Lumpur, Malaysia"
)

// weatherTool fetches current conditions. A nil client means the service
// was never configured; the tool still answers.
type weatherTool struct {
	l      log.Logger
	client weatherapi.IWeather
}

// NewWeather creates the current conditions tool.
func NewWeather(l log.Logger, client weatherapi.IWeather) chat.Tool {
	return &weatherTool{l: l, client: client}
}

func (t *weatherTool) Name() string { return "get_weather" }

func (t *weatherTool) Description() string {
	return "Returns current weather conditions for a Malaysian city"
}

func (t *weatherTool) Execute(ctx context.Context, params map[string]any) string {
	if t.client == nil {
		return weatherUnavailableMsg
	}

	location, _ := params["location"].(string)
	if location == "" {
		location = defaultLocation
	}

	current, err := t.client.Current(ctx, location)
	if err != nil {
		return degradeWeatherError(ctx, t.l, err)
	}
	return formatCurrent(current)
}

// forecastTool fetches a multi-day forecast.
type forecastTool struct {
	l      log.Logger
	client weatherapi.IWeather
}

// NewForecast creates the forecast tool.
func NewForecast(l log.Logger, client weatherapi.IWeather) chat.Tool {
	return &forecastTool{l: l, client: client}
}

func (t *forecastTool) Name() string { return "get_forecast" }

func (t *forecastTool) Description() string {
	return "Returns a multi-day weather forecast for a Malaysian city"
}

func (t *forecastTool) Execute(ctx context.Context, params map[string]any) string {
	if t.client == nil {
		return weatherUnavailableMsg
	}

	location, _ := params["location"].(string)
	if location == "" {
		location = defaultLocation
	}
	days, ok := intParam(params, "days")
	if !ok || days <= 0 {
		days = 3
	}

	forecast, err := t.client.Forecast(ctx, location, days)
	if err != nil {
		return degradeWeatherError(ctx, t.l, err)
	}
	return formatForecast(forecast)
}

// degradeWeatherError maps every failure class onto a calm user-facing
// sentence. Nothing escapes as an error.
func degradeWeatherError(ctx context.Context, l log.Logger, err error) string {
	l.Warnf(ctx, "weather request failed: %v", err)

	if errors.Is(err, weatherapi.ErrTimeout) {
		return weatherTimeoutMsg
	}
	var apiErr *weatherapi.APIError
	if errors.As(err, &apiErr) {
		return weatherAPIErrorMsg
	}
	return fmt.Sprintf("I'm unable to fetch weather information at the moment. %s", err.Error())
}

func formatCurrent(w *weatherapi.CurrentResponse) string {
	loc := fmt.Sprintf("%s, %s, %s", w.Location.Name, w.Location.Region, w.Location.Country)

	var b strings.Builder
	fmt.Fprintf(&b, "🌤️ **Current Weather for %s**\n\n", loc)
	fmt.Fprintf(&b, "**Temperature:** %s°C (%s°F)\n", num(w.Current.TempC), num(w.Current.TempF))
	fmt.Fprintf(&b, "**Condition:** %s\n", w.Current.Condition.Text)
	fmt.Fprintf(&b, "**Feels like:** %s°C\n", num(w.Current.FeelslikeC))
	fmt.Fprintf(&b, "**Humidity:** %d%%\n", w.Current.Humidity)
	fmt.Fprintf(&b, "**Wind:** %s km/h %s\n", num(w.Current.WindKph), w.Current.WindDir)
	fmt.Fprintf(&b, "**UV Index:** %s\n", num(w.Current.UV))
	fmt.Fprintf(&b, "**Visibility:** %s km\n\n", num(w.Current.VisKm))
	fmt.Fprintf(&b, "*Last updated: %s*", w.Current.LastUpdated)
	return b.String()
}

func formatForecast(f *weatherapi.ForecastResponse) string {
	loc := fmt.Sprintf("%s, %s, %s", f.Location.Name, f.Location.Region, f.Location.Country)
	days := f.Forecast.ForecastDay

	var b strings.Builder
	fmt.Fprintf(&b, "📅 **%d-Day Weather Forecast for %s**\n\n", len(days), loc)
	for _, fd := range days {
		dayName := fd.Date
		if t, err := time.Parse("2006-01-02", fd.Date); err == nil {
			dayName = t.Format("Monday, January 02")
		}
		fmt.Fprintf(&b, "**%s**\n", dayName)
		fmt.Fprintf(&b, "• %s\n", fd.Day.Condition.Text)
		fmt.Fprintf(&b, "• High: %s°C, Low: %s°C\n", num(fd.Day.MaxTempC), num(fd.Day.MinTempC))
		fmt.Fprintf(&b, "• Chance of rain: %d%%\n", fd.Day.DailyChanceOfRain)
		fmt.Fprintf(&b, "• Max wind: %s km/h\n\n", num(fd.Day.MaxWindKph))
	}
	return strings.TrimRight(b.String(), "\n")
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
