package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client is the WeatherAPI.com HTTP client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Config holds the client configuration.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// NewClient creates a new WeatherAPI.com client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.weatherapi.com/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}, nil
}

// Current fetches current conditions for a location.
func (c *Client) Current(ctx context.Context, location string) (*CurrentResponse, error) {
	var result CurrentResponse
	params := url.Values{"q": {location}}
	if err := c.get(ctx, "/current.json", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Forecast fetches an n-day forecast. Days are clamped to the API's 1..10 range.
func (c *Client) Forecast(ctx context.Context, location string, days int) (*ForecastResponse, error) {
	if days < 1 {
		days = 1
	}
	if days > 10 {
		days = 10
	}

	var result ForecastResponse
	params := url.Values{
		"q":    {location},
		"days": {fmt.Sprintf("%d", days)},
	}
	if err := c.get(ctx, "/forecast.json", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchLocations looks up matching locations for a free-text query.
func (c *Client) SearchLocations(ctx context.Context, query string) ([]SearchResult, error) {
	var result []SearchResult
	params := url.Values{"q": {query}}
	if err := c.get(ctx, "/search.json", params, &result); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	reqURL := c.baseURL + path + "?" + params.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if os.IsTimeout(err) || ctx.Err() == context.DeadlineExceeded {
			return ErrTimeout
		}
		return fmt.Errorf("failed to call weather API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
