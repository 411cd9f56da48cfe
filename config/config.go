package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Outlet assistant specifics
	Outlets  OutletsConfig
	Session  SessionConfig
	Weather  WeatherConfig
	Qdrant   QdrantConfig
	Voyage   VoyageConfig
	OpenAI   OpenAIConfig
	Telegram TelegramConfig

	// Rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type OutletsConfig struct {
	DBPath string // sqlite file backing the natural-language outlet search
}

type SessionConfig struct {
	WindowSize  int           // conversation turns kept per session
	TTL         time.Duration // idle time before a session is evicted
	MaxSessions int           // capacity of the session store
}

type WeatherConfig struct {
	APIKey          string
	BaseURL         string
	DefaultLocation string
	Timeout         time.Duration
}

type QdrantConfig struct {
	URL            string
	CollectionName string
	VectorSize     int
}

type VoyageConfig struct {
	APIKey string
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	ChatPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Outlet database
	cfg.Outlets.DBPath = viper.GetString("outlets.db_path")

	// Session store
	cfg.Session.WindowSize = viper.GetInt("session.window_size")
	cfg.Session.TTL = viper.GetDuration("session.ttl")
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")

	// Weather provider
	cfg.Weather.APIKey = viper.GetString("weather.api_key")
	cfg.Weather.BaseURL = viper.GetString("weather.base_url")
	cfg.Weather.DefaultLocation = viper.GetString("weather.default_location")
	cfg.Weather.Timeout = viper.GetDuration("weather.timeout")
	if key := viper.GetString("weather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}

	// Qdrant vector store
	cfg.Qdrant.URL = viper.GetString("qdrant.url")
	cfg.Qdrant.CollectionName = viper.GetString("qdrant.collection_name")
	cfg.Qdrant.VectorSize = viper.GetInt("qdrant.vector_size")
	if url := viper.GetString("qdrant_url"); url != "" {
		cfg.Qdrant.URL = url
	}

	// Voyage AI embeddings
	cfg.Voyage.APIKey = viper.GetString("voyage.api_key")
	if key := viper.GetString("voyage_api_key"); key != "" {
		cfg.Voyage.APIKey = key
	}

	// OpenAI-compatible chat completions (SQL + product answers)
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Telegram channel (optional)
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	if token := viper.GetString("telegram_bot_token"); token != "" {
		cfg.Telegram.BotToken = token
	}

	// Rate limiting
	cfg.RateLimit.ChatPerMin = viper.GetInt("rate_limit.chat_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("outlets.db_path", "data/outlets.db")

	viper.SetDefault("session.window_size", 10)
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 10000)

	viper.SetDefault("weather.base_url", "https://api.weatherapi.com/v1")
	viper.SetDefault("weather.default_location", "Kuala Lumpur, Malaysia")
	viper.SetDefault("weather.timeout", "10s")

	viper.SetDefault("qdrant.collection_name", "products")
	viper.SetDefault("qdrant.vector_size", 1024)

	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.model", "gpt-3.5-turbo")

	viper.SetDefault("rate_limit.chat_per_min", 60)
}
