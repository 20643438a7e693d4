package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Calendar Assistant specifics
	Gemini     GeminiConfig
	GoogleAuth GoogleAuthConfig
	Calendar   CalendarConfig
	Assistant  AssistantConfig
	RateLimit  RateLimitConfig
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

type GeminiConfig struct {
	APIKey string
	Model  string
	APIURL string
}

type GoogleAuthConfig struct {
	// TokenInfoURL is Google's tokeninfo endpoint. Overridable for tests.
	TokenInfoURL string
}

type CalendarConfig struct {
	// ID is the Google Calendar to operate on. "primary" targets the
	// authenticated user's default calendar.
	ID       string
	Timezone string
}

type AssistantConfig struct {
	// MaxHistory caps how many conversation turns are forwarded to the model.
	MaxHistory int
}

type RateLimitConfig struct {
	// PerMinute caps requests per access token. Zero disables limiting.
	PerMinute int
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

	// Gemini
	cfg.Gemini.APIKey = viper.GetString("gemini.api_key")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Google auth
	cfg.GoogleAuth.TokenInfoURL = viper.GetString("google_auth.tokeninfo_url")

	// Calendar
	cfg.Calendar.ID = viper.GetString("calendar.id")
	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")
	if tz := viper.GetString("calendar_timezone"); tz != "" {
		cfg.Calendar.Timezone = tz
	}

	// Assistant
	cfg.Assistant.MaxHistory = viper.GetInt("assistant.max_history")

	// Rate limiting
	cfg.RateLimit.PerMinute = viper.GetInt("rate_limit.per_minute")

	if cfg.Gemini.APIKey == "" {
		return nil, fmt.Errorf("gemini.api_key is required - set GEMINI_API_KEY or add it to config.yaml")
	}

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
	viper.SetDefault("google_auth.tokeninfo_url", "https://www.googleapis.com/oauth2/v3/tokeninfo")
	viper.SetDefault("calendar.id", "primary")
	viper.SetDefault("calendar.timezone", "UTC")
	viper.SetDefault("assistant.max_history", 6)
	viper.SetDefault("rate_limit.per_minute", 60)
}
