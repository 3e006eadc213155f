package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server ServerConfig
	OpenAI OpenAIConfig
	Tavily TavilyConfig
}

type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"8000"`
	Host         string        `envconfig:"SERVER_HOST" default:"0.0.0.0"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"30s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"5m"`
}

type OpenAIConfig struct {
	APIKey      string `envconfig:"OPENAI_API_KEY" required:"true"`
	APIEndpoint string `envconfig:"OPENAI_ENDPOINT" default:"https://api.openai.com/v1"`
	Model       string `envconfig:"OPENAI_MODEL" default:"gpt-4o"`
}

type TavilyConfig struct {
	APIKey  string        `envconfig:"TAVILY_API_KEY" required:"true"`
	BaseURL string        `envconfig:"TAVILY_BASE_URL" default:"https://api.tavily.com"`
	Timeout time.Duration `envconfig:"TAVILY_TIMEOUT" default:"30s"`
}

// LoadConfig reads configuration from the environment. Both provider API
// keys are mandatory; a missing key fails startup with the key named in the
// error.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	slog.Info("configuration loaded successfully")
	return &cfg, nil
}
