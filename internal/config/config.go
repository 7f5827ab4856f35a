package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrMissingAPIKey indicates no Gemini credential was configured.
var ErrMissingAPIKey = errors.New("missing Gemini API key (set GEMINI_API_KEY or API_KEY)")

// Config defines server configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Transport TransportConfig `yaml:"transport"`
	Log       LogConfig       `yaml:"log"`
	Gemini    GeminiConfig    `yaml:"gemini"`
	Print     PrintConfig     `yaml:"print"`
	Pricing   PricingConfig   `yaml:"pricing"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TransportConfig struct {
	// Mode is "http" (web UI + MCP at /mcp) or "stdio" (MCP only).
	Mode string `yaml:"mode"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Path   string `yaml:"path"`
}

type GeminiConfig struct {
	APIKey  string        `yaml:"api_key"`
	Model   string        `yaml:"model"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type PrintConfig struct {
	// Delay before the print dialog opens, so the stylesheet can load.
	Delay time.Duration `yaml:"delay"`
}

type PricingConfig struct {
	TaxRate float64 `yaml:"tax_rate"`
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Transport: TransportConfig{
			Mode: "http",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Gemini: GeminiConfig{
			Model:   "gemini-2.5-flash",
			Timeout: 60 * time.Second,
		},
		Print: PrintConfig{
			Delay: 500 * time.Millisecond,
		},
	}
}

// Load reads configuration from an optional YAML file and environment
// variables, then validates it.
func Load() (Config, error) {
	cfg := Defaults()

	if path := os.Getenv("PROPOSTA_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks required values and ranges.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Gemini.APIKey) == "" {
		return ErrMissingAPIKey
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port %d", c.Server.Port)
	}
	switch c.Transport.Mode {
	case "http", "stdio":
	default:
		return fmt.Errorf("invalid transport mode %q", c.Transport.Mode)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.Log.Format)
	}
	if c.Pricing.TaxRate < 0 {
		return fmt.Errorf("invalid tax rate %v", c.Pricing.TaxRate)
	}
	if c.Print.Delay < 0 {
		return fmt.Errorf("invalid print delay %v", c.Print.Delay)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("PROPOSTA_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("PROPOSTA_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid PROPOSTA_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if mode := os.Getenv("PROPOSTA_TRANSPORT_MODE"); mode != "" {
		cfg.Transport.Mode = mode
	}
	if level := os.Getenv("PROPOSTA_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if format := os.Getenv("PROPOSTA_LOG_FORMAT"); format != "" {
		cfg.Log.Format = format
	}
	if path := os.Getenv("PROPOSTA_LOG_PATH"); path != "" {
		cfg.Log.Path = path
	}

	// API_KEY is accepted as a legacy name; GEMINI_API_KEY wins.
	for _, name := range []string{"API_KEY", "GEMINI_API_KEY"} {
		if key := strings.TrimSpace(os.Getenv(name)); key != "" {
			cfg.Gemini.APIKey = key
		}
	}
	if model := os.Getenv("PROPOSTA_GEMINI_MODEL"); model != "" {
		cfg.Gemini.Model = model
	}
	if baseURL := os.Getenv("PROPOSTA_GEMINI_BASE_URL"); baseURL != "" {
		cfg.Gemini.BaseURL = baseURL
	}
	if v := os.Getenv("PROPOSTA_GEMINI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PROPOSTA_GEMINI_TIMEOUT: %w", err)
		}
		cfg.Gemini.Timeout = d
	}
	if v := os.Getenv("PROPOSTA_PRINT_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PROPOSTA_PRINT_DELAY: %w", err)
		}
		cfg.Print.Delay = d
	}
	if v := os.Getenv("PROPOSTA_TAX_RATE"); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid PROPOSTA_TAX_RATE: %w", err)
		}
		cfg.Pricing.TaxRate = rate
	}
	return nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
