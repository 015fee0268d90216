package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configured value cannot be used.
var ErrInvalidConfig = errors.New("invalid config")

// Config defines server configuration.
type Config struct {
	Server      ServerConfig      `yaml:"server"`
	Log         LogConfig         `yaml:"log"`
	Suggestions SuggestionsConfig `yaml:"suggestions"`
	Calendar    CalendarConfig    `yaml:"calendar"`
	Jobs        JobsConfig        `yaml:"jobs"`
	Seed        SeedConfig        `yaml:"seed"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type ServerConfig struct {
	Host        string   `yaml:"host"`
	Port        int      `yaml:"port"`
	CORSOrigins []string `yaml:"cors_origins"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SuggestionsConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type CalendarConfig struct {
	WeekStart string `yaml:"week_start"`
	Holidays  bool   `yaml:"holidays"`
}

// Weekday resolves WeekStart. Only sunday and monday are accepted.
func (c CalendarConfig) Weekday() (time.Weekday, error) {
	switch strings.ToLower(strings.TrimSpace(c.WeekStart)) {
	case "", "sunday":
		return time.Sunday, nil
	case "monday":
		return time.Monday, nil
	default:
		return time.Sunday, fmt.Errorf("%w: week_start %q", ErrInvalidConfig, c.WeekStart)
	}
}

type JobsConfig struct {
	// SummarySchedule is a cron spec; empty disables the job.
	SummarySchedule string `yaml:"summary_schedule"`
}

type SeedConfig struct {
	// Path to a YAML seed file; empty uses the built-in seed.
	Path string `yaml:"path"`
}

type MetricsConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Namespace string `yaml:"namespace"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host:        "0.0.0.0",
			Port:        8080,
			CORSOrigins: []string{"*"},
		},
		Log: LogConfig{
			Level: "info",
		},
		Suggestions: SuggestionsConfig{
			BaseURL: "https://generativelanguage.googleapis.com/v1beta/openai/",
			Model:   "gemini-2.5-flash",
			Timeout: 20 * time.Second,
		},
		Calendar: CalendarConfig{
			WeekStart: "sunday",
			Holidays:  true,
		},
		Jobs: JobsConfig{
			SummarySchedule: "@every 5m",
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: "landlord",
		},
	}
}

// Load reads configuration from an optional .env file, an optional YAML file
// and environment variables, in that order of increasing precedence.
func Load() (Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return Config{}, fmt.Errorf("load .env: %w", err)
		}
	}

	cfg := Default()

	if path := os.Getenv("LANDLORD_CONFIG_PATH"); path != "" {
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

// Validate checks values that would otherwise fail at first use.
func (c Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: server port %d", ErrInvalidConfig, c.Server.Port)
	}
	if c.Suggestions.Timeout <= 0 {
		return fmt.Errorf("%w: suggestions timeout %s", ErrInvalidConfig, c.Suggestions.Timeout)
	}
	if _, err := c.Calendar.Weekday(); err != nil {
		return err
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if host := os.Getenv("LANDLORD_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("LANDLORD_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("invalid LANDLORD_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if origins := os.Getenv("LANDLORD_CORS_ORIGINS"); origins != "" {
		cfg.Server.CORSOrigins = splitList(origins)
	}
	if level := os.Getenv("LANDLORD_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	// API_KEY is the variable older deployments used.
	if key := os.Getenv("LANDLORD_SUGGESTIONS_API_KEY"); key != "" {
		cfg.Suggestions.APIKey = key
	} else if key := os.Getenv("API_KEY"); key != "" {
		cfg.Suggestions.APIKey = key
	}
	if baseURL := os.Getenv("LANDLORD_SUGGESTIONS_BASE_URL"); baseURL != "" {
		cfg.Suggestions.BaseURL = baseURL
	}
	if model := os.Getenv("LANDLORD_SUGGESTIONS_MODEL"); model != "" {
		cfg.Suggestions.Model = model
	}
	if timeoutStr := os.Getenv("LANDLORD_SUGGESTIONS_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return fmt.Errorf("invalid LANDLORD_SUGGESTIONS_TIMEOUT: %w", err)
		}
		cfg.Suggestions.Timeout = timeout
	}

	if weekStart := os.Getenv("LANDLORD_CALENDAR_WEEK_START"); weekStart != "" {
		cfg.Calendar.WeekStart = weekStart
	}
	if holidaysStr := os.Getenv("LANDLORD_CALENDAR_HOLIDAYS"); holidaysStr != "" {
		holidays, err := strconv.ParseBool(holidaysStr)
		if err != nil {
			return fmt.Errorf("invalid LANDLORD_CALENDAR_HOLIDAYS: %w", err)
		}
		cfg.Calendar.Holidays = holidays
	}

	if schedule, ok := os.LookupEnv("LANDLORD_SUMMARY_SCHEDULE"); ok {
		cfg.Jobs.SummarySchedule = schedule
	}
	if seedPath := os.Getenv("LANDLORD_SEED_PATH"); seedPath != "" {
		cfg.Seed.Path = seedPath
	}

	if enabledStr := os.Getenv("LANDLORD_METRICS_ENABLED"); enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return fmt.Errorf("invalid LANDLORD_METRICS_ENABLED: %w", err)
		}
		cfg.Metrics.Enabled = enabled
	}
	if namespace := os.Getenv("LANDLORD_METRICS_NAMESPACE"); namespace != "" {
		cfg.Metrics.Namespace = namespace
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
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
