package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"forecastdash.app/pkg/errors"
)

const (
	maxRedisDB          = 15
	maxCacheTTLMinutes  = 10080
	maxPortNumber       = 65535
	maxTimeoutSeconds   = 120
	providerForecastMax = 5
)

// Config represents the application configuration structure
type Config struct {
	Server      ServerConfig      `split_words:"true"`
	AccuWeather AccuWeatherConfig `split_words:"true"`
	Cache       CacheConfig       `split_words:"true"`
	Dashboard   DashboardConfig   `split_words:"true"`
	Log         LogConfig         `split_words:"true"`
}

type ServerConfig struct {
	Host string `envconfig:"SERVER_HOST" default:"127.0.0.1"`
	Port int    `envconfig:"SERVER_PORT" default:"8080"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type AccuWeatherConfig struct {
	APIKey         string `envconfig:"ACCUWEATHER_API_KEY" required:"true"`
	BaseURL        string `envconfig:"ACCUWEATHER_BASE_URL" default:"http://dataservice.accuweather.com/"`
	Language       string `envconfig:"ACCUWEATHER_LANGUAGE" default:"en-us"`
	TimeoutSeconds int    `envconfig:"ACCUWEATHER_TIMEOUT_SECONDS" default:"10"`
	EnableLogging  bool   `envconfig:"ENABLE_PROVIDER_LOGGING" default:"true"`
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

type CacheConfig struct {
	Type       CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	TTLMinutes int         `envconfig:"CACHE_TTL_MINUTES" default:"0"`
	Redis      RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
}

type DashboardConfig struct {
	RenderScope string `envconfig:"DASHBOARD_RENDER_SCOPE" default:"all"`
	MaxDays     int    `envconfig:"DASHBOARD_MAX_DAYS" default:"5"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.AccuWeather.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	if err := c.Dashboard.Validate(); err != nil {
		return err
	}
	if err := c.Log.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Host == "" {
		return errors.NewConfigurationError("SERVER_HOST cannot be empty", nil)
	}
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (a *AccuWeatherConfig) Validate() error {
	if strings.TrimSpace(a.APIKey) == "" {
		return errors.NewConfigurationError("ACCUWEATHER_API_KEY cannot be empty", nil)
	}
	if !strings.HasPrefix(a.BaseURL, "http://") && !strings.HasPrefix(a.BaseURL, "https://") {
		return errors.NewConfigurationError("ACCUWEATHER_BASE_URL must start with http:// or https://", nil)
	}
	if a.Language == "" {
		return errors.NewConfigurationError("ACCUWEATHER_LANGUAGE cannot be empty", nil)
	}
	if a.TimeoutSeconds < 1 || a.TimeoutSeconds > maxTimeoutSeconds {
		return errors.NewConfigurationError("ACCUWEATHER_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	return nil
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}

	if c.TTLMinutes < 0 || c.TTLMinutes > maxCacheTTLMinutes {
		return errors.NewConfigurationError("CACHE_TTL_MINUTES must be between 0 and 10080 minutes", nil)
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}

func (d *DashboardConfig) Validate() error {
	if d.RenderScope != "all" && d.RenderScope != "requested" {
		return errors.NewConfigurationError("DASHBOARD_RENDER_SCOPE must be one of: all, requested", nil)
	}
	if d.MaxDays < 1 || d.MaxDays > providerForecastMax {
		return errors.NewConfigurationError("DASHBOARD_MAX_DAYS must be between 1 and 5", nil)
	}
	return nil
}

func (l *LogConfig) Validate() error {
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return errors.NewConfigurationError(fmt.Sprintf("LOG_LEVEL must be one of: debug, info, warn, error (got %q)", l.Level), nil)
	}
}
