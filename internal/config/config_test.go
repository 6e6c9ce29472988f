package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"forecastdash.app/pkg/errors"
)

func TestLoadConfig(t *testing.T) {
	// Test case 1: Required fields - should return error when missing
	t.Run("RequiredFieldsMissing", func(t *testing.T) {
		os.Clearenv()

		config, err := LoadConfig()

		assert.Error(t, err)
		assert.Nil(t, config)
		assert.Contains(t, err.Error(), "required key ACCUWEATHER_API_KEY missing")
	})

	// Test case 2: Default values - should use defaults when not provided
	t.Run("DefaultValues", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("ACCUWEATHER_API_KEY", "test-api-key"))

		config, err := LoadConfig()

		assert.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, "127.0.0.1", config.Server.Host)
		assert.Equal(t, 8080, config.Server.Port)
		assert.Equal(t, "127.0.0.1:8080", config.Server.Addr())
		assert.Equal(t, "http://dataservice.accuweather.com/", config.AccuWeather.BaseURL)
		assert.Equal(t, "en-us", config.AccuWeather.Language)
		assert.Equal(t, 10, config.AccuWeather.TimeoutSeconds)
		assert.True(t, config.AccuWeather.EnableLogging)
		assert.Equal(t, CacheTypeMemory, config.Cache.Type)
		assert.Equal(t, 0, config.Cache.TTLMinutes)
		assert.Equal(t, "localhost:6379", config.Cache.Redis.Addr)
		assert.Equal(t, "all", config.Dashboard.RenderScope)
		assert.Equal(t, 5, config.Dashboard.MaxDays)
		assert.Equal(t, "info", config.Log.Level)
		assert.Empty(t, config.Log.FilePath)
	})

	// Test case 3: Custom values - should use provided values
	t.Run("CustomValues", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("SERVER_HOST", "0.0.0.0"))
		require.NoError(t, os.Setenv("SERVER_PORT", "9090"))
		require.NoError(t, os.Setenv("ACCUWEATHER_API_KEY", "custom-key"))
		require.NoError(t, os.Setenv("ACCUWEATHER_BASE_URL", "https://accu.example.com/"))
		require.NoError(t, os.Setenv("ACCUWEATHER_LANGUAGE", "ru-ru"))
		require.NoError(t, os.Setenv("ACCUWEATHER_TIMEOUT_SECONDS", "3"))
		require.NoError(t, os.Setenv("ENABLE_PROVIDER_LOGGING", "false"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "redis"))
		require.NoError(t, os.Setenv("CACHE_TTL_MINUTES", "30"))
		require.NoError(t, os.Setenv("REDIS_ADDR", "redis:6380"))
		require.NoError(t, os.Setenv("REDIS_DB", "2"))
		require.NoError(t, os.Setenv("DASHBOARD_RENDER_SCOPE", "requested"))
		require.NoError(t, os.Setenv("DASHBOARD_MAX_DAYS", "3"))
		require.NoError(t, os.Setenv("LOG_LEVEL", "debug"))
		require.NoError(t, os.Setenv("LOG_FILE_PATH", "logs/forecast.log"))

		config, err := LoadConfig()

		assert.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, "0.0.0.0:9090", config.Server.Addr())
		assert.Equal(t, "custom-key", config.AccuWeather.APIKey)
		assert.Equal(t, "https://accu.example.com/", config.AccuWeather.BaseURL)
		assert.Equal(t, "ru-ru", config.AccuWeather.Language)
		assert.Equal(t, 3, config.AccuWeather.TimeoutSeconds)
		assert.False(t, config.AccuWeather.EnableLogging)
		assert.Equal(t, CacheTypeRedis, config.Cache.Type)
		assert.Equal(t, 30, config.Cache.TTLMinutes)
		assert.Equal(t, "redis:6380", config.Cache.Redis.Addr)
		assert.Equal(t, 2, config.Cache.Redis.DB)
		assert.Equal(t, "requested", config.Dashboard.RenderScope)
		assert.Equal(t, 3, config.Dashboard.MaxDays)
		assert.Equal(t, "debug", config.Log.Level)
		assert.Equal(t, "logs/forecast.log", config.Log.FilePath)
	})

	t.Run("InvalidCacheType", func(t *testing.T) {
		os.Clearenv()
		require.NoError(t, os.Setenv("ACCUWEATHER_API_KEY", "test-api-key"))
		require.NoError(t, os.Setenv("CACHE_TYPE", "memcached"))

		config, err := LoadConfig()

		assert.Nil(t, config)
		assert.True(t, errors.IsConfigurationError(err))
		assert.Contains(t, err.Error(), "CACHE_TYPE")
	})

	os.Clearenv()
}

func validConfig() Config {
	return Config{
		Server: ServerConfig{Host: "127.0.0.1", Port: 8080},
		AccuWeather: AccuWeatherConfig{
			APIKey:         "key",
			BaseURL:        "http://dataservice.accuweather.com/",
			Language:       "en-us",
			TimeoutSeconds: 10,
		},
		Cache: CacheConfig{
			Type: CacheTypeMemory,
			Redis: RedisConfig{
				Addr: "localhost:6379", DialTimeout: 5, ReadTimeout: 3, WriteTimeout: 3,
			},
		},
		Dashboard: DashboardConfig{RenderScope: "all", MaxDays: 5},
		Log:       LogConfig{Level: "info"},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		errorMsg string
	}{
		{"Valid", func(c *Config) {}, ""},
		{"PortTooLow", func(c *Config) { c.Server.Port = 0 }, "SERVER_PORT"},
		{"EmptyHost", func(c *Config) { c.Server.Host = "" }, "SERVER_HOST"},
		{"BlankAPIKey", func(c *Config) { c.AccuWeather.APIKey = "  " }, "ACCUWEATHER_API_KEY"},
		{"BadBaseURL", func(c *Config) { c.AccuWeather.BaseURL = "dataservice.accuweather.com" }, "ACCUWEATHER_BASE_URL"},
		{"EmptyLanguage", func(c *Config) { c.AccuWeather.Language = "" }, "ACCUWEATHER_LANGUAGE"},
		{"TimeoutZero", func(c *Config) { c.AccuWeather.TimeoutSeconds = 0 }, "ACCUWEATHER_TIMEOUT_SECONDS"},
		{"NegativeTTL", func(c *Config) { c.Cache.TTLMinutes = -1 }, "CACHE_TTL_MINUTES"},
		{"RedisDBOutOfRange", func(c *Config) {
			c.Cache.Type = CacheTypeRedis
			c.Cache.Redis.DB = 16
		}, "REDIS_DB"},
		{"RedisEmptyAddr", func(c *Config) {
			c.Cache.Type = CacheTypeRedis
			c.Cache.Redis.Addr = ""
		}, "REDIS_ADDR"},
		{"UnknownScope", func(c *Config) { c.Dashboard.RenderScope = "latest" }, "DASHBOARD_RENDER_SCOPE"},
		{"TooManyDays", func(c *Config) { c.Dashboard.MaxDays = 6 }, "DASHBOARD_MAX_DAYS"},
		{"UnknownLogLevel", func(c *Config) { c.Log.Level = "trace" }, "LOG_LEVEL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.errorMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.Error(t, err)
			assert.True(t, errors.IsConfigurationError(err))
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestCacheType(t *testing.T) {
	assert.Equal(t, CacheTypeRedis, CacheTypeFromString("redis"))
	assert.Equal(t, CacheTypeUnknown, CacheTypeFromString("disk"))
	assert.Equal(t, "memory", CacheTypeMemory.String())
	assert.False(t, CacheTypeUnknown.IsValid())

	var ct CacheType
	require.NoError(t, ct.UnmarshalText([]byte("memory")))
	assert.Equal(t, CacheTypeMemory, ct)

	text, err := CacheTypeRedis.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "redis", string(text))
}
