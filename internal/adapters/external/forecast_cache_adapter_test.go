package external

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"forecastdash.app/internal/config"
	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
)

// Interface compliance verification
var _ ports.ForecastCache = (*ForecastCacheAdapter)(nil)

func sampleForecast(city string) *ports.ForecastData {
	date := time.Date(2024, 6, 1, 7, 0, 0, 0, time.FixedZone("MSK", 3*60*60))
	return &ports.ForecastData{
		City:     city,
		Location: ports.Location{Key: "294021", Latitude: 55.7, Longitude: 37.6},
		Days: []ports.ForecastDay{
			{City: city, Date: date, Temperature: 15, RainProbability: 20, Humidity: 60, WindSpeed: 9.3, Latitude: 55.7, Longitude: 37.6},
			{City: city, Date: date.AddDate(0, 0, 1), Temperature: 10, RainProbability: 40, Humidity: 70, WindSpeed: 5.6, Latitude: 55.7, Longitude: 37.6},
		},
		FetchedAt: time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestForecastCacheAdapter_Integration(t *testing.T) {
	tests := []struct {
		name      string
		cacheType config.CacheType
	}{
		{"MemoryCache", config.CacheTypeMemory},
		{"RedisCache", config.CacheTypeRedis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cacheConfig := &config.CacheConfig{Type: tt.cacheType}
			if tt.cacheType == config.CacheTypeRedis {
				_, redisConfig := setupMockRedis(t)
				cacheConfig.Redis = *redisConfig
			}

			genericCache, err := NewCacheProviderFactory(newManualClock()).CreateCacheProvider(cacheConfig)
			require.NoError(t, err)

			cache := NewForecastCacheAdapter(genericCache, 0)
			ctx := context.Background()

			_, err = cache.Get(ctx, "Moscow")
			assert.True(t, errors.IsNotFoundError(err))

			moscow := sampleForecast("Moscow")
			require.NoError(t, cache.Set(ctx, "Moscow", moscow))
			require.NoError(t, cache.Set(ctx, "Paris", sampleForecast("Paris")))
			require.NoError(t, genericCache.Set(ctx, "unrelated", []byte("x"), 0))

			got, err := cache.Get(ctx, "Moscow")
			require.NoError(t, err)
			assert.Equal(t, moscow.Location, got.Location)
			require.Len(t, got.Days, 2)
			assert.True(t, moscow.Days[0].Date.Equal(got.Days[0].Date))
			assert.Equal(t, moscow.Days[1].Temperature, got.Days[1].Temperature)

			_, err = cache.Get(ctx, "moscow")
			assert.True(t, errors.IsNotFoundError(err))

			cities, err := cache.Cities(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Moscow", "Paris"}, cities)

			require.NoError(t, cache.Delete(ctx, "Moscow"))
			cities, err = cache.Cities(ctx)
			require.NoError(t, err)
			assert.Equal(t, []string{"Paris"}, cities)

			require.NoError(t, cache.Clear(ctx))
			cities, err = cache.Cities(ctx)
			require.NoError(t, err)
			assert.Empty(t, cities)

			exists, err := genericCache.Exists(ctx, "unrelated")
			require.NoError(t, err)
			assert.True(t, exists)
		})
	}
}

func TestForecastCacheAdapter_Errors(t *testing.T) {
	genericCache := NewMemoryCacheProvider(newManualClock())
	cache := NewForecastCacheAdapter(genericCache, time.Hour)
	ctx := context.Background()

	assert.True(t, errors.IsValidationError(cache.Set(ctx, "Moscow", nil)))

	require.NoError(t, genericCache.Set(ctx, ForecastKeyPrefix+"Broken", []byte("{not json"), 0))
	_, err := cache.Get(ctx, "Broken")
	assert.Equal(t, errors.CacheError, errors.TypeOf(err))
}

func TestForecastCacheAdapter_TTL(t *testing.T) {
	clock := newManualClock()
	cache := NewForecastCacheAdapter(NewMemoryCacheProvider(clock), time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "Moscow", sampleForecast("Moscow")))
	clock.Advance(2 * time.Hour)

	_, err := cache.Get(ctx, "Moscow")
	assert.True(t, errors.IsNotFoundError(err))
	cities, err := cache.Cities(ctx)
	require.NoError(t, err)
	assert.Empty(t, cities)
}
