package external

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
)

// ForecastKeyPrefix namespaces forecast entries inside the generic cache
const ForecastKeyPrefix = "forecast:"

// ForecastCacheAdapter bridges generic CacheProvider to the city-keyed ForecastCache
type ForecastCacheAdapter struct {
	cacheProvider ports.CacheProvider
	ttl           time.Duration
}

// NewForecastCacheAdapter stores forecasts as JSON; a zero ttl keeps them until evicted
func NewForecastCacheAdapter(cacheProvider ports.CacheProvider, ttl time.Duration) *ForecastCacheAdapter {
	return &ForecastCacheAdapter{
		cacheProvider: cacheProvider,
		ttl:           ttl,
	}
}

func forecastKey(city string) string {
	return ForecastKeyPrefix + city
}

// Get returns the forecast stored under the exact city name
func (f *ForecastCacheAdapter) Get(ctx context.Context, city string) (*ports.ForecastData, error) {
	data, err := f.cacheProvider.Get(ctx, forecastKey(city))
	if err != nil {
		return nil, err
	}

	var forecast ports.ForecastData
	if err := json.Unmarshal(data, &forecast); err != nil {
		return nil, errors.NewCacheError("failed to deserialize forecast data", err)
	}

	return &forecast, nil
}

func (f *ForecastCacheAdapter) Set(ctx context.Context, city string, forecast *ports.ForecastData) error {
	if forecast == nil {
		return errors.NewValidationError("forecast data cannot be nil")
	}

	data, err := json.Marshal(forecast)
	if err != nil {
		return errors.NewCacheError("failed to serialize forecast data", err)
	}

	return f.cacheProvider.Set(ctx, forecastKey(city), data, f.ttl)
}

func (f *ForecastCacheAdapter) Delete(ctx context.Context, city string) error {
	return f.cacheProvider.Delete(ctx, forecastKey(city))
}

// Clear removes forecast entries only
func (f *ForecastCacheAdapter) Clear(ctx context.Context) error {
	keys, err := f.cacheProvider.Keys(ctx, ForecastKeyPrefix)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := f.cacheProvider.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

// Cities lists cached city names in insertion order
func (f *ForecastCacheAdapter) Cities(ctx context.Context) ([]string, error) {
	keys, err := f.cacheProvider.Keys(ctx, ForecastKeyPrefix)
	if err != nil {
		return nil, err
	}

	cities := make([]string, len(keys))
	for i, key := range keys {
		cities[i] = strings.TrimPrefix(key, ForecastKeyPrefix)
	}
	return cities, nil
}
