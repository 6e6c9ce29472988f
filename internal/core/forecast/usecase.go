package forecast

import (
	"context"
	"fmt"

	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
	"forecastdash.app/pkg/validation"
)

type UseCase struct {
	provider ports.ForecastProvider
	cache    ports.ForecastCache
	config   ports.ConfigProvider
	logger   ports.Logger
	metrics  ports.MetricsCollector
	clock    ports.Clock
}

type UseCaseDependencies struct {
	Provider ports.ForecastProvider
	Cache    ports.ForecastCache
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.MetricsCollector
	Clock    ports.Clock
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("forecast provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("forecast cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.Clock == nil {
		return nil, errors.NewValidationError("clock is required")
	}

	return &UseCase{
		provider: deps.Provider,
		cache:    deps.Cache,
		config:   deps.Config,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		clock:    deps.Clock,
	}, nil
}

// EnsureCached fetches and stores the forecast for city unless a non-empty
// entry already exists under that exact name.
func (uc *UseCase) EnsureCached(ctx context.Context, city string) error {
	if !validation.IsNotEmpty(city) {
		return errors.NewValidationError("city name is empty")
	}

	cached, err := uc.cache.Get(ctx, city)
	if err == nil && cached != nil && len(cached.Days) > 0 {
		uc.metrics.RecordCacheHit(ctx)
		uc.logger.Debug("Forecast found in cache", ports.F("city", city))
		return nil
	}
	if err != nil && !errors.IsNotFoundError(err) {
		uc.logger.Warn("Failed to read forecast cache, fetching from provider",
			ports.F("city", city),
			ports.F("error", err))
	}
	uc.metrics.RecordCacheMiss(ctx)

	data, err := uc.provider.GetForecast(ctx, city)
	if err != nil {
		return fmt.Errorf("get forecast for city %s: %w", city, err)
	}
	if data.FetchedAt.IsZero() {
		data.FetchedAt = uc.clock.Now()
	}

	if err := uc.cache.Set(ctx, city, data); err != nil {
		return errors.NewCacheError("could not cache forecast", err)
	}

	uc.logger.Info("Forecast cached",
		ports.F("city", city),
		ports.F("location_key", data.Location.Key),
		ports.F("days", len(data.Days)))
	return nil
}

// Render makes sure every requested city is cached and builds the dashboard.
// Failed cities are reported in the result and never abort the render.
func (uc *UseCase) Render(ctx context.Context, request RenderRequest) (*Dashboard, error) {
	dashboardConfig := uc.config.GetDashboardConfig()
	if err := request.IsValid(dashboardConfig.MaxDays); err != nil {
		return nil, err
	}

	var cityErrors []CityError
	requested := make([]string, 0, len(request.Cities))
	seen := make(map[string]bool, len(request.Cities))

	for _, city := range request.Cities {
		if err := uc.EnsureCached(ctx, city); err != nil {
			cityErr := newCityError(city, err)
			cityErrors = append(cityErrors, cityErr)
			uc.metrics.RecordCityError(ctx, cityErr.Kind)
			uc.logger.Warn("Skipping city",
				ports.F("city", city),
				ports.F("kind", cityErr.Kind),
				ports.F("error", err))
			continue
		}
		if !seen[city] {
			seen[city] = true
			requested = append(requested, city)
		}
	}

	names := requested
	if dashboardConfig.RenderScope != ports.RenderScopeRequested {
		all, err := uc.cache.Cities(ctx)
		if err != nil {
			return nil, errors.NewCacheError("could not list cached cities", err)
		}
		names = all
	}

	sets := uc.loadSets(ctx, names)
	dashboard := BuildDashboard(sets, request.Days)
	dashboard.Errors = cityErrors
	if dashboard.Errors == nil {
		dashboard.Errors = []CityError{}
	}
	dashboard.ErrorSummary = Summarize(cityErrors)

	uc.logger.Debug("Dashboard rendered",
		ports.F("requested", len(request.Cities)),
		ports.F("rendered", len(sets)),
		ports.F("errors", len(cityErrors)),
		ports.F("scope", dashboardConfig.RenderScope))
	return &dashboard, nil
}

func (uc *UseCase) loadSets(ctx context.Context, names []string) []ForecastSet {
	sets := make([]ForecastSet, 0, len(names))
	for _, name := range names {
		data, err := uc.cache.Get(ctx, name)
		if err != nil {
			if !errors.IsNotFoundError(err) {
				uc.logger.Warn("Failed to load cached forecast", ports.F("city", name), ports.F("error", err))
			}
			continue
		}
		set := convertFromPortsForecast(data)
		set.City = name
		if set.IsEmpty() {
			continue
		}
		sets = append(sets, set)
	}
	return sets
}

// CachedCities lists the cache contents in insertion order
func (uc *UseCase) CachedCities(ctx context.Context) ([]CacheEntry, error) {
	names, err := uc.cache.Cities(ctx)
	if err != nil {
		return nil, errors.NewCacheError("could not list cached cities", err)
	}

	entries := make([]CacheEntry, 0, len(names))
	for _, name := range names {
		data, err := uc.cache.Get(ctx, name)
		if err != nil {
			continue
		}
		entries = append(entries, CacheEntry{
			City:      name,
			Days:      len(data.Days),
			Latitude:  data.Location.Latitude,
			Longitude: data.Location.Longitude,
			FetchedAt: data.FetchedAt,
		})
	}
	return entries, nil
}

// Evict removes one city so the next render fetches it again
func (uc *UseCase) Evict(ctx context.Context, city string) error {
	if !validation.IsNotEmpty(city) {
		return errors.NewValidationError("city name is empty")
	}
	if err := uc.cache.Delete(ctx, city); err != nil {
		return errors.NewCacheError("could not evict city", err)
	}
	uc.logger.Info("Forecast evicted", ports.F("city", city))
	return nil
}

// Clear empties the forecast cache
func (uc *UseCase) Clear(ctx context.Context) error {
	if err := uc.cache.Clear(ctx); err != nil {
		return errors.NewCacheError("could not clear cache", err)
	}
	uc.logger.Info("Forecast cache cleared")
	return nil
}

func convertFromPortsForecast(data *ports.ForecastData) ForecastSet {
	days := make([]ForecastDay, len(data.Days))
	for i, d := range data.Days {
		days[i] = ForecastDay{
			City:            d.City,
			Date:            d.Date,
			Temperature:     d.Temperature,
			RainProbability: d.RainProbability,
			Humidity:        d.Humidity,
			WindSpeed:       d.WindSpeed,
			Latitude:        d.Latitude,
			Longitude:       d.Longitude,
		}
	}

	return ForecastSet{
		City: data.City,
		Location: Location{
			Key:       data.Location.Key,
			Latitude:  data.Location.Latitude,
			Longitude: data.Location.Longitude,
		},
		Days:      days,
		FetchedAt: data.FetchedAt,
	}
}
