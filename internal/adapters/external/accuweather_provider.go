package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"forecastdash.app/internal/ports"
	"forecastdash.app/pkg/errors"
	"forecastdash.app/pkg/validation"
)

const (
	defaultAccuWeatherBaseURL  = "http://dataservice.accuweather.com/"
	defaultAccuWeatherLanguage = "en-us"
	defaultAccuWeatherTimeout  = 10 * time.Second

	citySearchPath    = "locations/v1/cities/search"
	dailyForecastPath = "forecasts/v1/daily/5day/"
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// AccuWeatherLocation is one entry of the city search response
type AccuWeatherLocation struct {
	Key           *string                 `json:"Key"`
	LocalizedName string                  `json:"LocalizedName"`
	Country       *AccuWeatherCountry     `json:"Country"`
	GeoPosition   *AccuWeatherGeoPosition `json:"GeoPosition" validate:"required"`
}

type AccuWeatherCountry struct {
	LocalizedName string `json:"LocalizedName"`
}

type AccuWeatherGeoPosition struct {
	Latitude  *float64 `json:"Latitude" validate:"required"`
	Longitude *float64 `json:"Longitude" validate:"required"`
}

// AccuWeatherForecastResponse is the 5-day forecast body
type AccuWeatherForecastResponse struct {
	DailyForecasts []AccuWeatherDailyForecast `json:"DailyForecasts" validate:"required,dive"`
}

type AccuWeatherDailyForecast struct {
	Date        *string                 `json:"Date" validate:"required"`
	Temperature *AccuWeatherTemperature `json:"Temperature" validate:"required"`
	Day         *AccuWeatherDayPart     `json:"Day" validate:"required"`
}

type AccuWeatherTemperature struct {
	Minimum *AccuWeatherValue `json:"Minimum" validate:"required"`
	Maximum *AccuWeatherValue `json:"Maximum" validate:"required"`
}

type AccuWeatherValue struct {
	Value *float64 `json:"Value" validate:"required"`
}

type AccuWeatherDayPart struct {
	RainProbability  *float64             `json:"RainProbability" validate:"required"`
	RelativeHumidity *AccuWeatherHumidity `json:"RelativeHumidity" validate:"required"`
	Wind             *AccuWeatherWind     `json:"Wind" validate:"required"`
}

type AccuWeatherHumidity struct {
	Average *float64 `json:"Average" validate:"required"`
}

type AccuWeatherWind struct {
	Speed *AccuWeatherValue `json:"Speed" validate:"required"`
}

// LocationPolicy picks one location out of the search results
type LocationPolicy func(candidates []AccuWeatherLocation) (*AccuWeatherLocation, bool)

// FirstMatch takes the first search result
func FirstMatch(candidates []AccuWeatherLocation) (*AccuWeatherLocation, bool) {
	if len(candidates) == 0 {
		return nil, false
	}
	return &candidates[0], true
}

// forecastDateLayouts are tried in order; the zone offset is kept as given
var forecastDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// AccuWeatherProviderAdapter implements ForecastProvider port for AccuWeather.
// A forecast takes two calls: city search for the location key, then the
// daily forecast for that key.
type AccuWeatherProviderAdapter struct {
	apiKey   string
	baseURL  string
	language string
	policy   LocationPolicy
	client   HTTPClient
	logger   ports.Logger
}

// AccuWeatherProviderParams holds parameters for creating AccuWeather provider
type AccuWeatherProviderParams struct {
	APIKey   string
	BaseURL  string
	Language string
	Timeout  time.Duration
	Policy   LocationPolicy
	Client   HTTPClient
	Logger   ports.Logger
}

// NewAccuWeatherProviderAdapter creates a new AccuWeather provider adapter
func NewAccuWeatherProviderAdapter(params AccuWeatherProviderParams) (*AccuWeatherProviderAdapter, error) {
	if params.APIKey == "" {
		return nil, errors.NewConfigurationError("AccuWeather API key not configured", nil)
	}
	if params.Logger == nil {
		return nil, errors.NewConfigurationError("logger is required", nil)
	}

	baseURL := params.BaseURL
	if baseURL == "" {
		baseURL = defaultAccuWeatherBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	language := params.Language
	if language == "" {
		language = defaultAccuWeatherLanguage
	}

	policy := params.Policy
	if policy == nil {
		policy = FirstMatch
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultAccuWeatherTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &AccuWeatherProviderAdapter{
		apiKey:   params.APIKey,
		baseURL:  baseURL,
		language: language,
		policy:   policy,
		client:   client,
		logger:   params.Logger,
	}, nil
}

// ResolveLocation looks the city up and applies the location policy
func (p *AccuWeatherProviderAdapter) ResolveLocation(ctx context.Context, city string) (*ports.Location, error) {
	if !validation.IsNotEmpty(city) {
		return nil, errors.NewValidationError("city name is empty")
	}

	query := url.Values{}
	query.Set("apikey", p.apiKey)
	query.Set("q", city)
	query.Set("language", p.language)
	query.Set("details", "true")

	var candidates []AccuWeatherLocation
	if err := p.getJSON(ctx, citySearchPath, query, &candidates); err != nil {
		return nil, errors.NewLookupError(fmt.Sprintf("city search failed for %q", city), err)
	}

	chosen, ok := p.policy(candidates)
	if !ok {
		return nil, errors.NewLookupError(fmt.Sprintf("no locations match %q", city), nil)
	}
	if chosen.Key == nil || *chosen.Key == "" {
		return nil, errors.NewLookupError(fmt.Sprintf("location for %q has no key", city), nil)
	}
	// coordinates are checked here, before any forecast request is made
	if err := validation.Struct(chosen); err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("location for %q is incomplete", city), err)
	}

	location := &ports.Location{
		Key:           *chosen.Key,
		LocalizedName: chosen.LocalizedName,
		Latitude:      *chosen.GeoPosition.Latitude,
		Longitude:     *chosen.GeoPosition.Longitude,
	}
	if chosen.Country != nil {
		location.Country = chosen.Country.LocalizedName
	}
	return location, nil
}

// GetForecast resolves the city and returns its daily forecast in provider order
func (p *AccuWeatherProviderAdapter) GetForecast(ctx context.Context, city string) (*ports.ForecastData, error) {
	location, err := p.ResolveLocation(ctx, city)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("apikey", p.apiKey)
	query.Set("language", p.language)
	query.Set("details", "true")
	query.Set("metric", "true")

	var resp AccuWeatherForecastResponse
	if err := p.getJSON(ctx, dailyForecastPath+url.PathEscape(location.Key), query, &resp); err != nil {
		var typeErr *json.UnmarshalTypeError
		if stderrors.As(err, &typeErr) {
			return nil, errors.NewParseError(fmt.Sprintf("malformed forecast field %q for location %s", typeErr.Field, location.Key), err)
		}
		return nil, errors.NewExternalAPIError(fmt.Sprintf("forecast request failed for location %s", location.Key), err)
	}

	days, err := mapDailyForecasts(city, location, resp)
	if err != nil {
		return nil, err
	}

	return &ports.ForecastData{
		City:     city,
		Location: *location,
		Days:     days,
	}, nil
}

// GetProviderName returns the name of this forecast provider
func (p *AccuWeatherProviderAdapter) GetProviderName() string {
	return "accuweather"
}

func (p *AccuWeatherProviderAdapter) getJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close AccuWeather response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("AccuWeather returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode AccuWeather response: %w", err)
	}
	return nil
}

// mapDailyForecasts fails the whole set if any day is incomplete; an empty
// list maps to an empty set
func mapDailyForecasts(city string, location *ports.Location, resp AccuWeatherForecastResponse) ([]ports.ForecastDay, error) {
	if err := validation.Struct(resp); err != nil {
		return nil, errors.NewParseError(fmt.Sprintf("incomplete forecast for %q", city), err)
	}

	days := make([]ports.ForecastDay, len(resp.DailyForecasts))
	for i, daily := range resp.DailyForecasts {
		date, err := parseForecastDate(*daily.Date)
		if err != nil {
			return nil, errors.NewParseError(fmt.Sprintf("bad forecast date for %q", city), err)
		}

		days[i] = ports.ForecastDay{
			City:            city,
			Date:            date,
			Temperature:     (*daily.Temperature.Minimum.Value + *daily.Temperature.Maximum.Value) / 2,
			RainProbability: *daily.Day.RainProbability,
			Humidity:        *daily.Day.RelativeHumidity.Average,
			WindSpeed:       *daily.Day.Wind.Speed.Value,
			Latitude:        location.Latitude,
			Longitude:       location.Longitude,
		}
	}
	return days, nil
}

func parseForecastDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range forecastDateLayouts {
		date, err := time.Parse(layout, value)
		if err == nil {
			return date, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
