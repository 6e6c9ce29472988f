package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"forecastdash.app/internal/mocks"
	"forecastdash.app/pkg/errors"
)

const (
	moscowSearchBody = `[{"Key":"123","LocalizedName":"Moscow","Country":{"LocalizedName":"Russia"},
		"GeoPosition":{"Latitude":55.7,"Longitude":37.6}}]`
	moscowForecastBody = `{"DailyForecasts":[
		{"Date":"2024-06-01T07:00:00+03:00",
		 "Temperature":{"Minimum":{"Value":10},"Maximum":{"Value":20}},
		 "Day":{"RainProbability":0,"RelativeHumidity":{"Average":60},"Wind":{"Speed":{"Value":9.3}}}},
		{"Date":"2024-06-02T07:00:00+03:00",
		 "Temperature":{"Minimum":{"Value":5},"Maximum":{"Value":15}},
		 "Day":{"RainProbability":40,"RelativeHumidity":{"Average":75},"Wind":{"Speed":{"Value":5.6}}}}]}`
)

// accuWeatherStub serves the two AccuWeather endpoints from canned bodies
type accuWeatherStub struct {
	mu             sync.Mutex
	searchStatus   int
	searchBody     string
	forecastStatus int
	forecastBody   string
	searches       int
	forecasts      int
	lastForecast   *http.Request
}

func (s *accuWeatherStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.URL.Path == "/locations/v1/cities/search":
			s.searches++
			assert.Equal(t, "test-api-key", r.URL.Query().Get("apikey"))
			assert.Equal(t, "en-us", r.URL.Query().Get("language"))
			assert.Equal(t, "true", r.URL.Query().Get("details"))
			w.WriteHeader(statusOr(s.searchStatus))
			_, err := w.Write([]byte(s.searchBody))
			assert.NoError(t, err)
		case strings.HasPrefix(r.URL.Path, "/forecasts/v1/daily/5day/"):
			s.forecasts++
			s.lastForecast = r.Clone(context.Background())
			w.WriteHeader(statusOr(s.forecastStatus))
			_, err := w.Write([]byte(s.forecastBody))
			assert.NoError(t, err)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func (s *accuWeatherStub) calls() (searches, forecasts int, last *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.searches, s.forecasts, s.lastForecast
}

func statusOr(status int) int {
	if status == 0 {
		return http.StatusOK
	}
	return status
}

func newTestAccuWeather(t *testing.T, stub *accuWeatherStub) *AccuWeatherProviderAdapter {
	t.Helper()

	server := httptest.NewServer(stub.handler(t))
	t.Cleanup(server.Close)

	logger := mocks.NewLogger(t)
	allowLogs(logger)

	provider, err := NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Timeout: time.Second,
		Logger:  logger,
	})
	require.NoError(t, err)
	return provider
}

func TestAccuWeatherProvider_GetForecast_Success(t *testing.T) {
	stub := &accuWeatherStub{searchBody: moscowSearchBody, forecastBody: moscowForecastBody}
	provider := newTestAccuWeather(t, stub)

	data, err := provider.GetForecast(context.Background(), "Moscow")

	require.NoError(t, err)
	assert.Equal(t, "Moscow", data.City)
	assert.Equal(t, "123", data.Location.Key)
	assert.Equal(t, "Russia", data.Location.Country)
	require.Len(t, data.Days, 2)

	first := data.Days[0]
	assert.Equal(t, 15.0, first.Temperature)
	assert.Equal(t, 0.0, first.RainProbability)
	assert.Equal(t, 60.0, first.Humidity)
	assert.Equal(t, 9.3, first.WindSpeed)
	assert.Equal(t, 55.7, first.Latitude)
	assert.Equal(t, 37.6, first.Longitude)
	assert.Equal(t, "Moscow", first.City)

	_, offset := first.Date.Zone()
	assert.Equal(t, 3*60*60, offset)
	assert.Equal(t, 10.0, data.Days[1].Temperature)

	searches, forecasts, last := stub.calls()
	require.NotNil(t, last)
	assert.Equal(t, "/forecasts/v1/daily/5day/123", last.URL.Path)
	assert.Equal(t, "true", last.URL.Query().Get("metric"))
	assert.Equal(t, "true", last.URL.Query().Get("details"))
	assert.Equal(t, 1, searches)
	assert.Equal(t, 1, forecasts)
}

func TestAccuWeatherProvider_ResolveLocation_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		errorType errors.ErrorType
	}{
		{"EmptyList", 0, `[]`, errors.NotFoundError},
		{"MissingKey", 0, `[{"GeoPosition":{"Latitude":1,"Longitude":2}}]`, errors.NotFoundError},
		{"ServerError", http.StatusServiceUnavailable, `{}`, errors.NotFoundError},
		{"Unauthorized", http.StatusUnauthorized, `{"Code":"Unauthorized"}`, errors.NotFoundError},
		{"NotJSON", 0, `<html>`, errors.NotFoundError},
		{"MissingGeoPosition", 0, `[{"Key":"123"}]`, errors.ParseError},
		{"MissingLongitude", 0, `[{"Key":"123","GeoPosition":{"Latitude":1}}]`, errors.ParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &accuWeatherStub{searchStatus: tt.status, searchBody: tt.body}
			provider := newTestAccuWeather(t, stub)

			location, err := provider.ResolveLocation(context.Background(), "Atlantis")

			assert.Nil(t, location)
			assert.Equal(t, tt.errorType, errors.TypeOf(err))
		})
	}
}

func TestAccuWeatherProvider_ResolveLocation_FirstMatchWins(t *testing.T) {
	stub := &accuWeatherStub{searchBody: `[
		{"Key":"1","LocalizedName":"Paris","GeoPosition":{"Latitude":48.8,"Longitude":2.3}},
		{"Key":"2","LocalizedName":"Paris","GeoPosition":{"Latitude":33.6,"Longitude":-95.5}}]`}
	provider := newTestAccuWeather(t, stub)

	location, err := provider.ResolveLocation(context.Background(), "Paris")

	require.NoError(t, err)
	assert.Equal(t, "1", location.Key)
	assert.Equal(t, 48.8, location.Latitude)
}

func TestAccuWeatherProvider_ResolveLocation_EmptyCity(t *testing.T) {
	stub := &accuWeatherStub{}
	provider := newTestAccuWeather(t, stub)

	_, err := provider.ResolveLocation(context.Background(), " ")

	assert.True(t, errors.IsValidationError(err))
	searches, _, _ := stub.calls()
	assert.Equal(t, 0, searches)
}

func TestAccuWeatherProvider_GetForecast_Errors(t *testing.T) {
	day := func(date, rest string) string {
		return `{"Date":"` + date + `",` + rest + `}`
	}
	full := `"Temperature":{"Minimum":{"Value":1},"Maximum":{"Value":3}},"Day":{"RainProbability":5,"RelativeHumidity":{"Average":50},"Wind":{"Speed":{"Value":2}}}`

	tests := []struct {
		name      string
		status    int
		body      string
		errorType errors.ErrorType
	}{
		{"ServerError", http.StatusInternalServerError, `{}`, errors.ExternalAPIError},
		{"NotJSON", 0, `not json`, errors.ExternalAPIError},
		{"WrongTypedValue", 0, `{"DailyForecasts":[` + day("2024-06-01", `"Temperature":{"Minimum":{"Value":"ten"},"Maximum":{"Value":3}},"Day":{"RainProbability":5,"RelativeHumidity":{"Average":50},"Wind":{"Speed":{"Value":2}}}`) + `]}`, errors.ParseError},
		{"WrongTypedList", 0, `{"DailyForecasts":{"Date":"2024-06-01"}}`, errors.ParseError},
		{"TruncatedJSON", 0, `{"DailyForecasts":[`, errors.ExternalAPIError},
		{"MissingDailyForecasts", 0, `{}`, errors.ParseError},
		{"MissingHumidity", 0, `{"DailyForecasts":[` + day("2024-06-01T07:00:00+03:00", full) + `,` +
			day("2024-06-02T07:00:00+03:00", `"Temperature":{"Minimum":{"Value":1},"Maximum":{"Value":3}},"Day":{"RainProbability":5,"Wind":{"Speed":{"Value":2}}}`) + `]}`, errors.ParseError},
		{"MissingMaximum", 0, `{"DailyForecasts":[` + day("2024-06-01", `"Temperature":{"Minimum":{"Value":1}},"Day":{"RainProbability":5,"RelativeHumidity":{"Average":50},"Wind":{"Speed":{"Value":2}}}`) + `]}`, errors.ParseError},
		{"BadDate", 0, `{"DailyForecasts":[` + day("June 1st", full) + `]}`, errors.ParseError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &accuWeatherStub{searchBody: moscowSearchBody, forecastStatus: tt.status, forecastBody: tt.body}
			provider := newTestAccuWeather(t, stub)

			data, err := provider.GetForecast(context.Background(), "Moscow")

			assert.Nil(t, data)
			assert.Equal(t, tt.errorType, errors.TypeOf(err))
		})
	}
}

func TestAccuWeatherProvider_GetForecast_WrongTypedValueMessage(t *testing.T) {
	stub := &accuWeatherStub{searchBody: moscowSearchBody, forecastBody: `{"DailyForecasts":[{"Date":"2024-06-01",
		"Temperature":{"Minimum":{"Value":"ten"},"Maximum":{"Value":20}},
		"Day":{"RainProbability":0,"RelativeHumidity":{"Average":60},"Wind":{"Speed":{"Value":9.3}}}}]}`}
	provider := newTestAccuWeather(t, stub)

	_, err := provider.GetForecast(context.Background(), "Moscow")

	require.Error(t, err)
	assert.Equal(t, "could not unpack data", errors.UserMessage(err))
}

func TestAccuWeatherProvider_GetForecast_NoDays(t *testing.T) {
	stub := &accuWeatherStub{searchBody: moscowSearchBody, forecastBody: `{"DailyForecasts":[]}`}
	provider := newTestAccuWeather(t, stub)

	data, err := provider.GetForecast(context.Background(), "Moscow")

	require.NoError(t, err)
	require.NotNil(t, data)
	assert.Equal(t, "123", data.Location.Key)
	assert.Empty(t, data.Days)
}

func TestAccuWeatherProvider_GetForecast_MissingCoordinatesSkipsForecast(t *testing.T) {
	stub := &accuWeatherStub{searchBody: `[{"Key":"123"}]`, forecastBody: moscowForecastBody}
	provider := newTestAccuWeather(t, stub)

	_, err := provider.GetForecast(context.Background(), "Moscow")

	assert.True(t, errors.IsParseError(err))
	_, forecasts, _ := stub.calls()
	assert.Equal(t, 0, forecasts)
}

func TestAccuWeatherProvider_GetForecast_LookupErrorSkipsForecast(t *testing.T) {
	stub := &accuWeatherStub{searchBody: `[]`}
	provider := newTestAccuWeather(t, stub)

	_, err := provider.GetForecast(context.Background(), "Atlantis")

	assert.True(t, errors.IsNotFoundError(err))
	assert.Equal(t, "city not found", errors.UserMessage(err))
	_, forecasts, _ := stub.calls()
	assert.Equal(t, 0, forecasts)
}

func TestParseForecastDate(t *testing.T) {
	tests := []struct {
		value  string
		offset int
		day    int
	}{
		{"2024-06-01T07:00:00+03:00", 3 * 60 * 60, 1},
		{"2024-06-02T07:00:00", 0, 2},
		{"2024-06-03", 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			date, err := parseForecastDate(tt.value)
			require.NoError(t, err)
			_, offset := date.Zone()
			assert.Equal(t, tt.offset, offset)
			assert.Equal(t, tt.day, date.Day())
		})
	}

	_, err := parseForecastDate("")
	assert.Error(t, err)
}

func TestNewAccuWeatherProviderAdapter_Validation(t *testing.T) {
	_, err := NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{Logger: mocks.NewLogger(t)})
	assert.True(t, errors.IsConfigurationError(err))

	_, err = NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{APIKey: "key"})
	assert.True(t, errors.IsConfigurationError(err))

	provider, err := NewAccuWeatherProviderAdapter(AccuWeatherProviderParams{APIKey: "key", Logger: mocks.NewLogger(t)})
	require.NoError(t, err)
	assert.Equal(t, "accuweather", provider.GetProviderName())
	assert.Equal(t, defaultAccuWeatherBaseURL, provider.baseURL)
	assert.Equal(t, "en-us", provider.language)
}
