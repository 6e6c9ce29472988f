package forecast

import (
	"fmt"
	"strings"
	"time"

	"forecastdash.app/pkg/errors"
)

// MaxForecastDays is the length of the provider's daily forecast
const MaxForecastDays = 5

// Location is a resolved place with its provider key
type Location struct {
	Key       string
	Latitude  float64
	Longitude float64
}

// ForecastDay is a single day of forecast for one city
type ForecastDay struct {
	City            string
	Date            time.Time
	Temperature     float64
	RainProbability float64
	Humidity        float64
	WindSpeed       float64
	Latitude        float64
	Longitude       float64
}

// ForecastSet holds the days fetched for one city, oldest first
type ForecastSet struct {
	City      string
	Location  Location
	Days      []ForecastDay
	FetchedAt time.Time
}

// IsEmpty reports whether the set has no days
func (s *ForecastSet) IsEmpty() bool {
	return s == nil || len(s.Days) == 0
}

// FirstDays returns the first n days by position, or all of them when n exceeds the set
func (s *ForecastSet) FirstDays(n int) []ForecastDay {
	if s.IsEmpty() || n <= 0 {
		return nil
	}
	if n > len(s.Days) {
		n = len(s.Days)
	}
	return s.Days[:n]
}

// RenderRequest is a dashboard render call: city names as typed and a day count
type RenderRequest struct {
	Cities []string
	Days   int
}

// IsValid validates the request against the configured day limit
func (r *RenderRequest) IsValid(maxDays int) error {
	if maxDays < 1 || maxDays > MaxForecastDays {
		maxDays = MaxForecastDays
	}
	if r.Days < 1 || r.Days > maxDays {
		return errors.NewValidationError(fmt.Sprintf("days must be between 1 and %d", maxDays))
	}
	return nil
}

// CityError is a failed fetch for one requested city
type CityError struct {
	City    string `json:"city"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

// Label is the text shown in the dashboard error region
func (e CityError) Label() string {
	if strings.TrimSpace(e.City) == "" {
		return e.Message
	}
	return fmt.Sprintf("error for city %s: %s", e.City, e.Message)
}

func newCityError(city string, err error) CityError {
	return CityError{
		City:    city,
		Kind:    errorKind(err),
		Message: errors.UserMessage(err),
		Cause:   err,
	}
}

func errorKind(err error) string {
	switch errors.TypeOf(err) {
	case errors.NotFoundError:
		return "lookup"
	case errors.ExternalAPIError:
		return "fetch"
	case errors.ParseError:
		return "parse"
	case errors.ValidationError:
		return "validation"
	case errors.CacheError:
		return "cache"
	default:
		return "unknown"
	}
}

// ErrorSummaryPrefix starts every error summary, even an empty one
const ErrorSummaryPrefix = "Errors: "

// Summarize joins error labels into the single dashboard error string
func Summarize(errs []CityError) string {
	labels := make([]string, len(errs))
	for i, e := range errs {
		labels[i] = e.Label()
	}
	return ErrorSummaryPrefix + strings.Join(labels, ", ")
}

// Dashboard is the render result: five figures and the per-city errors
type Dashboard struct {
	Temperature  Figure      `json:"temperature"`
	Rain         Figure      `json:"rain"`
	Humidity     Figure      `json:"humidity"`
	Wind         Figure      `json:"wind"`
	Map          Figure      `json:"map"`
	Cities       []string    `json:"cities"`
	Errors       []CityError `json:"errors"`
	ErrorSummary string      `json:"error_summary"`
}

// CacheEntry describes one cached city
type CacheEntry struct {
	City      string    `json:"city"`
	Days      int       `json:"days"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	FetchedAt time.Time `json:"fetched_at"`
}
