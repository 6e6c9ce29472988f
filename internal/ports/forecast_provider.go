package ports

import (
	"context"
	"time"
)

// Location is a provider-resolved place
type Location struct {
	Key           string
	LocalizedName string
	Country       string
	Latitude      float64
	Longitude     float64
}

// ForecastDay is one flattened day of a provider forecast
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

// ForecastData is the forecast fetched for one city in a single call
type ForecastData struct {
	City      string
	Location  Location
	Days      []ForecastDay
	FetchedAt time.Time
}

// ForecastProvider defines the contract for multi-day forecast providers
type ForecastProvider interface {
	ResolveLocation(ctx context.Context, city string) (*Location, error)
	GetForecast(ctx context.Context, city string) (*ForecastData, error)
	GetProviderName() string
}

// ForecastCache stores forecasts by city name exactly as typed.
// Get returns a NotFound error on a miss; Cities lists entries in insertion order.
type ForecastCache interface {
	Get(ctx context.Context, city string) (*ForecastData, error)
	Set(ctx context.Context, city string, forecast *ForecastData) error
	Delete(ctx context.Context, city string) error
	Clear(ctx context.Context) error
	Cities(ctx context.Context) ([]string, error)
}
