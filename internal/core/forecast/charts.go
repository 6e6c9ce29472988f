package forecast

import "fmt"

// Palette is the Plotly qualitative palette; cities cycle through it by index
var Palette = []string{
	"#636EFA", "#EF553B", "#00CC96", "#AB63FA", "#FFA15A",
	"#19D3F3", "#FF6692", "#B6E880", "#FF97FF", "#FECB52",
}

// ColorFor returns the palette color for the i-th city
func ColorFor(i int) string {
	return Palette[i%len(Palette)]
}

// Figure is a Plotly figure: traces plus layout
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

type Trace struct {
	Type      string      `json:"type"`
	Mode      string      `json:"mode,omitempty"`
	Name      string      `json:"name,omitempty"`
	X         []string    `json:"x,omitempty"`
	Y         []float64   `json:"y,omitempty"`
	Lat       []float64   `json:"lat,omitempty"`
	Lon       []float64   `json:"lon,omitempty"`
	Text      []string    `json:"text,omitempty"`
	HoverText []string    `json:"hovertext,omitempty"`
	HoverInfo string      `json:"hoverinfo,omitempty"`
	Line      *Line       `json:"line,omitempty"`
	Marker    *Marker     `json:"marker,omitempty"`
}

type Line struct {
	Color string `json:"color"`
}

type Marker struct {
	Color []string `json:"color,omitempty"`
	Size  int      `json:"size,omitempty"`
}

type Layout struct {
	Title  *Text   `json:"title,omitempty"`
	XAxis  *Axis   `json:"xaxis,omitempty"`
	YAxis  *Axis   `json:"yaxis,omitempty"`
	Legend *Legend `json:"legend,omitempty"`
	Mapbox *Mapbox `json:"mapbox,omitempty"`
}

type Text struct {
	Text string `json:"text"`
}

type Axis struct {
	Title Text `json:"title"`
}

type Legend struct {
	Title Text `json:"title"`
}

type Mapbox struct {
	Style  string  `json:"style"`
	Zoom   float64 `json:"zoom"`
	Center *LatLon `json:"center,omitempty"`
}

type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

const (
	mapStyle = "carto-positron"
	mapZoom  = 5

	// plotlyDateLayout is wall-clock time in the forecast's own zone
	plotlyDateLayout = "2006-01-02 15:04:05"
)

type metricChart struct {
	title      string
	yTitle     string
	seriesName string
	value      func(ForecastDay) float64
}

var (
	temperatureChart = metricChart{
		title:      "Temperature forecast for %d days",
		yTitle:     "Temperature, °C",
		seriesName: "Average temperature in %s",
		value:      func(d ForecastDay) float64 { return d.Temperature },
	}
	rainChart = metricChart{
		title:      "Rain forecast for %d days",
		yTitle:     "Probability, %",
		seriesName: "Rain probability in %s",
		value:      func(d ForecastDay) float64 { return d.RainProbability },
	}
	humidityChart = metricChart{
		title:      "Humidity forecast for %d days",
		yTitle:     "Humidity, %",
		seriesName: "Average humidity in %s",
		value:      func(d ForecastDay) float64 { return d.Humidity },
	}
	windChart = metricChart{
		title:      "Wind forecast for %d days",
		yTitle:     "Speed, km/h",
		seriesName: "Wind speed in %s",
		value:      func(d ForecastDay) float64 { return d.WindSpeed },
	}
)

func (m metricChart) build(sets []ForecastSet, days int) Figure {
	fig := Figure{
		Data: make([]Trace, 0, len(sets)),
		Layout: Layout{
			Title:  &Text{Text: fmt.Sprintf(m.title, days)},
			XAxis:  &Axis{Title: Text{Text: "Date"}},
			YAxis:  &Axis{Title: Text{Text: m.yTitle}},
			Legend: &Legend{Title: Text{Text: "Cities"}},
		},
	}

	for i, set := range sets {
		rows := set.FirstDays(days)
		trace := Trace{
			Type: "scatter",
			Mode: "lines+markers",
			Name: fmt.Sprintf(m.seriesName, set.City),
			X:    make([]string, len(rows)),
			Y:    make([]float64, len(rows)),
			Line: &Line{Color: ColorFor(i)},
		}
		for j, day := range rows {
			trace.X[j] = day.Date.Format(plotlyDateLayout)
			trace.Y[j] = m.value(day)
		}
		fig.Data = append(fig.Data, trace)
	}

	return fig
}

// buildMap places one marker per city; hover text shows the first day's values
func buildMap(sets []ForecastSet) Figure {
	fig := Figure{
		Data:   []Trace{},
		Layout: Layout{Mapbox: &Mapbox{Style: mapStyle, Zoom: mapZoom}},
	}
	if len(sets) == 0 {
		return fig
	}

	trace := Trace{
		Type:      "scattermapbox",
		Mode:      "markers",
		Name:      "Cities",
		HoverInfo: "text",
		Marker:    &Marker{Size: 12},
	}
	for i, set := range sets {
		first := set.Days[0]
		trace.Lat = append(trace.Lat, set.Location.Latitude)
		trace.Lon = append(trace.Lon, set.Location.Longitude)
		trace.Text = append(trace.Text, set.City)
		trace.HoverText = append(trace.HoverText, fmt.Sprintf(
			"%s<br>temperature: %.1f<br>rain: %.0f<br>humidity: %.0f<br>wind: %.1f",
			set.City, first.Temperature, first.RainProbability, first.Humidity, first.WindSpeed))
		trace.Marker.Color = append(trace.Marker.Color, ColorFor(i))
	}

	fig.Data = append(fig.Data, trace)
	fig.Layout.Mapbox.Center = &LatLon{Lat: sets[0].Location.Latitude, Lon: sets[0].Location.Longitude}
	return fig
}

// BuildDashboard renders the five figures for the given non-empty sets
func BuildDashboard(sets []ForecastSet, days int) Dashboard {
	cities := make([]string, len(sets))
	for i, set := range sets {
		cities[i] = set.City
	}

	return Dashboard{
		Temperature: temperatureChart.build(sets, days),
		Rain:        rainChart.build(sets, days),
		Humidity:    humidityChart.build(sets, days),
		Wind:        windChart.build(sets, days),
		Map:         buildMap(sets),
		Cities:      cities,
	}
}
