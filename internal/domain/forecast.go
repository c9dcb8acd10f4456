package domain

import (
	"encoding/json"
	"math"
	"time"
	_ "time/tzdata" // forecast timezones resolve without a system zoneinfo
)

// Field names a numeric member of a forecast data point.
type Field string

const (
	FieldTime              Field = "time"
	FieldPrecipProbability Field = "precipProbability"
	FieldPrecipIntensity   Field = "precipIntensity"
	FieldTemperature       Field = "temperature"
	FieldWindBearing       Field = "windBearing"
	FieldWindSpeed         Field = "windSpeed"
	FieldCloudCover        Field = "cloudCover"
)

// DataPoint is one timestep record. Only numeric members are kept.
type DataPoint map[Field]float64

// UnmarshalJSON decodes a data point, skipping non-numeric members such as
// "summary", "icon" and "precipType".
func (p *DataPoint) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := make(DataPoint, len(raw))
	for key, value := range raw {
		var f float64
		if err := json.Unmarshal(value, &f); err == nil {
			out[Field(key)] = f
		}
	}
	*p = out
	return nil
}

// Value returns the sample for field and whether it was present.
func (p DataPoint) Value(field Field) (float64, bool) {
	v, ok := p[field]
	return v, ok
}

// Series is an ordered sequence of data points, index-aligned with time.
type Series []DataPoint

// Values extracts field from every point. Missing samples become NaN so that
// positions stay aligned with the series.
func (s Series) Values(field Field) []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		v, ok := p.Value(field)
		if !ok {
			v = math.NaN()
		}
		values[i] = v
	}
	return values
}

// Head returns at most the first n points.
func (s Series) Head(n int) Series {
	if n < 0 {
		n = 0
	}
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}

// DataBlock is one resolution of forecast data.
type DataBlock struct {
	Summary string `json:"summary,omitempty"`
	Icon    string `json:"icon,omitempty"`
	Data    Series `json:"data"`
}

// Forecast is an already-fetched forecast document.
type Forecast struct {
	Latitude  float64    `json:"latitude,omitempty"`
	Longitude float64    `json:"longitude,omitempty"`
	Timezone  string     `json:"timezone,omitempty"`
	Currently *DataPoint `json:"currently,omitempty"`
	Minutely  *DataBlock `json:"minutely,omitempty"`
	Hourly    *DataBlock `json:"hourly,omitempty"`
	Daily     *DataBlock `json:"daily,omitempty"`
}

// TimeLocation resolves the forecast's IANA timezone, falling back to UTC
// when it is empty or unknown.
func (f Forecast) TimeLocation() *time.Location {
	if f.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(f.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Location is the resolved place a forecast was requested for.
type Location struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat,omitempty"`
	Lon  float64 `json:"lon,omitempty"`
}
