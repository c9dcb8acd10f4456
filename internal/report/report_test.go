package report

import (
	"strings"
	"testing"
	"time"

	"github.com/couchcryptid/forecast-bands-service/internal/domain"
	"github.com/couchcryptid/forecast-bands-service/internal/render"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testLocation = "Portland, OR"
	testTempBand = "\x0309_\x0311▅\x0308██\x03"
	testWindBand = "\x0302↓←\x0311↑\x0313→\x03"
)

func freezeClock(t *testing.T) clockwork.Clock {
	t.Helper()
	c := clockwork.NewFakeClockAt(time.Date(2024, time.April, 26, 15, 10, 0, 0, time.UTC))
	domain.SetClock(c)
	t.Cleanup(func() { domain.SetClock(nil) })
	return c
}

func minutely(values ...float64) *domain.DataBlock {
	s := make(domain.Series, len(values))
	for i, v := range values {
		s[i] = domain.DataPoint{domain.FieldPrecipProbability: v}
	}
	return &domain.DataBlock{Data: s}
}

func testForecast() domain.Forecast {
	return domain.Forecast{
		Minutely: minutely(0, 0, 0, 0, 0.5, 0.5, 0.5, 0.5),
		Hourly: &domain.DataBlock{Data: domain.Series{
			{domain.FieldTemperature: 50, domain.FieldWindSpeed: 2, domain.FieldWindBearing: 0},
			{domain.FieldTemperature: 60, domain.FieldWindSpeed: 2, domain.FieldWindBearing: 90},
			{domain.FieldTemperature: 70, domain.FieldWindSpeed: 10, domain.FieldWindBearing: 180},
			{domain.FieldTemperature: 70, domain.FieldWindSpeed: 25, domain.FieldWindBearing: 270},
		}},
		Daily: &domain.DataBlock{Data: domain.Series{{domain.FieldCloudCover: 0.55}}},
	}
}

func TestNewBuilder_Defaults(t *testing.T) {
	b := NewBuilder(Options{})
	assert.Equal(t, DefaultOptions(), b.opts)

	b = NewBuilder(Options{Units: render.Metric, Glyphs: render.Plain, ForecastHours: 12})
	assert.Equal(t, render.Metric, b.opts.Units)
	assert.Equal(t, render.Plain, b.opts.Glyphs)
	assert.Equal(t, 12, b.opts.ForecastHours)
	assert.Equal(t, 8, b.opts.ConditionsHours)
}

func TestRain(t *testing.T) {
	freezeClock(t)
	b := NewBuilder(Options{Glyphs: render.Plain})

	got := b.Rain(domain.Forecast{Minutely: minutely(0, 0.05, 0.3, 0.9, 1.0)})
	assert.Equal(t, "rain probability 15:10|\x0302_.\x0310~\x0304'\x0313'\x03|16:10", got)
}

func TestRain_ForecastTimezone(t *testing.T) {
	freezeClock(t)
	b := NewBuilder(Options{})

	got := b.Rain(domain.Forecast{Timezone: "America/Los_Angeles", Minutely: minutely(0)})
	assert.Equal(t, "rain probability 08:10|\x0302_\x03|09:10", got)
}

func TestRain_NoMinutely(t *testing.T) {
	freezeClock(t)
	b := NewBuilder(Options{})

	got := b.Rain(domain.Forecast{})
	assert.Equal(t, "rain probability 15:10|No minute-by-minute data available.|16:10", got)
}

func TestIntensity(t *testing.T) {
	freezeClock(t)
	b := NewBuilder(Options{Glyphs: render.Plain})

	f := domain.Forecast{Minutely: &domain.DataBlock{Data: domain.Series{
		{domain.FieldPrecipIntensity: 0},
		{domain.FieldPrecipIntensity: 0.05},
	}}}
	assert.Equal(t, "rain intensity 15:10|\x0302_\x0313.\x03|16:10", b.Intensity(f))
}

func TestTemperature(t *testing.T) {
	b := NewBuilder(Options{ForecastHours: 3})

	got := b.Temperature(testForecast())
	assert.Equal(t, "temps: now 50.0°F |\x0309_\x0311▅\x0308█\x03| 70.0°F this hour tomorrow.  Range: 50.0°F - 70.0°F", got)
}

func TestTemperature_Metric(t *testing.T) {
	b := NewBuilder(Options{Units: render.Metric, ForecastHours: 3})

	got := b.Temperature(testForecast())
	assert.Contains(t, got, "temps: now 10.0°C |")
	assert.Contains(t, got, "Range: 10.0°C - 21.11°C")
}

func TestTemperature_NoHourly(t *testing.T) {
	b := NewBuilder(Options{})
	assert.Equal(t, "temps: No hourly data available.", b.Temperature(domain.Forecast{}))
	assert.Equal(t, "temps: No hourly data available.", b.Temperature(domain.Forecast{Hourly: &domain.DataBlock{}}))
}

func TestTemperature_MissingFirstSample(t *testing.T) {
	b := NewBuilder(Options{})

	f := domain.Forecast{Hourly: &domain.DataBlock{Data: domain.Series{
		{domain.FieldWindSpeed: 2},
		{domain.FieldTemperature: 60},
		{domain.FieldTemperature: 70},
		{domain.FieldWindSpeed: 4},
	}}}
	got := b.Temperature(f)
	assert.Equal(t, "temps: now 60.0°F |\x0314?\x0311_\x0308█\x0314?\x03| 70.0°F this hour tomorrow.  Range: 60.0°F - 70.0°F", got)
	assert.NotContains(t, got, "NaN")
}

func TestTemperature_NoTemperatureSamples(t *testing.T) {
	b := NewBuilder(Options{})

	f := domain.Forecast{Hourly: &domain.DataBlock{Data: domain.Series{{domain.FieldWindSpeed: 2}}}}
	assert.Equal(t, "temps: No hourly data available.", b.Temperature(f))
}

func TestWind(t *testing.T) {
	b := NewBuilder(Options{})

	got := b.Wind(testForecast())
	assert.Equal(t, "4h wind direction |"+testWindBand+"| Range: 2.0 mph - 25.0 mph", got)
}

func TestWind_NoHourly(t *testing.T) {
	b := NewBuilder(Options{})
	assert.Equal(t, "wind: No hourly data available.", b.Wind(domain.Forecast{}))
}

func TestWind_NoSpeedSamples(t *testing.T) {
	b := NewBuilder(Options{})

	f := domain.Forecast{Hourly: &domain.DataBlock{Data: domain.Series{
		{domain.FieldWindBearing: 0},
		{domain.FieldWindBearing: 90},
	}}}
	got := b.Wind(f)
	assert.Equal(t, "wind: No hourly data available.", got)
	assert.NotContains(t, got, "0.0 mph")
}

func TestConditions(t *testing.T) {
	b := NewBuilder(Options{})

	got := b.Conditions(testForecast())
	want := "50.0°F |" + testTempBand + "| 70.0°F" +
		" / 2.0 mph |" + testWindBand + "| 25.0 mph" +
		" / \x030945\x03% chance of sun" +
		" / 60m rain |\x0302_\x0309▅\x03|"
	assert.Equal(t, want, got)
}

func TestConditions_MissingBlocks(t *testing.T) {
	b := NewBuilder(Options{})

	got := b.Conditions(domain.Forecast{})
	assert.Equal(t, "No hourly data available. / 60m rain |No minute-by-minute data available.|", got)
}

func TestConditions_PartialHourly(t *testing.T) {
	b := NewBuilder(Options{})

	f := domain.Forecast{Hourly: &domain.DataBlock{Data: domain.Series{
		{domain.FieldWindBearing: 0},
		{domain.FieldWindSpeed: 10, domain.FieldWindBearing: 180},
	}}}
	got := b.Conditions(f)
	assert.Equal(t, "temps: No hourly data available."+
		" / 10.0 mph |\x0314↓\x0311↑\x03| 10.0 mph"+
		" / 60m rain |No minute-by-minute data available.|", got)
	assert.NotContains(t, got, "NaN")
}

func TestBuild(t *testing.T) {
	clock := freezeClock(t)
	b := NewBuilder(Options{})

	report, err := b.Build(domain.ReportRequest{
		ID:       "req-1",
		Kind:     domain.KindConditions,
		Location: domain.Location{Name: testLocation},
		Forecast: testForecast(),
	})
	require.NoError(t, err)

	assert.Equal(t, "req-1", report.ID)
	assert.Equal(t, domain.KindConditions, report.Kind)
	assert.True(t, strings.HasPrefix(report.Line, testLocation+" 50.0°F |\x0309"))
	assert.Equal(t, "Portland, OR 50.0°F |_▅██| 70.0°F / 2.0 mph |↓←↑→| 25.0 mph / 45% chance of sun / 60m rain |_▅|", report.Plain)
	assert.Equal(t, len([]rune(report.Plain)), report.Width)
	assert.Equal(t, clock.Now(), report.RenderedAt)
}

func TestBuild_NoLocationName(t *testing.T) {
	freezeClock(t)
	b := NewBuilder(Options{})

	report, err := b.Build(domain.ReportRequest{Kind: domain.KindWind, Forecast: testForecast()})
	require.NoError(t, err)
	assert.Equal(t, "4h wind direction |↓←↑→| Range: 2.0 mph - 25.0 mph", report.Plain)
}

func TestBuild_UnknownKind(t *testing.T) {
	b := NewBuilder(Options{})

	_, err := b.Build(domain.ReportRequest{Kind: "yesno"})
	require.ErrorIs(t, err, domain.ErrUnknownKind)
}
