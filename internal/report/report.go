// Package report composes rendered series into the one-line reports posted
// to chat: rain, rain intensity, temperature, wind and combined conditions.
package report

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/forecast-bands-service/internal/domain"
	"github.com/couchcryptid/forecast-bands-service/internal/ircfmt"
	"github.com/couchcryptid/forecast-bands-service/internal/render"
)

// Options configures how reports are drawn.
type Options struct {
	Units           render.Units
	Glyphs          render.GlyphSet
	ForecastHours   int // hourly points in temperature and wind reports
	ConditionsHours int // hourly points in the conditions line
	RainDecimation  int // keep every Nth minute in the conditions rain summary
}

// DefaultOptions matches the chat bot's historical output.
func DefaultOptions() Options {
	return Options{
		Units:           render.Imperial,
		Glyphs:          render.Block,
		ForecastHours:   24,
		ConditionsHours: 8,
		RainDecimation:  4,
	}
}

// Builder renders report lines. It holds no mutable state and is safe for
// concurrent use.
type Builder struct {
	opts Options
}

// NewBuilder creates a Builder, filling zero options from DefaultOptions.
func NewBuilder(opts Options) *Builder {
	def := DefaultOptions()
	if opts.Units == "" {
		opts.Units = def.Units
	}
	if opts.Glyphs == (render.GlyphSet{}) {
		opts.Glyphs = def.Glyphs
	}
	if opts.ForecastHours <= 0 {
		opts.ForecastHours = def.ForecastHours
	}
	if opts.ConditionsHours <= 0 {
		opts.ConditionsHours = def.ConditionsHours
	}
	if opts.RainDecimation <= 0 {
		opts.RainDecimation = def.RainDecimation
	}
	return &Builder{opts: opts}
}

// Build renders the requested report, prefixed with the location name.
func (b *Builder) Build(req domain.ReportRequest) (domain.Report, error) {
	line, err := b.Line(req.Kind, req.Forecast)
	if err != nil {
		return domain.Report{}, err
	}
	if req.Location.Name != "" {
		line = req.Location.Name + " " + line
	}

	return domain.Report{
		ID:         req.ID,
		Kind:       req.Kind,
		Location:   req.Location,
		Line:       line,
		Plain:      ircfmt.Strip(line),
		Width:      ircfmt.VisibleWidth(line),
		RenderedAt: domain.Now(),
	}, nil
}

// Line renders the body of a report without the location prefix.
func (b *Builder) Line(kind domain.ReportKind, f domain.Forecast) (string, error) {
	switch kind {
	case domain.KindRain:
		return b.Rain(f), nil
	case domain.KindIntensity:
		return b.Intensity(f), nil
	case domain.KindTemperature:
		return b.Temperature(f), nil
	case domain.KindWind:
		return b.Wind(f), nil
	case domain.KindConditions:
		return b.Conditions(f), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownKind, kind)
	}
}

// Rain renders the next hour of precipitation probability between the
// current and next-hour wall clock times.
func (b *Builder) Rain(f domain.Forecast) string {
	return b.minuteCaption("rain probability", f, render.RainProbability)
}

// Intensity renders the next hour of precipitation intensity.
func (b *Builder) Intensity(f domain.Forecast) string {
	return b.minuteCaption("rain intensity", f, render.RainIntensity)
}

func (b *Builder) minuteCaption(caption string, f domain.Forecast, p render.Profile) string {
	now := domain.Now().In(f.TimeLocation())
	str := render.RenderBlock(f.Minutely, p, b.opts.Glyphs, render.NoMinutely)
	return fmt.Sprintf("%s %s|%s|%s", caption, now.Format("15:04"), str, now.Add(time.Hour).Format("15:04"))
}

// Temperature renders the hourly temperature trend with its first, last,
// minimum and maximum readings. Records without a temperature are skipped
// for the captions.
func (b *Builder) Temperature(f domain.Forecast) string {
	series, ok := hourly(f, b.opts.ForecastHours)
	if !ok {
		return "temps: " + render.NoHourly
	}

	temps := series.Values(domain.FieldTemperature)
	first, last, ok := endpoints(temps)
	if !ok {
		return "temps: " + render.NoHourly
	}
	lo, hi, _ := render.Bounds(temps)
	return fmt.Sprintf("temps: now %s |%s| %s this hour tomorrow.  Range: %s - %s",
		b.temp(first, 1),
		render.Series(series, render.Temperature, b.opts.Glyphs),
		b.temp(last, 1),
		b.temp(lo, 1),
		b.temp(hi, 1),
	)
}

// Wind renders hourly wind direction arrows coloured by speed.
func (b *Builder) Wind(f domain.Forecast) string {
	series, ok := hourly(f, b.opts.ForecastHours)
	if !ok {
		return "wind: " + render.NoHourly
	}

	lo, hi, ok := render.Bounds(series.Values(domain.FieldWindSpeed))
	if !ok {
		return "wind: " + render.NoHourly
	}
	return fmt.Sprintf("%dh wind direction |%s| Range: %s - %s",
		len(series),
		render.Wind(series),
		render.FormatSpeed(lo, b.opts.Units),
		render.FormatSpeed(hi, b.opts.Units),
	)
}

// Conditions renders the short-range temperature and wind trends, today's
// chance of sun and a decimated summary of the next hour of rain.
func (b *Builder) Conditions(f domain.Forecast) string {
	var parts []string

	if series, ok := hourly(f, b.opts.ConditionsHours); ok {
		parts = append(parts, b.conditionsTemp(series), b.conditionsWind(series))
	} else {
		parts = append(parts, render.NoHourly)
	}

	if sun, ok := sunChance(f); ok {
		parts = append(parts, sun+"% chance of sun")
	}

	parts = append(parts, fmt.Sprintf("60m rain |%s|", b.rainSummary(f)))
	return strings.Join(parts, " / ")
}

func (b *Builder) conditionsTemp(series domain.Series) string {
	first, last, ok := endpoints(series.Values(domain.FieldTemperature))
	if !ok {
		return "temps: " + render.NoHourly
	}
	return fmt.Sprintf("%s |%s| %s",
		b.temp(first, 2),
		render.Series(series, render.Temperature, b.opts.Glyphs),
		b.temp(last, 2))
}

func (b *Builder) conditionsWind(series domain.Series) string {
	first, last, ok := endpoints(series.Values(domain.FieldWindSpeed))
	if !ok {
		return "wind: " + render.NoHourly
	}
	return fmt.Sprintf("%s |%s| %s",
		render.FormatSpeed(first, b.opts.Units),
		render.Wind(series),
		render.FormatSpeed(last, b.opts.Units))
}

// rainSummary decimates the minute glyphs and their samples together so the
// colour runs are recomputed on the shorter series.
func (b *Builder) rainSummary(f domain.Forecast) string {
	if f.Minutely == nil {
		return render.NoMinutely
	}

	p := render.RainProbability
	series := f.Minutely.Data
	glyphs := render.Glyphs(series.Values(p.Field), p.Scale, b.opts.Glyphs)

	k := b.opts.RainDecimation
	sampled := domain.Series(render.Every[domain.DataPoint](series, k))
	return render.EncodeBands(sampled, p.Field, render.Decimate(glyphs, k), p.Table)
}

func (b *Builder) temp(f float64, places int) string {
	return render.FormatTemperature(render.Round(f, places), b.opts.Units)
}

// endpoints returns the first and last samples that are numbers. ok is false
// when every sample is missing.
func endpoints(values []float64) (first, last float64, ok bool) {
	i := slices.IndexFunc(values, isNumber)
	if i < 0 {
		return 0, 0, false
	}
	j := len(values) - 1
	for math.IsNaN(values[j]) {
		j--
	}
	return values[i], values[j], true
}

func isNumber(v float64) bool { return !math.IsNaN(v) }

// hourly returns the first n hourly points, or false when there are none.
func hourly(f domain.Forecast, n int) (domain.Series, bool) {
	if f.Hourly == nil || len(f.Hourly.Data) == 0 {
		return nil, false
	}
	return f.Hourly.Data.Head(n), true
}

// sunChance renders today's clear-sky percentage coloured by the sun table.
func sunChance(f domain.Forecast) (string, bool) {
	if f.Daily == nil || len(f.Daily.Data) == 0 {
		return "", false
	}
	cover, ok := f.Daily.Data[0].Value(domain.FieldCloudCover)
	if !ok {
		return "", false
	}

	sky := 1 - cover
	color, _ := render.SunTable.BandOf(sky)
	pct := int(render.Round(sky*100, 0))
	return ircfmt.Colorize(color, strconv.Itoa(pct)), true
}
