// Command render draws report lines from a forecast document on disk. It uses
// the same report builder as the service, so its output matches what the
// pipeline publishes.
//
// Usage:
//
//	go run ./cmd/render \
//	  -file testdata/forecast.json \
//	  -kind wind \
//	  -location "Portland, OR"
//
// Pass -kind all to render every report kind, -plain to strip colour codes
// and -at to pin the caption clock.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/couchcryptid/forecast-bands-service/internal/domain"
	"github.com/couchcryptid/forecast-bands-service/internal/render"
	"github.com/couchcryptid/forecast-bands-service/internal/report"
	"github.com/jonboulle/clockwork"
)

var allKinds = []domain.ReportKind{
	domain.KindRain,
	domain.KindIntensity,
	domain.KindTemperature,
	domain.KindWind,
	domain.KindConditions,
}

type options struct {
	file     string
	kind     string
	location string
	units    string
	glyphs   string
	at       string
	plain    bool
}

func main() {
	var opts options
	flag.StringVar(&opts.file, "file", "", "path to a forecast JSON document (- for stdin)")
	flag.StringVar(&opts.kind, "kind", "conditions", "report kind: rain, intensity, temperature, wind, conditions or all")
	flag.StringVar(&opts.location, "location", "", "location name prefixed to each line")
	flag.StringVar(&opts.units, "units", "imperial", "unit system: imperial or metric")
	flag.StringVar(&opts.glyphs, "glyphs", "block", "glyph set: plain, block or ozone")
	flag.StringVar(&opts.at, "at", "", "RFC 3339 time used for captions instead of now")
	flag.BoolVar(&opts.plain, "plain", false, "strip colour codes from the output")
	flag.Parse()

	if opts.file == "" {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(opts, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func run(opts options, stdin io.Reader, out io.Writer) error {
	if opts.at != "" {
		at, err := time.Parse(time.RFC3339, opts.at)
		if err != nil {
			return fmt.Errorf("parse -at: %w", err)
		}
		domain.SetClock(clockwork.NewFakeClockAt(at))
		defer domain.SetClock(nil)
	}

	units, err := render.ParseUnits(opts.units)
	if err != nil {
		return err
	}
	glyphs, err := render.ParseGlyphSet(opts.glyphs)
	if err != nil {
		return err
	}

	kinds := allKinds
	if opts.kind != "all" {
		kind, err := domain.ParseReportKind(opts.kind)
		if err != nil {
			return err
		}
		kinds = []domain.ReportKind{kind}
	}

	forecast, err := readForecast(opts.file, stdin)
	if err != nil {
		return err
	}

	builder := report.NewBuilder(report.Options{Units: units, Glyphs: glyphs})
	for _, kind := range kinds {
		rep, err := builder.Build(domain.ReportRequest{
			Kind:     kind,
			Location: domain.Location{Name: opts.location},
			Forecast: forecast,
		})
		if err != nil {
			return err
		}
		line := rep.Line
		if opts.plain {
			line = rep.Plain
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func readForecast(path string, stdin io.Reader) (domain.Forecast, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return domain.Forecast{}, fmt.Errorf("read forecast: %w", err)
	}

	var f domain.Forecast
	if err := json.Unmarshal(data, &f); err != nil {
		return domain.Forecast{}, fmt.Errorf("decode forecast %s: %w", path, err)
	}
	return f, nil
}
