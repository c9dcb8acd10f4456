package domain

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrUnknownKind is returned for report kinds the renderer does not support.
var ErrUnknownKind = errors.New("unknown report kind")

// ReportKind selects which report line is rendered.
type ReportKind string

const (
	KindRain        ReportKind = "rain"
	KindIntensity   ReportKind = "intensity"
	KindTemperature ReportKind = "temperature"
	KindWind        ReportKind = "wind"
	KindConditions  ReportKind = "conditions"
)

// ParseReportKind validates s. An empty string selects KindConditions.
func ParseReportKind(s string) (ReportKind, error) {
	switch k := ReportKind(s); k {
	case "":
		return KindConditions, nil
	case KindRain, KindIntensity, KindTemperature, KindWind, KindConditions:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// RawEvent represents an unprocessed message from the source topic.
type RawEvent struct {
	Key       []byte
	Value     []byte
	Headers   map[string]string
	Topic     string
	Partition int
	Offset    int64
	Timestamp time.Time
	Commit    func(ctx context.Context) error
}

// ReportRequest asks for one report line rendered from a forecast.
type ReportRequest struct {
	ID       string     `json:"id"`
	Kind     ReportKind `json:"kind"`
	Location Location   `json:"location"`
	Forecast Forecast   `json:"forecast"`
}

// Report is a rendered line ready for a chat channel.
type Report struct {
	ID         string     `json:"id"`
	Kind       ReportKind `json:"kind"`
	Location   Location   `json:"location"`
	Line       string     `json:"line"`  // control-coded
	Plain      string     `json:"plain"` // control codes stripped
	Width      int        `json:"width"` // terminal cells of Plain
	RenderedAt time.Time  `json:"rendered_at"`
}

// OutputEvent is the serialized form destined for the sink topic.
type OutputEvent struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}
