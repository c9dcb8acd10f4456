package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/forecast-bands-service/internal/domain"
	"github.com/couchcryptid/forecast-bands-service/internal/observability"
	"github.com/couchcryptid/forecast-bands-service/internal/report"
)

// ReportTransformer implements Transformer by decoding a report request,
// rendering its line and serializing the result for the sink topic.
type ReportTransformer struct {
	builder *report.Builder
	logger  *slog.Logger
	metrics *observability.Metrics
}

// NewTransformer creates a ReportTransformer around builder.
func NewTransformer(builder *report.Builder, logger *slog.Logger, metrics *observability.Metrics) *ReportTransformer {
	return &ReportTransformer{
		builder: builder,
		logger:  logger,
		metrics: metrics,
	}
}

func (t *ReportTransformer) Transform(_ context.Context, raw domain.RawEvent) (domain.OutputEvent, error) {
	req, err := domain.ParseRawEvent(raw)
	if err != nil {
		return domain.OutputEvent{}, err
	}

	start := time.Now()
	rep, err := t.builder.Build(req)
	if err != nil {
		return domain.OutputEvent{}, err
	}
	t.metrics.RenderDuration.WithLabelValues(string(rep.Kind)).Observe(time.Since(start).Seconds())
	t.metrics.ReportsRendered.WithLabelValues(string(rep.Kind), "kafka").Inc()
	t.metrics.LineWidth.Observe(float64(rep.Width))

	t.logger.Debug("report rendered",
		"id", rep.ID,
		"kind", rep.Kind,
		"location", rep.Location.Name,
		"width", rep.Width,
	)

	return domain.SerializeReport(rep)
}
