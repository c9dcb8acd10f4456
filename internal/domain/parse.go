package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ParseRawEvent deserializes a RawEvent's value into a ReportRequest.
// The request ID falls back to the message key, then to a hash of the payload.
func ParseRawEvent(raw RawEvent) (ReportRequest, error) {
	var req ReportRequest
	if err := json.Unmarshal(raw.Value, &req); err != nil {
		return ReportRequest{}, fmt.Errorf("parse raw event: %w", err)
	}

	kind, err := ParseReportKind(string(req.Kind))
	if err != nil {
		return ReportRequest{}, fmt.Errorf("parse raw event: %w", err)
	}
	req.Kind = kind
	req.Location.Name = strings.TrimSpace(req.Location.Name)

	if req.ID == "" {
		req.ID = string(raw.Key)
	}
	if req.ID == "" {
		req.ID = generateID(req.Kind, raw.Value)
	}
	return req, nil
}

// generateID produces a deterministic ID from the request payload so that
// replaying the same message yields the same output key.
func generateID(kind ReportKind, payload []byte) string {
	hash := sha256.Sum256(payload)
	return string(kind) + "-" + hex.EncodeToString(hash[:8])
}

// SerializeReport marshals a Report into an OutputEvent keyed by request ID.
func SerializeReport(report Report) (OutputEvent, error) {
	data, err := json.Marshal(report)
	if err != nil {
		return OutputEvent{}, fmt.Errorf("serialize report: %w", err)
	}
	return OutputEvent{
		Key:   []byte(report.ID),
		Value: data,
		Headers: map[string]string{
			"report_kind": string(report.Kind),
			"rendered_at": report.RenderedAt.Format(time.RFC3339),
		},
	}, nil
}
