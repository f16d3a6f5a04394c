package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
)

// NopLogger returns a logger that discards all output.
// Use this in tests to avoid log noise.
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// LogBuffer collects JSON log records written at any level
type LogBuffer struct {
	buf bytes.Buffer
}

// NewLogBuffer returns a buffer and a debug-level logger writing into it
func NewLogBuffer() (*LogBuffer, *slog.Logger) {
	lb := &LogBuffer{}
	logger := slog.New(slog.NewJSONHandler(&lb.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return lb, logger
}

// Records decodes every record written so far
func (lb *LogBuffer) Records() []map[string]any {
	var records []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(lb.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var record map[string]any
		if err := json.Unmarshal([]byte(line), &record); err == nil {
			records = append(records, record)
		}
	}
	return records
}

// Messages returns the msg field of every record, in order
func (lb *LogBuffer) Messages() []string {
	records := lb.Records()
	msgs := make([]string, 0, len(records))
	for _, r := range records {
		if msg, ok := r["msg"].(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}
