// Package testutil holds helpers shared by the package tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
)

// LogRecorder is a slog.Handler keeping every record it receives, so tests
// can assert on emitted diagnostics without touching process-wide output.
type LogRecorder struct {
	mu      sync.Mutex
	records []slog.Record
}

func NewLogger() (*slog.Logger, *LogRecorder) {
	recorder := &LogRecorder{}
	return slog.New(recorder), recorder
}

// Enabled implements slog.Handler.
func (r *LogRecorder) Enabled(context.Context, slog.Level) bool {
	return true
}

// Handle implements slog.Handler.
func (r *LogRecorder) Handle(_ context.Context, record slog.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.records = append(r.records, record.Clone())

	return nil
}

// WithAttrs implements slog.Handler.
func (r *LogRecorder) WithAttrs([]slog.Attr) slog.Handler {
	return r
}

// WithGroup implements slog.Handler.
func (r *LogRecorder) WithGroup(string) slog.Handler {
	return r
}

// Records returns the recorded entries with the given level.
func (r *LogRecorder) Records(level slog.Level) []slog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]slog.Record, 0)
	for _, record := range r.records {
		if record.Level == level {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func (r *LogRecorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Attr returns the value of the attribute named key in record.
func Attr(record slog.Record, key string) (slog.Value, bool) {
	var (
		value slog.Value
		found bool
	)

	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key == key {
			value = attr.Value
			found = true
			return false
		}
		return true
	})

	return value, found
}

var _ slog.Handler = &LogRecorder{}
