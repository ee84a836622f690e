package testutil

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Record is a captured log entry with its attributes flattened to strings.
// Context is the context the entry was logged with.
type Record struct {
	Level   slog.Level
	Message string
	Attrs   map[string]string
	Context context.Context
}

// Recorder is a slog.Handler that keeps every record in memory so tests can
// assert on diagnostics. All levels are enabled.
type Recorder struct {
	mu      *sync.Mutex
	records *[]Record
	attrs   []slog.Attr
}

// NewRecordingLogger returns a logger backed by a fresh Recorder.
func NewRecordingLogger() (*slog.Logger, *Recorder) {
	rec := &Recorder{mu: &sync.Mutex{}, records: &[]Record{}}
	return slog.New(rec), rec
}

func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *Recorder) Handle(ctx context.Context, record slog.Record) error {
	entry := Record{Level: record.Level, Message: record.Message, Attrs: map[string]string{}, Context: ctx}
	for _, a := range r.attrs {
		entry.Attrs[a.Key] = a.Value.String()
	}
	record.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value.String()
		return true
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = append(*r.records, entry)
	return nil
}

func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	combined := append(append([]slog.Attr{}, r.attrs...), attrs...)
	return &Recorder{mu: r.mu, records: r.records, attrs: combined}
}

// WithGroup is not needed by the code under test; groups are flattened.
func (r *Recorder) WithGroup(string) slog.Handler { return r }

// Records returns a copy of everything captured so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(*r.records))
	copy(out, *r.records)
	return out
}

// Messages returns the messages logged at exactly the given level.
func (r *Recorder) Messages(level slog.Level) []string {
	var out []string
	for _, rec := range r.Records() {
		if rec.Level == level {
			out = append(out, rec.Message)
		}
	}
	return out
}

// Count returns how many records at level contain substr.
func (r *Recorder) Count(level slog.Level, substr string) int {
	n := 0
	for _, msg := range r.Messages(level) {
		if strings.Contains(msg, substr) {
			n++
		}
	}
	return n
}

// Reset drops every captured record.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = nil
}
