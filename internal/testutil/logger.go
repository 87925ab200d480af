// Package testutil provides logging helpers shared by package tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a debug-level logger that prints through t.Log, so
// output shows up only for failing tests or under -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(logFunc(t.Log), &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// NewRecordingLogger returns a logger that keeps every record at or above
// level for later assertions, and mirrors them to t.Log.
func NewRecordingLogger(t testing.TB, level slog.Level) (*slog.Logger, *Records) {
	t.Helper()
	recs := &Records{}
	h := &recordingHandler{
		next:    slog.NewTextHandler(logFunc(t.Log), &slog.HandlerOptions{Level: level}),
		records: recs,
	}
	return slog.New(h), recs
}

type logFunc func(args ...any)

func (f logFunc) Write(p []byte) (int, error) {
	f(string(p))
	return len(p), nil
}

// Records collects slog records emitted through a recording logger.
type Records struct {
	mu   sync.Mutex
	list []slog.Record
}

// All returns a copy of the records seen so far.
func (r *Records) All() []slog.Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]slog.Record(nil), r.list...)
}

// AtLevel returns the messages of records logged at exactly level.
func (r *Records) AtLevel(level slog.Level) []string {
	var msgs []string
	for _, rec := range r.All() {
		if rec.Level == level {
			msgs = append(msgs, rec.Message)
		}
	}
	return msgs
}

// Attr returns the value of the first attribute named key on rec, including
// attributes added with Logger.With.
func Attr(rec slog.Record, key string) (slog.Value, bool) {
	var (
		v     slog.Value
		found bool
	)
	rec.Attrs(func(a slog.Attr) bool {
		if a.Key == key {
			v, found = a.Value, true
			return false
		}
		return true
	})
	return v, found
}

func (r *Records) add(rec slog.Record) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.list = append(r.list, rec)
}

type recordingHandler struct {
	next    slog.Handler
	records *Records
	attrs   []slog.Attr
}

func (h *recordingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *recordingHandler) Handle(ctx context.Context, rec slog.Record) error {
	kept := rec.Clone()
	kept.AddAttrs(h.attrs...)
	h.records.add(kept)
	return h.next.Handle(ctx, rec)
}

func (h *recordingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &recordingHandler{
		next:    h.next.WithAttrs(attrs),
		records: h.records,
		attrs:   append(append([]slog.Attr(nil), h.attrs...), attrs...),
	}
}

func (h *recordingHandler) WithGroup(name string) slog.Handler {
	return &recordingHandler{next: h.next.WithGroup(name), records: h.records, attrs: h.attrs}
}
