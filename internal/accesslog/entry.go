package accesslog

import (
	"context"
	"fmt"
	"time"
)

type contextKey string

const entryKey contextKey = "access_log_entry"

// Entry is a single access log record.
type Entry struct {
	Method     string
	Path       string
	StatusCode int
	ElapsedMs  int64

	start time.Time
}

// Start begins an entry for a request received at now.
func Start(method, path string, now time.Time) *Entry {
	return &Entry{Method: method, Path: path, start: now}
}

// Complete records the response status and the time elapsed since Start.
func (e *Entry) Complete(statusCode int, now time.Time) {
	e.StatusCode = statusCode
	e.ElapsedMs = now.Sub(e.start).Milliseconds()
}

// String formats the entry as a log line, newline included.
func (e Entry) String() string {
	return fmt.Sprintf("%s\t%s\t%d\t%d ms\n", e.Method, e.Path, e.StatusCode, e.ElapsedMs)
}

// ToContext stores the in-flight entry in ctx.
func ToContext(ctx context.Context, e *Entry) context.Context {
	return context.WithValue(ctx, entryKey, e)
}

// FromContext returns the in-flight entry, or nil outside a logged request.
func FromContext(ctx context.Context) *Entry {
	if e, ok := ctx.Value(entryKey).(*Entry); ok {
		return e
	}
	return nil
}
