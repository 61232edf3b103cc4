package telemetry

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"sort"
	"strconv"
	"strings"
	"sync"
)

const (
	// ContentType is the media type of Render output.
	ContentType = "text/plain; version=0.0.4; charset=utf-8"

	// UnknownRoute labels requests that matched no registered route.
	UnknownRoute = "unknown_route"

	durationFamily = "http_request_duration_seconds"
	requestsFamily = "http_requests_total"
)

// Key identifies one series. Route is the route template, never the raw path,
// so path parameters cannot grow the number of series without bound.
type Key struct {
	Method     string
	Route      string
	StatusCode int
}

// Bucket holds the accumulated values for one Key.
// DurationCount always equals RequestCount; both are kept so each family reads its own field.
type Bucket struct {
	RequestCount  uint64
	DurationSum   float64
	DurationCount uint64
}

// Aggregator accumulates per-route request counts and latency sums in memory.
// Buckets are created on first observation and never removed. Safe for concurrent use.
type Aggregator struct {
	mu      sync.Mutex
	buckets map[Key]*Bucket
}

func NewAggregator() *Aggregator {
	return &Aggregator{buckets: make(map[Key]*Bucket)}
}

// Observe records one completed request. It never panics into the caller:
// observation runs beside the request and must not change its outcome.
func (a *Aggregator) Observe(method, route string, statusCode int, durationSeconds float64) {
	defer func() {
		if r := recover(); r != nil {
			slog.Warn("[Telemetry] Dropped observation", "panic", r, "method", method, "route", route)
		}
	}()

	if route == "" {
		route = UnknownRoute
	}
	if math.IsNaN(durationSeconds) || durationSeconds < 0 {
		durationSeconds = 0
	}

	key := Key{Method: method, Route: route, StatusCode: statusCode}

	a.mu.Lock()
	defer a.mu.Unlock()

	b, ok := a.buckets[key]
	if !ok {
		b = &Bucket{}
		a.buckets[key] = b
	}
	b.RequestCount++
	b.DurationSum += durationSeconds
	b.DurationCount++
}

// Snapshot returns a copy of every bucket.
func (a *Aggregator) Snapshot() map[Key]Bucket {
	a.mu.Lock()
	defer a.mu.Unlock()

	out := make(map[Key]Bucket, len(a.buckets))
	for k, b := range a.buckets {
		out[k] = *b
	}
	return out
}

// Render returns the text exposition of all buckets, ordered by method, route, then status code.
func (a *Aggregator) Render() (string, error) {
	var b strings.Builder
	if _, err := a.WriteTo(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteTo writes the exposition to w. A panic while rendering is returned as an error.
func (a *Aggregator) WriteTo(w io.Writer) (n int64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("failed to render metrics: %v", r)
		}
	}()

	snapshot := a.Snapshot()
	keys := make([]Key, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Method != keys[j].Method {
			return keys[i].Method < keys[j].Method
		}
		if keys[i].Route != keys[j].Route {
			return keys[i].Route < keys[j].Route
		}
		return keys[i].StatusCode < keys[j].StatusCode
	})

	cw := &countingWriter{w: w}

	cw.printf("# HELP %s Duration of HTTP requests in seconds\n", durationFamily)
	cw.printf("# TYPE %s summary\n", durationFamily)
	for _, k := range keys {
		labels := formatLabels(k)
		cw.printf("%s_sum{%s} %s\n", durationFamily, labels, strconv.FormatFloat(snapshot[k].DurationSum, 'f', 6, 64))
		cw.printf("%s_count{%s} %d\n", durationFamily, labels, snapshot[k].DurationCount)
	}

	cw.printf("# HELP %s Total number of HTTP requests\n", requestsFamily)
	cw.printf("# TYPE %s counter\n", requestsFamily)
	for _, k := range keys {
		cw.printf("%s{%s} %d\n", requestsFamily, formatLabels(k), snapshot[k].RequestCount)
	}

	return cw.n, cw.err
}

func formatLabels(k Key) string {
	return fmt.Sprintf(`method="%s",route="%s",status_code="%s"`,
		escapeLabelValue(k.Method),
		escapeLabelValue(k.Route),
		escapeLabelValue(strconv.Itoa(k.StatusCode)),
	)
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func escapeLabelValue(v string) string {
	return labelEscaper.Replace(v)
}

// countingWriter stops writing after the first error and remembers it.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (cw *countingWriter) printf(format string, args ...interface{}) {
	if cw.err != nil {
		return
	}
	n, err := fmt.Fprintf(cw.w, format, args...)
	cw.n += int64(n)
	cw.err = err
}
