package httpd

import (
	"bytes"
	"strconv"
	"sync/atomic"
	"time"
)

// Metrics is the shared counter record mutated by every connection handler.
// All cells are independent atomics; no cross-counter consistency is
// promised, the values are observability-only.
type Metrics struct {
	started time.Time

	requests    atomic.Int64
	errors      atomic.Int64
	active      atomic.Int64
	durationMus atomic.Int64
}

func NewMetrics() *Metrics {
	return &Metrics{started: time.Now()}
}

func (m *Metrics) ConnOpened() { m.active.Add(1) }
func (m *Metrics) ConnClosed() { m.active.Add(-1) }

func (m *Metrics) RequestSeen() { m.requests.Add(1) }
func (m *Metrics) ErrorSeen()   { m.errors.Add(1) }

func (m *Metrics) ObserveDuration(d time.Duration) {
	m.durationMus.Add(d.Microseconds())
}

func (m *Metrics) ActiveConnections() int64 {
	return m.active.Load()
}

// MetricsSnapshot is a point-in-time read of all counters.
type MetricsSnapshot struct {
	Requests          int64
	Errors            int64
	ActiveConnections int64
	DurationMicros    int64
	Uptime            time.Duration
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:          m.requests.Load(),
		Errors:            m.errors.Load(),
		ActiveConnections: m.active.Load(),
		DurationMicros:    m.durationMus.Load(),
		Uptime:            time.Since(m.started),
	}
}

// AvgResponseTimeMillis derives the mean handling time per counted request,
// zero when nothing has been counted yet.
func (s MetricsSnapshot) AvgResponseTimeMillis() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.DurationMicros) / float64(s.Requests) / 1000
}

// ErrorRatePercent derives the failed share of counted requests, zero when
// nothing has been counted yet.
func (s MetricsSnapshot) ErrorRatePercent() float64 {
	if s.Requests == 0 {
		return 0
	}
	return float64(s.Errors) / float64(s.Requests) * 100
}

// Exposition renders the counters in a line-oriented plain-text format,
// each value preceded by descriptive comment lines.
func (m *Metrics) Exposition() []byte {
	snap := m.Snapshot()

	var buf bytes.Buffer
	writeMetric(&buf, "httpd_requests_total",
		"Total number of requests parsed.", "counter", snap.Requests)
	writeMetric(&buf, "httpd_errors_total",
		"Total number of failed request cycles.", "counter", snap.Errors)
	writeMetric(&buf, "httpd_active_connections",
		"Connections currently being handled.", "gauge", snap.ActiveConnections)
	writeMetric(&buf, "httpd_response_time_micros_total",
		"Cumulative request handling time in microseconds.", "counter", snap.DurationMicros)
	writeMetric(&buf, "httpd_uptime_seconds",
		"Seconds since the server process started.", "gauge", int64(snap.Uptime.Seconds()))
	return buf.Bytes()
}

func writeMetric(buf *bytes.Buffer, name, help, kind string, value int64) {
	buf.WriteString("# HELP " + name + " " + help + "\n")
	buf.WriteString("# TYPE " + name + " " + kind + "\n")
	buf.WriteString(name + " " + strconv.FormatInt(value, 10) + "\n")
}
