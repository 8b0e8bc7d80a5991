package monitoring

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/officegate/officegate/internal/office"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tool metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// Library metrics
	DocumentsTotal *prometheus.GaugeVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a metrics collector registered on the default registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "officegate_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "officegate_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"method", "path"},
		),

		ToolCalls: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "officegate_tool_calls_total",
				Help: "Total number of tool invocations",
			},
			[]string{"service", "tool", "outcome"},
		),
		ToolDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "officegate_tool_duration_seconds",
				Help:    "Tool invocation duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
			},
			[]string{"service", "tool"},
		),
		ToolErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "officegate_tool_errors_total",
				Help: "Total number of tool failures by error kind",
			},
			[]string{"service", "tool", "kind"},
		),

		DocumentsTotal: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "officegate_documents",
				Help: "Number of documents in the library by format",
			},
			[]string{"format"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "officegate_uptime_seconds",
				Help: "Gateway uptime in seconds",
			},
		),
	}

	go m.updateUptime()

	return m
}

func (m *Metrics) updateUptime() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		m.Uptime.Set(time.Since(m.startTime).Seconds())
	}
}

// RecordHTTPRequest records one HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordToolCall records one tool invocation.
func (m *Metrics) RecordToolCall(service, tool, outcome string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(service, tool, outcome).Inc()
	m.ToolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
}

// RecordToolError records a failed tool invocation with its error kind.
func (m *Metrics) RecordToolError(service, tool, kind string) {
	m.ToolErrors.WithLabelValues(service, tool, kind).Inc()
}

// SetDocuments sets the library document count for one format.
func (m *Metrics) SetDocuments(format string, count int) {
	m.DocumentsTotal.WithLabelValues(format).Set(float64(count))
}

// WatchLibrary keeps the per-format document gauges current by rescanning
// the library directory on the given interval. The goroutine runs for the
// life of the process, like the uptime updater.
func (m *Metrics) WatchLibrary(dir string, interval time.Duration) {
	m.scanLibrary(dir)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			m.scanLibrary(dir)
		}
	}()
}

func (m *Metrics) scanLibrary(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	counts := make(map[string]int, 3)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, f := range []office.Format{office.Word, office.Spreadsheet, office.Presentation} {
			if ext == f.Ext() {
				counts[f.String()]++
			}
		}
	}
	for _, f := range []office.Format{office.Word, office.Spreadsheet, office.Presentation} {
		m.SetDocuments(f.String(), counts[f.String()])
	}
}
