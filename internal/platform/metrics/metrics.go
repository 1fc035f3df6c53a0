package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the application's Prometheus instruments.
type Metrics struct {
	Registry          *prometheus.Registry
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
	PayslipsGenerated *prometheus.CounterVec
	LeaveEntries      *prometheus.CounterVec
	JobRuns           *prometheus.CounterVec
}

// New registers all instruments on a fresh registry together with the Go and
// process collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	m := &Metrics{
		Registry: reg,
		HTTPRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrdesk_http_requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "status"}),
		HTTPDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hrdesk_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		PayslipsGenerated: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrdesk_payslips_generated_total",
			Help: "Payslip snapshots by outcome: created or skipped as already present.",
		}, []string{"outcome"}),
		LeaveEntries: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrdesk_leave_entries_total",
			Help: "Leave entries recorded by source.",
		}, []string{"source"}),
		JobRuns: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "hrdesk_job_runs_total",
			Help: "Background job runs by type and status.",
		}, []string{"job", "status"}),
	}

	m.PayslipsGenerated.WithLabelValues("created")
	m.PayslipsGenerated.WithLabelValues("skipped")

	return m
}

// RecordRequest is nil-safe so handlers can run without metrics.
func (m *Metrics) RecordRequest(method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method).Observe(duration.Seconds())
}

func (m *Metrics) RecordPayslips(created, skipped int) {
	if m == nil {
		return
	}
	m.PayslipsGenerated.WithLabelValues("created").Add(float64(created))
	m.PayslipsGenerated.WithLabelValues("skipped").Add(float64(skipped))
}

func (m *Metrics) RecordLeaveEntry(source string) {
	if m == nil {
		return
	}
	m.LeaveEntries.WithLabelValues(source).Inc()
}

func (m *Metrics) RecordJobRun(job, status string) {
	if m == nil {
		return
	}
	m.JobRuns.WithLabelValues(job, status).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
