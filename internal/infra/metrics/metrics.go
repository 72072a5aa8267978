// Package metrics exposes Prometheus counters for the account and donation flows.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bloodlink/internal/domain/service"
)

var _ service.MetricsRecorder = (*Collector)(nil)

// Collector is the Prometheus-backed MetricsRecorder.
type Collector struct {
	registrations      *prometheus.CounterVec
	logins             *prometheus.CounterVec
	tokensRejected     *prometheus.CounterVec
	donationsScheduled prometheus.Counter
	donationEvents     *prometheus.CounterVec
	httpRequests       *prometheus.CounterVec
	httpLatency        *prometheus.HistogramVec
}

// NewCollector creates a Collector and registers its metrics on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		registrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_registrations_total",
			Help: "Registration attempts by outcome.",
		}, []string{"outcome"}),
		logins: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_logins_total",
			Help: "Login attempts by outcome.",
		}, []string{"outcome"}),
		tokensRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_tokens_rejected_total",
			Help: "Bearer tokens rejected by the auth middleware, by reason.",
		}, []string{"reason"}),
		donationsScheduled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "bloodlink_donations_scheduled_total",
			Help: "Donations scheduled.",
		}),
		donationEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_donation_events_processed_total",
			Help: "Donation events handled by the worker, by outcome.",
		}, []string{"outcome"}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodlink_http_requests_total",
			Help: "HTTP responses by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bloodlink_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.registrations,
		c.logins,
		c.tokensRejected,
		c.donationsScheduled,
		c.donationEvents,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

func (c *Collector) RecordRegistration(outcome string) {
	c.registrations.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordLogin(outcome string) {
	c.logins.WithLabelValues(outcome).Inc()
}

func (c *Collector) RecordTokenRejected(reason string) {
	c.tokensRejected.WithLabelValues(reason).Inc()
}

func (c *Collector) RecordDonationScheduled() {
	c.donationsScheduled.Inc()
}

// RecordDonationEvent counts one pushed event handled by the worker.
func (c *Collector) RecordDonationEvent(outcome string) {
	c.donationEvents.WithLabelValues(outcome).Inc()
}

// ObserveHTTPRequest records one served request.
func (c *Collector) ObserveHTTPRequest(method, route string, statusCode int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// Handler returns the scrape handler for gatherer.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry returns a registry preloaded with the Go and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}
