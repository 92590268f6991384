// Package metrics provides Prometheus metrics for auth-service.
//
// It follows the Prometheus naming convention with the "auth_service"
// namespace and tracks HTTP traffic plus the authentication flow:
// logins, login failures, issued tokens, and token rejections.
package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "auth_service"

// Metrics holds all application metrics for auth-service.
type Metrics struct {
	// HTTPRequestsTotal counts HTTP requests by method, route, and status class.
	HTTPRequestsTotal *prometheus.CounterVec
	// HTTPRequestDuration observes request latency by method and route.
	HTTPRequestDuration *prometheus.HistogramVec

	// LoginsTotal counts successful logins.
	LoginsTotal prometheus.Counter
	// LoginFailuresTotal counts failed logins by rejection reason.
	LoginFailuresTotal *prometheus.CounterVec
	// TokensIssuedTotal counts issued access tokens.
	TokensIssuedTotal prometheus.Counter
	// TokenRejectionsTotal counts rejected bearer tokens by reason.
	TokenRejectionsTotal *prometheus.CounterVec
}

// New creates and registers all metrics with the default registerer.
// Call once during startup.
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates metrics with a custom registry. Useful for
// tests to avoid registration conflicts.
func NewWithRegistry(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		HTTPRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "endpoint"},
		),
		LoginsTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "logins_total",
				Help:      "Total number of successful logins",
			},
		),
		LoginFailuresTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "login_failures_total",
				Help:      "Total number of failed logins by reason",
			},
			[]string{"reason"},
		),
		TokensIssuedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "tokens_issued_total",
				Help:      "Total number of issued access tokens",
			},
		),
		TokenRejectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "token_rejections_total",
				Help:      "Total number of rejected bearer tokens by reason",
			},
			[]string{"reason"},
		),
	}
}

// NewForTest creates metrics with an isolated registry for testing
func NewForTest() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

// RecordLogin increments the successful login counter
func (m *Metrics) RecordLogin() {
	m.LoginsTotal.Inc()
}

// RecordLoginFailure increments the login failure counter for a reason
func (m *Metrics) RecordLoginFailure(reason string) {
	m.LoginFailuresTotal.WithLabelValues(reason).Inc()
}

// RecordTokenIssued increments the issued token counter
func (m *Metrics) RecordTokenIssued() {
	m.TokensIssuedTotal.Inc()
}

// RecordTokenRejection increments the token rejection counter for a reason
func (m *Metrics) RecordTokenRejection(reason string) {
	m.TokenRejectionsTotal.WithLabelValues(reason).Inc()
}

// RecordHTTPRequest records request count and latency for one request
func (m *Metrics) RecordHTTPRequest(method, endpoint string, statusCode int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, endpoint, categorizeStatus(statusCode)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// categorizeStatus converts a status code to its class (2xx, 3xx, 4xx, 5xx)
func categorizeStatus(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// metric/health endpoints are excluded from HTTP metrics
var skipPaths = map[string]bool{
	"/metrics":      true,
	"/health":       true,
	"/health/live":  true,
	"/health/ready": true,
}

// HTTPMiddleware returns a gin middleware recording HTTP metrics using
// the route pattern rather than the raw path.
func HTTPMiddleware(m *Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if skipPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, endpoint, c.Writer.Status(), time.Since(start))
	}
}
