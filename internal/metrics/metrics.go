// Package metrics exposes Prometheus collectors for HTTP traffic and the
// rental workflows.
package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors registered by the service.
type Metrics struct {
	requests         *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	rentalsCreated   prometheus.Counter
	rentalsReturned  prometheus.Counter
	rentalRejections *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),
		rentalsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rentals_created_total",
			Help: "Rentals committed by the rental workflow",
		}),
		rentalsReturned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rentals_returned_total",
			Help: "Rentals closed by the return workflow",
		}),
		rentalRejections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rental_rejections_total",
				Help: "Rental and return requests rejected, by reason",
			},
			[]string{"reason"},
		),
	}
	reg.MustRegister(m.requests, m.requestDuration, m.rentalsCreated, m.rentalsReturned, m.rentalRejections)
	return m
}

// Middleware records request counts and latency. The path label is the
// matched route pattern, not the raw URL.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if fe, ok := err.(*fiber.Error); ok {
			status = fe.Code
		} else if err != nil {
			status = fiber.StatusInternalServerError
		}
		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		m.requests.WithLabelValues(c.Method(), path, statusStr).Inc()
		m.requestDuration.WithLabelValues(c.Method(), path, statusStr).Observe(time.Since(start).Seconds())
		return err
	}
}

// RentalCreated counts a committed rental.
func (m *Metrics) RentalCreated() { m.rentalsCreated.Inc() }

// RentalReturned counts a committed return.
func (m *Metrics) RentalReturned() { m.rentalsReturned.Inc() }

// RentalRejected counts a rejected rental or return request.
func (m *Metrics) RentalRejected(reason string) { m.rentalRejections.WithLabelValues(reason).Inc() }
