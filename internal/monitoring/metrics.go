// Package monitoring exposes marketplace metrics over prometheus.
package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors for the marketplace.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	OrdersPlaced prometheus.Counter
	OrderValue   prometheus.Counter
	OTPsSent     prometheus.Counter
}

// New creates and registers the collectors on the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "lucito_http_requests_total",
			Help: "HTTP requests served, by method, route and status.",
		}, []string{"method", "route", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lucito_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		OrdersPlaced: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lucito_orders_placed_total",
			Help: "Orders successfully placed.",
		}),
		OrderValue: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lucito_order_value_total",
			Help: "Cumulative value of placed orders.",
		}),
		OTPsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lucito_otps_sent_total",
			Help: "One-time codes handed to the SMS collaborator.",
		}),
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.OrdersPlaced,
		m.OrderValue,
		m.OTPsSent,
	)
	return m
}

// Middleware records request count and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RequestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}

// OrderPlaced records a successfully placed order and its value.
func (m *Metrics) OrderPlaced(totalAmount float64) {
	m.OrdersPlaced.Inc()
	m.OrderValue.Add(totalAmount)
}
