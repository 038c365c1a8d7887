// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"freshcart/internal/core/domain/model/order"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	DispatchesTotal        prometheus.Counter
	DeliveriesTotal        prometheus.Counter
	OTPRejectionsTotal     prometheus.Counter
	HandshakeFailuresTotal *prometheus.CounterVec
	StatusChangesTotal     *prometheus.CounterVec
	OrdersByBucket         *prometheus.GaugeVec
	HTTPRequestDuration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DispatchesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshcart_dispatches_total",
			Help: "Orders handed to a delivery partner",
		}),
		DeliveriesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshcart_deliveries_completed_total",
			Help: "Deliveries confirmed with a matching customer OTP",
		}),
		OTPRejectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "freshcart_otp_rejections_total",
			Help: "Delivery completions rejected because the submitted OTP did not match",
		}),
		HandshakeFailuresTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "freshcart_handshake_failures_total",
			Help: "Failed dispatch and completion attempts (by operation and error kind)",
		}, []string{"operation", "kind"}),
		StatusChangesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "freshcart_status_changes_total",
			Help: "Accepted order status transitions (by target status)",
		}, []string{"status"}),
		OrdersByBucket: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "freshcart_orders_by_bucket",
			Help: "Stored orders per display bucket, refreshed by the bucket metrics job",
		}, []string{"bucket"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "freshcart_http_request_duration_seconds",
			Help:    "HTTP request latency (by method, route and status code)",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "code"}),
	}

	reg.MustRegister(
		m.DispatchesTotal,
		m.DeliveriesTotal,
		m.OTPRejectionsTotal,
		m.HandshakeFailuresTotal,
		m.StatusChangesTotal,
		m.OrdersByBucket,
		m.HTTPRequestDuration,
	)

	return m
}

func (m *Metrics) ObserveDispatch() {
	m.DispatchesTotal.Inc()
	m.StatusChangesTotal.WithLabelValues(order.OutForDelivery.String()).Inc()
}

func (m *Metrics) ObserveDelivery() {
	m.DeliveriesTotal.Inc()
	m.StatusChangesTotal.WithLabelValues(order.Delivered.String()).Inc()
}

func (m *Metrics) ObserveStatusChange(to order.Status) {
	m.StatusChangesTotal.WithLabelValues(to.String()).Inc()
}

func (m *Metrics) ObserveOTPRejection() {
	m.OTPRejectionsTotal.Inc()
}

// ObserveHandshakeFailure counts a failed dispatch or completion. kind is one
// of the errs.Kind codes.
func (m *Metrics) ObserveHandshakeFailure(operation, kind string) {
	m.HandshakeFailuresTotal.WithLabelValues(operation, kind).Inc()
}

func (m *Metrics) SetBucketCount(bucket order.Bucket, count int64) {
	m.OrdersByBucket.WithLabelValues(bucket.String()).Set(float64(count))
}

func (m *Metrics) ObserveHTTPRequest(method, route string, code int, elapsed time.Duration) {
	m.HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(code)).Observe(elapsed.Seconds())
}
