// Package metrics defines the Prometheus collectors exported by the billing
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/shopspring/decimal"
)

// Namespace prefixes every metric name.
const Namespace = "billing"

// Metrics holds the service's collectors. A nil *Metrics is valid and
// records nothing, so components can run without instrumentation in tests.
type Metrics struct {
	RPCRequestsTotal   *prometheus.CounterVec
	RPCRequestDuration *prometheus.HistogramVec

	BillsCreatedTotal   *prometheus.CounterVec
	BilledAmountTotal   *prometheus.CounterVec
	StockRejections     *prometheus.CounterVec
	BillConflictRetries prometheus.Counter

	PaymentsAppliedTotal prometheus.Counter
	PaymentAmountTotal   prometheus.Counter

	AuthAttemptsTotal *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		RPCRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "rpc_requests_total",
				Help:      "Total number of RPC requests",
			},
			[]string{"procedure", "code"},
		),
		RPCRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: Namespace,
				Name:      "rpc_request_duration_seconds",
				Help:      "Duration of RPC requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"procedure", "code"},
		),
		BillsCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "bills_created_total",
				Help:      "Total number of bills issued",
			},
			[]string{"customer_type"},
		),
		BilledAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "billed_amount_total",
				Help:      "Sum of bill totals in rupees",
			},
			[]string{"customer_type"},
		),
		StockRejections: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "stock_rejections_total",
				Help:      "Bills rejected for insufficient stock, by product",
			},
			[]string{"product_id"},
		),
		BillConflictRetries: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "bill_conflict_retries_total",
				Help:      "Bill transactions retried after a write conflict",
			},
		),
		PaymentsAppliedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "payments_applied_total",
				Help:      "Total number of customer payments recorded against bills",
			},
		),
		PaymentAmountTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "payment_amount_total",
				Help:      "Sum of customer payments in rupees",
			},
		),
		AuthAttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: Namespace,
				Name:      "auth_attempts_total",
				Help:      "Login attempts by result",
			},
			[]string{"result"},
		),
	}
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.RPCRequestsTotal.WithLabelValues(procedure, code).Inc()
	m.RPCRequestDuration.WithLabelValues(procedure, code).Observe(elapsed.Seconds())
}

// BillCreated records an issued bill and its total.
func (m *Metrics) BillCreated(customerType string, total decimal.Decimal) {
	if m == nil {
		return
	}
	m.BillsCreatedTotal.WithLabelValues(customerType).Inc()
	m.BilledAmountTotal.WithLabelValues(customerType).Add(total.InexactFloat64())
}

// StockRejected records a bill refused because productID ran short.
func (m *Metrics) StockRejected(productID string) {
	if m == nil {
		return
	}
	m.StockRejections.WithLabelValues(productID).Inc()
}

// ConflictRetried records one retry of a bill transaction.
func (m *Metrics) ConflictRetried() {
	if m == nil {
		return
	}
	m.BillConflictRetries.Inc()
}

// PaymentApplied records a customer payment against a bill.
func (m *Metrics) PaymentApplied(amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.PaymentsAppliedTotal.Inc()
	m.PaymentAmountTotal.Add(amount.InexactFloat64())
}

// AuthAttempt records a login attempt. result is "success" or "failure".
func (m *Metrics) AuthAttempt(result string) {
	if m == nil {
		return
	}
	m.AuthAttemptsTotal.WithLabelValues(result).Inc()
}
