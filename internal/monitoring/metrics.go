package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Total orders committed successfully",
		},
	)

	orderFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "order_failures_total",
			Help: "Total failed purchase attempts by reason",
		},
		[]string{"reason"},
	)

	stockConflicts = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stock_conflicts_total",
			Help: "Total purchase attempts rejected for insufficient zone stock",
		},
	)

	ticketsSold = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Total tickets across committed orders",
		},
	)

	httpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordOrderCreated counts a committed order and its tickets
func RecordOrderCreated(ticketCount int) {
	ordersCreated.Inc()
	ticketsSold.Add(float64(ticketCount))
}

// RecordOrderFailure counts a failed purchase attempt
func RecordOrderFailure(reason string) {
	orderFailures.WithLabelValues(reason).Inc()
}

// RecordStockConflict counts a purchase rejected on zone capacity
func RecordStockConflict() {
	stockConflicts.Inc()
}

// ObserveRequest records one HTTP request's latency
func ObserveRequest(method, route, status string, duration time.Duration) {
	httpDuration.WithLabelValues(method, route, status).Observe(duration.Seconds())
}
