// Package metrics exposes Prometheus instrumentation for the store's write
// operations.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// StoreMetrics holds counters and histograms for checkout and repricing.
type StoreMetrics struct {
	OrdersPlaced    *prometheus.CounterVec
	CheckoutLatency prometheus.Histogram
	PricesUpdated   prometheus.Counter
}

// NewStoreMetrics registers the store metric set on the default registry.
func NewStoreMetrics() *StoreMetrics {
	return NewStoreMetricsWith(prometheus.DefaultRegisterer)
}

// NewStoreMetricsWith registers the store metric set on reg. Tests pass a
// private registry so repeated setups don't collide.
func NewStoreMetricsWith(reg prometheus.Registerer) *StoreMetrics {
	ordersPlaced := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sparepart",
		Subsystem: "store",
		Name:      "orders_placed_total",
		Help:      "Checkout attempts partitioned by outcome.",
	}, []string{"outcome"})

	checkoutLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "sparepart",
		Subsystem: "store",
		Name:      "checkout_duration_seconds",
		Help:      "Time spent inside the checkout transaction.",
		Buckets:   prometheus.DefBuckets,
	})

	pricesUpdated := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "sparepart",
		Subsystem: "store",
		Name:      "bulk_prices_updated_total",
		Help:      "Product rows repriced by bulk updates.",
	})

	reg.MustRegister(ordersPlaced, checkoutLatency, pricesUpdated)

	return &StoreMetrics{
		OrdersPlaced:    ordersPlaced,
		CheckoutLatency: checkoutLatency,
		PricesUpdated:   pricesUpdated,
	}
}

// Handler returns the HTTP handler serving the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
