package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CartAddsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mystore_cart_adds_total",
		Help: "Total add-to-cart mutations",
	})

	CartRemovesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mystore_cart_removes_total",
		Help: "Total remove-from-cart mutations",
	})

	WishlistAddsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mystore_wishlist_adds_total",
		Help: "Total add-to-wishlist mutations",
	})

	WishlistRemovesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mystore_wishlist_removes_total",
		Help: "Total remove-from-wishlist mutations",
	})

	SessionLoginsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mystore_session_logins_total",
		Help: "Total mock logins",
	})

	DataLayerPublishedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mystore_datalayer_published_total",
		Help: "Total records appended to the dataLayer queue",
	})

	DataLayerQueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mystore_datalayer_queue_depth",
		Help: "Records currently waiting in the dataLayer queue",
	})

	DataLayerForwardedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "mystore_datalayer_forwarded_total",
		Help: "Records shipped to the analytics pipeline",
	})
)

func Init() {
	prometheus.MustRegister(
		CartAddsTotal,
		CartRemovesTotal,
		WishlistAddsTotal,
		WishlistRemovesTotal,
		SessionLoginsTotal,
		DataLayerPublishedTotal,
		DataLayerQueueDepth,
		DataLayerForwardedTotal,
	)
}
