// Package metrics exposes prometheus collectors for the food tracking flows.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
)

var (
	FoodsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "frescoguard_foods_created_total",
			Help: "Total number of foods added",
		},
	)
	FoodsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "frescoguard_foods_deleted_total",
			Help: "Total number of foods deleted",
		},
	)
	NotificationsScheduled = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frescoguard_notifications_scheduled_total",
			Help: "Total number of expiry reminders scheduled",
		},
		[]string{"type"},
	)
	NotificationsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frescoguard_notifications_processed_total",
			Help: "Total number of due reminders processed",
		},
		[]string{"result"},
	)
	RecipesGenerated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frescoguard_recipes_generated_total",
			Help: "Total number of generated recipes",
		},
		[]string{"source"},
	)
	OCRScans = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "frescoguard_ocr_scans_total",
			Help: "Total number of label scans",
		},
	)
	Checkouts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "frescoguard_subscription_checkouts_total",
			Help: "Total number of subscription checkouts by plan",
		},
		[]string{"plan"},
	)
)

func init() {
	prometheus.MustRegister(
		FoodsCreated,
		FoodsDeleted,
		NotificationsScheduled,
		NotificationsProcessed,
		RecipesGenerated,
		OCRScans,
		Checkouts,
	)
}

func Handler() http.Handler {
	return promhttp.Handler()
}
