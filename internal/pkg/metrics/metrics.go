package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FunnelTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siteforge_funnel_transitions_total",
			Help: "Total number of committed funnel step transitions",
		},
		[]string{"event", "to"},
	)

	FunnelRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siteforge_funnel_rejections_total",
			Help: "Total number of rejected funnel events",
		},
		[]string{"event"},
	)

	PaymentOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siteforge_payment_outcomes_total",
			Help: "Total number of recorded payment outcomes",
		},
		[]string{"status"},
	)

	IntakeDeliveries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "siteforge_intake_deliveries_total",
			Help: "Total number of intake relay deliveries by result",
		},
		[]string{"result"},
	)
)

// Handler exposes the default registry in the prometheus text format.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
