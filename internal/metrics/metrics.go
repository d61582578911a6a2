package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de un tier durante una resolución.
const (
	OutcomeHit     = "hit"
	OutcomeEmpty   = "empty"
	OutcomeError   = "error"
	OutcomeSkipped = "skipped"
	OutcomeAborted = "aborted"
)

var (
	// TierOutcomes cuenta el resultado de cada tier consultado (o saltado) por entidad.
	TierOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_tier_outcomes_total",
			Help: "Resultados de los tiers del catálogo por entidad, tier y resultado.",
		},
		[]string{"entity", "tier", "outcome"},
	)

	// TierDuration mide la latencia de cada llamada a un tier.
	TierDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_tier_duration_seconds",
			Help:    "Duración de las consultas a cada tier del catálogo en segundos.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		},
		[]string{"entity", "tier"},
	)

	// BackendRequests cuenta las peticiones salientes al backend genérico.
	BackendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_backend_requests_total",
			Help: "Peticiones al backend por método, ruta y código de estado.",
		},
		[]string{"method", "path", "status"},
	)
)

// IncTierOutcome incrementa el contador de resultados de un tier.
func IncTierOutcome(entity, tier, outcome string) {
	TierOutcomes.WithLabelValues(entity, tier, outcome).Inc()
}

// ObserveTier registra el tiempo transcurrido desde start para el tier.
func ObserveTier(entity, tier string, start time.Time) {
	TierDuration.WithLabelValues(entity, tier).Observe(time.Since(start).Seconds())
}

// IncBackendRequest incrementa el contador de peticiones al backend.
func IncBackendRequest(method, path, status string) {
	BackendRequests.WithLabelValues(method, path, status).Inc()
}
