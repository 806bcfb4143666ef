package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels of DistanceQueries.
const (
	OutcomeOK           = "ok"
	OutcomeSamePlace    = "same_place"
	OutcomeUnknownPlace = "unknown_place"
)

type Metrics struct {
	DistanceQueries *prometheus.CounterVec
	CacheHits       prometheus.Counter
	PlacesLoaded    prometheus.Gauge
	PlacesProcessed *prometheus.CounterVec
	APIErrors       prometheus.Counter
	RequestSeconds  *prometheus.HistogramVec
	ActiveWorkers   prometheus.Gauge
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		DistanceQueries: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mesafe_distance_queries_total",
			Help: "Total number of distance queries by outcome.",
		}, []string{"outcome"}),
		CacheHits: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "mesafe_distance_cache_hits_total",
			Help: "Total number of distance queries answered from the cache.",
		}),
		PlacesLoaded: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "mesafe_places_loaded",
			Help: "Number of places in the active reference table.",
		}),
		PlacesProcessed: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "mesafe_geocoding_places_processed_total",
			Help: "Total number of places processed by the geocoding workers.",
		}, []string{"status"}),
		APIErrors: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "mesafe_geocoding_provider_api_errors_total",
			Help: "Total number of errors received from the geocoding provider API.",
		}),
		RequestSeconds: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "mesafe_geocoding_provider_request_duration_seconds",
			Help:    "Duration of requests to the geocoding provider API.",
			Buckets: prometheus.DefBuckets,
		}, []string{"provider"}),
		ActiveWorkers: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "mesafe_geocoding_active_workers",
			Help: "Current number of active workers geocoding places.",
		}),
	}
}
