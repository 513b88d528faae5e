package webservice

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pathRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "navserver_path_requests_total",
		Help: "Route queries by outcome.",
	}, []string{"outcome"})

	pathDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "navserver_path_duration_seconds",
		Help:    "Wall time spent answering route queries.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14),
	})

	pathVisited = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "navserver_path_visited_cells",
		Help:    "Cells settled per route query.",
		Buckets: prometheus.ExponentialBuckets(16, 4, 10),
	})

	cacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navserver_cache_hits_total",
		Help: "Route queries answered from the cache.",
	})

	cacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "navserver_cache_misses_total",
		Help: "Route queries that missed the cache.",
	})
)

const (
	outcomeFound    = "found"
	outcomeAbsent   = "absent"
	outcomeCached   = "cached"
	outcomeRejected = "rejected"
)
