// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DocGenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apiforge_doc_generations_total",
		Help: "Documents generated by the filter pipeline, per variant.",
	}, []string{"variant"})

	DocCacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apiforge_doc_cache_hits_total",
		Help: "Document requests served from the rendered-document cache.",
	})

	DocGenerationErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "apiforge_doc_generation_errors_total",
		Help: "Document generation failures (source read or decode errors).",
	})

	ItemWritesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "apiforge_item_writes_total",
		Help: "Item store writes, per operation.",
	}, []string{"op"})
)
