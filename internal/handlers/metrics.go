package handlers

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	rendersTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "news",
		Subsystem: "ssr",
		Name:      "renders_total",
		Help:      "Completed server-side renders by page type and outcome.",
	}, []string{"page_type", "outcome"})

	contentFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "news",
		Subsystem: "content",
		Name:      "fetches_total",
		Help:      "Content store fetches by result.",
	}, []string{"result"})
)
