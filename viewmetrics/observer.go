// SPDX-License-Identifier: MIT

// Package viewmetrics exports iteration strategy decisions as prometheus
// metrics. An *Observer plugs into view.WithObserver.
package viewmetrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/ndview/view"
)

// Observer counts BuildIterable decisions. Safe for concurrent use.
type Observer struct {
	builds   *prometheus.CounterVec
	elements *prometheus.CounterVec
	layers   prometheus.Histogram
	residual prometheus.Histogram
}

var _ view.Observer = (*Observer)(nil)

// New registers the observer's collectors on reg. A nil reg leaves them
// unregistered. Like promauto, New panics if the names are already taken.
func New(reg prometheus.Registerer) *Observer {
	f := promauto.With(reg)

	return &Observer{
		builds: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ndview_iterable_builds_total",
			Help: "Iterable intervals built, by chosen strategy and flatness",
		}, []string{"strategy", "flat"}),

		elements: f.NewCounterVec(prometheus.CounterOpts{
			Name: "ndview_iterable_elements_total",
			Help: "Elements covered by built iterable intervals, by strategy",
		}, []string{"strategy"}),

		layers: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ndview_chain_layers",
			Help:    "Transform layers walked per chain",
			Buckets: []float64{0, 1, 2, 4, 8, 16, 32},
		}),

		residual: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "ndview_chain_residual_transforms",
			Help:    "Transforms left after merging, per chain",
			Buckets: []float64{0, 1, 2, 3, 4, 8},
		}),
	}
}

// ObserveBuild implements view.Observer.
func (o *Observer) ObserveBuild(info view.BuildInfo) {
	s := info.Strategy.String()
	o.builds.WithLabelValues(s, strconv.FormatBool(info.Flat)).Inc()
	o.elements.WithLabelValues(s).Add(float64(info.Elements))
	o.layers.Observe(float64(info.Layers))
	o.residual.Observe(float64(info.Residual))
}
