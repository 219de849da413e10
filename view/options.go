// SPDX-License-Identifier: MIT

// Package view: functional configuration for BuildIterable.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each option changes observable behavior and is tested.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package view

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultOptimize enables the fast iteration strategies. When false every
	// iterable uses StrategyGeneric, which is how strategy equivalence is checked.
	DefaultOptimize = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicObserverNil = "view: WithObserver: observer must be non-nil"
)

// BuildInfo describes one iteration strategy decision.
type BuildInfo struct {
	Strategy Strategy
	Layers   int   // transform nodes walked
	Residual int   // residual transforms after merging
	Flat     bool  // iteration order is raster order of the interval
	Elements int64 // elements in the interval
}

// Observer is notified of every BuildIterable decision.
// Implementations must be safe for concurrent use.
type Observer interface {
	ObserveBuild(info BuildInfo)
}

type nopObserver struct{}

func (nopObserver) ObserveBuild(BuildInfo) {}

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	optimize bool
	observer Observer
}

// WithOptimization enables (default) or disables the fast strategies.
func WithOptimization(on bool) Option {
	return func(o *Options) { o.optimize = on }
}

// WithObserver reports every strategy decision to obs.
// Panics if obs is nil.
func WithObserver(obs Observer) Option {
	if obs == nil {
		panic(panicObserverNil)
	}

	return func(o *Options) { o.observer = obs }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{optimize: DefaultOptimize, observer: nopObserver{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
