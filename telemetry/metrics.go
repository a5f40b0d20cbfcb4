// SPDX-License-Identifier: MIT

package telemetry

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvlap/lap"
)

const namespace = "lap"

// Recorder collects solve metrics.
type Recorder struct {
	solves        *prometheus.CounterVec
	duration      *prometheus.HistogramVec
	augmentations *prometheus.CounterVec
	scanned       *prometheus.CounterVec
	pathLength    prometheus.Histogram
	coreGrowth    *prometheus.CounterVec
	recomputed    prometheus.Counter
}

// NewRecorder registers the solve metrics on reg. A nil reg means
// prometheus.DefaultRegisterer. Registering twice on the same registerer
// reuses the existing collectors.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	r := &Recorder{
		solves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "solves_total",
			Help:      "Completed solves by strategy and status.",
		}, []string{"strategy", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_duration_seconds",
			Help:      "Wall time of one solve.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"strategy"}),
		augmentations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "augmentations_total",
			Help:      "Per-row phases completed.",
		}, []string{"strategy"}),
		scanned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "columns_scanned_total",
			Help:      "Columns scanned by augmenting searches.",
		}, []string{"strategy"}),
		pathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "augmenting_path_length",
			Help:      "Columns re-assigned per augmenting path.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		coreGrowth: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "core_expansions_total",
			Help:      "Sparse core enlargements by reason.",
		}, []string{"reason"}),
		recomputed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "potential_recomputations_total",
			Help:      "Solves that needed a potential recomputation.",
		}),
	}

	var err error
	if r.solves, err = register(reg, r.solves); err != nil {
		return nil, err
	}
	if r.duration, err = register(reg, r.duration); err != nil {
		return nil, err
	}
	if r.augmentations, err = register(reg, r.augmentations); err != nil {
		return nil, err
	}
	if r.scanned, err = register(reg, r.scanned); err != nil {
		return nil, err
	}
	if r.pathLength, err = register(reg, r.pathLength); err != nil {
		return nil, err
	}
	if r.coreGrowth, err = register(reg, r.coreGrowth); err != nil {
		return nil, err
	}
	if r.recomputed, err = register(reg, r.recomputed); err != nil {
		return nil, err
	}

	return r, nil
}

// register adds c to reg, or returns the collector already registered
// under the same descriptor.
func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}
	var are prometheus.AlreadyRegisteredError
	if errors.As(err, &are) {
		if existing, ok := are.ExistingCollector.(C); ok {
			return existing, nil
		}
	}

	return c, fmt.Errorf("telemetry: register: %w", err)
}

// Options returns lap hooks feeding the path-length and core-growth
// metrics. They run alongside any other hooks in the same option list.
func (r *Recorder) Options() []lap.Option {
	return []lap.Option{
		lap.WithOnAugment(func(ev lap.AugmentEvent) {
			r.pathLength.Observe(float64(ev.PathLength))
		}),
		lap.WithOnCoreExpand(func(ev lap.CoreEvent) {
			r.coreGrowth.WithLabelValues(ev.Reason).Inc()
		}),
	}
}

// Observe records the outcome of one solve.
func (r *Recorder) Observe(res lap.Result, elapsed time.Duration) {
	strategy := res.Stats.Strategy.String()
	r.solves.WithLabelValues(strategy, res.Status.String()).Inc()
	r.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
	r.augmentations.WithLabelValues(strategy).Add(float64(res.Stats.Augmentations))
	r.scanned.WithLabelValues(strategy).Add(float64(res.Stats.ColumnsScanned))
	if res.Stats.Recomputed {
		r.recomputed.Inc()
	}
}

// Solve runs lap.Solve with the recorder's hooks and records the outcome.
func (r *Recorder) Solve(strategy lap.Strategy, src lap.CostSource, opts ...lap.Option) (lap.Result, error) {
	start := time.Now()
	res, err := lap.Solve(strategy, src, append(opts[:len(opts):len(opts)], r.Options()...)...)
	r.Observe(res, time.Since(start))

	return res, err
}

// WriteTextfile writes every metric gathered from g to path in the text
// exposition format, for node_exporter's textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("telemetry: write %s: %w", path, err)
	}

	return nil
}
