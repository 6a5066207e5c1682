// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package metric

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the simulation counters and score distributions. A nil
// *Metrics is valid and records nothing, so engines can run unmetered.
type Metrics struct {
	registry *prometheus.Registry

	AuctionsRun       prometheus.Counter
	DaysSimulated     prometheus.Counter
	AuditsPerformed   prometheus.Counter
	ValidationsScored prometheus.Counter
	BacklinksAdded    prometheus.Counter

	AuditScore           prometheus.Histogram
	ValidationPercentage prometheus.Histogram
	DayCost              prometheus.Histogram
}

// New creates a metrics instance backed by its own registry.
func New() (*Metrics, error) {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		AuctionsRun: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "serplab_auctions_run_total",
			Help: "Total number of keyword auctions executed",
		}),
		DaysSimulated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "serplab_days_simulated_total",
			Help: "Total number of campaign days simulated",
		}),
		AuditsPerformed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "serplab_audits_performed_total",
			Help: "Total number of page audits performed",
		}),
		ValidationsScored: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "serplab_validations_scored_total",
			Help: "Total number of code submissions scored",
		}),
		BacklinksAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "serplab_backlinks_added_total",
			Help: "Total number of backlinks registered",
		}),
		AuditScore: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "serplab_audit_score",
			Help:    "Distribution of on-page audit scores",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		ValidationPercentage: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "serplab_validation_percentage",
			Help:    "Distribution of validation fix percentages",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		}),
		DayCost: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "serplab_day_cost_euros",
			Help:    "Distribution of daily campaign spend",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}

	collectors := []prometheus.Collector{
		m.AuctionsRun, m.DaysSimulated, m.AuditsPerformed,
		m.ValidationsScored, m.BacklinksAdded,
		m.AuditScore, m.ValidationPercentage, m.DayCost,
	}
	for _, c := range collectors {
		if err := registry.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Gatherer returns the prometheus gatherer for metrics export.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	if m == nil || m.registry == nil {
		return prometheus.DefaultGatherer
	}
	return m.registry
}

// Nil-safe recording helpers. Engines call these without checking for an
// unmetered run.

func (m *Metrics) IncAuctions() {
	if m != nil {
		m.AuctionsRun.Inc()
	}
}

func (m *Metrics) IncDays() {
	if m != nil {
		m.DaysSimulated.Inc()
	}
}

func (m *Metrics) IncBacklinks() {
	if m != nil {
		m.BacklinksAdded.Inc()
	}
}

func (m *Metrics) ObserveAudit(score int) {
	if m != nil {
		m.AuditsPerformed.Inc()
		m.AuditScore.Observe(float64(score))
	}
}

func (m *Metrics) ObserveValidation(percentage int) {
	if m != nil {
		m.ValidationsScored.Inc()
		m.ValidationPercentage.Observe(float64(percentage))
	}
}

func (m *Metrics) ObserveDayCost(cost float64) {
	if m != nil {
		m.DayCost.Observe(cost)
	}
}
