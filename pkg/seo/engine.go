// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package seo implements the organic-search side of the simulation: the
// static page audit, the SERP ranking model and the backlink/authority state.
package seo

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/adxyz/serplab/pkg/log"
	"github.com/adxyz/serplab/pkg/metric"
)

const (
	baseRanking  = 100
	maxAuthority = 100

	// Fixed weighting of the ranking model: 60% on-page, 30% backlinks,
	// 10% domain authority. Game-balance constants.
	onPageWeight    = 0.6
	backlinkWeight  = 0.3
	authorityWeight = 0.1
)

// Backlink is one inbound link with its quality and origin.
type Backlink struct {
	ID      uuid.UUID
	Quality float64 // 1-100
	Source  string
	Date    time.Time
}

// RankingEntry is one append-only history point.
type RankingEntry struct {
	Rank      int
	Score     int // on-page score that produced the rank
	Timestamp time.Time
}

// PageData carries the page inputs of the ranking model.
type PageData struct {
	SEOScore int // on-page audit score, 0-100
}

// Competitor is a rival site in the SERP. The current model does not weigh
// competitor strength; the parameter is part of the ranking contract so the
// model can grow into it.
type Competitor struct {
	Name     string
	SEOScore int
}

// RankingEvent shifts the ranking score while active. Positive impact pushes
// the site down, negative pulls it up.
type RankingEvent struct {
	ID            string
	RankingImpact int
}

// Engine owns the organic-search state for one play session.
type Engine struct {
	authority float64
	backlinks []Backlink
	history   []RankingEntry
	log       log.Logger
	metrics   *metric.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m *metric.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine creates an engine at ranking 100 (page 10) with no authority.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{log: log.NoLog}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Authority returns the current domain authority, 0-100.
func (e *Engine) Authority() float64 { return e.authority }

// Backlinks returns the registered backlinks.
func (e *Engine) Backlinks() []Backlink { return e.backlinks }

// History returns the ranking history, oldest first.
func (e *Engine) History() []RankingEntry { return e.history }

// Audit runs the page audit and records the score.
func (e *Engine) Audit(html string) *AuditResult {
	result := AuditPage(html)
	e.metrics.ObserveAudit(result.Score)
	e.log.Debug("page audited",
		"score", result.Score,
		"critical", len(result.Critical),
		"important", len(result.Important),
		"minor", len(result.Minor),
	)
	return result
}

// CalculateRanking computes the SERP position from the on-page score, the
// off-page state and any active events, clamped to [1, 100] (1 is best).
// Each call appends a history entry.
func (e *Engine) CalculateRanking(page PageData, competitors []Competitor, events []RankingEvent) int {
	score := float64(baseRanking)

	onPage := page.SEOScore
	if onPage == 0 {
		onPage = 50
	}
	score -= float64(100-onPage) * onPageWeight

	backlinkScore := math.Min(100, float64(len(e.backlinks))*2)
	score -= backlinkScore * backlinkWeight

	score -= e.authority * authorityWeight

	for _, ev := range events {
		score += float64(ev.RankingImpact)
	}

	rank := int(math.Round(score))
	if rank < 1 {
		rank = 1
	}
	if rank > 100 {
		rank = 100
	}

	e.history = append(e.history, RankingEntry{
		Rank:      rank,
		Score:     onPage,
		Timestamp: time.Now(),
	})

	e.log.Debug("ranking calculated", "rank", rank, "on_page", onPage, "events", len(events))

	return rank
}

// AddBacklink registers an inbound link and raises domain authority by half
// the link quality, capped at 100.
func (e *Engine) AddBacklink(quality float64, source string) Backlink {
	bl := Backlink{
		ID:      uuid.New(),
		Quality: quality,
		Source:  source,
		Date:    time.Now(),
	}
	e.backlinks = append(e.backlinks, bl)
	e.authority = math.Min(maxAuthority, e.authority+quality*0.5)

	e.metrics.IncBacklinks()
	e.log.Info("backlink added", "source", source, "quality", quality, "authority", e.authority)

	return bl
}

// Reset clears the off-page state for a new playthrough.
func (e *Engine) Reset() {
	e.authority = 0
	e.backlinks = nil
	e.history = nil
}
