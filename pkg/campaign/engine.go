// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package campaign implements the paid-search campaign engine: it owns the
// advertiser budget and quality score, runs the per-day keyword auctions and
// keeps the day-by-day history. An Engine is exclusively owned by its caller;
// one simulated day is one atomic SimulateDay call.
package campaign

import (
	"errors"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/adxyz/serplab/pkg/auction"
	"github.com/adxyz/serplab/pkg/keyword"
	"github.com/adxyz/serplab/pkg/log"
	"github.com/adxyz/serplab/pkg/metric"
)

var ErrNoCampaigns = errors.New("no campaigns to simulate")

const (
	initialQualityScore = 5.0
	minQualityScore     = 1.0
	maxQualityScore     = 10.0

	// Each conversion is worth a fixed 50 euros of revenue.
	revenuePerConversion = 50

	// Share of daily searches the ad is assumed to capture.
	impressionShare = 0.1
)

// Campaign is one active keyword bid for a simulated day.
type Campaign struct {
	Keyword          keyword.Keyword
	MaxBid           decimal.Decimal
	LandingPageScore int // 0-100, defaults to 50 when zero
}

// Outcome is the per-campaign breakdown of one day.
type Outcome struct {
	Keyword        string
	Position       int
	Impressions    int
	Clicks         int
	CTR            float64
	CPC            decimal.Decimal
	Cost           decimal.Decimal
	Conversions    int
	ConversionRate float64
	AdRank         decimal.Decimal
}

// DayResult aggregates one simulated day across all campaigns.
type DayResult struct {
	Cost            decimal.Decimal
	Clicks          int
	Conversions     int
	Impressions     int
	Revenue         decimal.Decimal
	ROI             decimal.Decimal // percent, rounded
	AvgCPC          decimal.Decimal
	AvgPosition     float64
	Campaigns       []Outcome
	RemainingBudget decimal.Decimal
}

// DayRecord is one append-only history entry.
type DayRecord struct {
	ID          uuid.UUID
	Day         int
	Cost        decimal.Decimal
	Clicks      int
	Conversions int
	Revenue     decimal.Decimal
	ROI         decimal.Decimal
	Budget      decimal.Decimal
	Timestamp   time.Time
}

// Engine owns the campaign state for one play session.
type Engine struct {
	budget        decimal.Decimal
	initialBudget decimal.Decimal
	qualityScore  float64
	competitors   []auction.Competitor
	history       []DayRecord
	jitter        auction.Jitter
	log           log.Logger
	metrics       *metric.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(l log.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// WithJitter replaces the quality-score jitter source, typically with a
// seeded one for deterministic tests.
func WithJitter(j auction.Jitter) Option {
	return func(e *Engine) { e.jitter = j }
}

// WithCompetitors replaces the default competitor roster.
func WithCompetitors(cs []auction.Competitor) Option {
	return func(e *Engine) { e.competitors = cs }
}

// WithMetrics attaches a metrics recorder.
func WithMetrics(m *metric.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// DefaultCompetitors returns the fixed four-bidder market roster. This is
// configuration data, not logic.
func DefaultCompetitors() []auction.Competitor {
	return []auction.Competitor{
		{
			Name:          "MegaStore",
			Unlimited:     true,
			Strategy:      auction.StrategyAggressive,
			QualityScore:  8,
			BidMultiplier: decimal.NewFromFloat(1.5),
		},
		{
			Name:          "BigTech Co",
			Budget:        decimal.NewFromInt(50000),
			Strategy:      auction.StrategyBalanced,
			QualityScore:  7,
			BidMultiplier: decimal.NewFromFloat(1.2),
		},
		{
			Name:          "SmallShop",
			Budget:        decimal.NewFromInt(2000),
			Strategy:      auction.StrategyDefensive,
			QualityScore:  5,
			BidMultiplier: decimal.NewFromFloat(0.8),
		},
		{
			Name:          "MediumCorp",
			Budget:        decimal.NewFromInt(10000),
			Strategy:      auction.StrategyBalanced,
			QualityScore:  6,
			BidMultiplier: decimal.NewFromFloat(1.0),
		},
	}
}

// New creates an engine with the given initial budget, a quality score of 5
// and the default competitor roster.
func New(initialBudget decimal.Decimal, opts ...Option) *Engine {
	e := &Engine{
		budget:        initialBudget,
		initialBudget: initialBudget,
		qualityScore:  initialQualityScore,
		competitors:   DefaultCompetitors(),
		jitter:        auction.NewJitter(rand.New(rand.NewSource(time.Now().UnixNano()))),
		log:           log.NoLog,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Budget returns the remaining budget. It may be negative after overspend.
func (e *Engine) Budget() decimal.Decimal { return e.budget }

// QualityScore returns the current quality score, always within [1, 10].
func (e *Engine) QualityScore() float64 { return e.qualityScore }

// Competitors returns the fixed roster.
func (e *Engine) Competitors() []auction.Competitor { return e.competitors }

// History returns the append-only day log.
func (e *Engine) History() []DayRecord { return e.history }

// RunAuction runs a single keyword auction with the engine's quality score
// and roster.
func (e *Engine) RunAuction(kw keyword.Keyword, maxBid decimal.Decimal) *auction.Result {
	e.metrics.IncAuctions()
	return auction.Run(kw, maxBid, e.qualityScore, e.competitors, e.jitter)
}

// CTRForPosition maps an ad position to its expected click-through rate.
func CTRForPosition(position int) float64 {
	switch position {
	case 1:
		return 0.08
	case 2:
		return 0.06
	case 3:
		return 0.04
	case 4:
		return 0.025
	case 5:
		return 0.015
	default:
		return 0.01
	}
}

// Impressions estimates daily impressions for a keyword: 10% of the daily
// search volume. Non-positive volume yields zero, not an error.
func Impressions(kw keyword.Keyword) int {
	if kw.Volume <= 0 {
		return 0
	}
	daily := float64(kw.Volume) / 30
	return int(daily * impressionShare)
}

// conversionRate blends the base rate with quality-score and landing-page
// bonuses.
func (e *Engine) conversionRate(landingPageScore int) float64 {
	if landingPageScore == 0 {
		landingPageScore = 50
	}
	base := 0.02
	qsBonus := (e.qualityScore - 5) * 0.005
	lpBonus := float64(landingPageScore-50) / 1000
	return base + qsBonus + lpBonus
}

// SimulateDay runs one day of auctions for the given campaigns, deducts the
// total cost from the budget and appends a history record. The budget may go
// negative; overspend is surfaced to the caller, not treated as an error.
func (e *Engine) SimulateDay(campaigns []Campaign) (*DayResult, error) {
	if len(campaigns) == 0 {
		return nil, ErrNoCampaigns
	}

	totalCost := decimal.Zero
	totalClicks := 0
	totalConversions := 0
	totalImpressions := 0
	positionSum := 0

	outcomes := make([]Outcome, 0, len(campaigns))
	for _, c := range campaigns {
		res := e.RunAuction(c.Keyword, c.MaxBid)

		impressions := Impressions(c.Keyword)
		ctr := CTRForPosition(res.Position)
		clicks := int(float64(impressions) * ctr)

		convRate := e.conversionRate(c.LandingPageScore)
		conversions := int(float64(clicks) * convRate)

		cost := res.ActualCPC.Mul(decimal.NewFromInt(int64(clicks)))

		outcomes = append(outcomes, Outcome{
			Keyword:        c.Keyword.Name,
			Position:       res.Position,
			Impressions:    impressions,
			Clicks:         clicks,
			CTR:            ctr,
			CPC:            res.ActualCPC,
			Cost:           cost,
			Conversions:    conversions,
			ConversionRate: convRate,
			AdRank:         res.AdRank,
		})

		totalCost = totalCost.Add(cost)
		totalClicks += clicks
		totalConversions += conversions
		totalImpressions += impressions
		positionSum += res.Position
	}

	revenue := decimal.NewFromInt(int64(totalConversions * revenuePerConversion))

	roi := decimal.Zero
	if totalCost.IsPositive() {
		roi = revenue.Sub(totalCost).
			Div(totalCost).
			Mul(decimal.NewFromInt(100)).
			Round(0)
	}

	avgCPC := decimal.Zero
	if totalClicks > 0 {
		avgCPC = totalCost.Div(decimal.NewFromInt(int64(totalClicks))).Round(2)
	}

	e.budget = e.budget.Sub(totalCost)

	record := DayRecord{
		ID:          uuid.New(),
		Day:         len(e.history) + 1,
		Cost:        totalCost,
		Clicks:      totalClicks,
		Conversions: totalConversions,
		Revenue:     revenue,
		ROI:         roi,
		Budget:      e.budget,
		Timestamp:   time.Now(),
	}
	e.history = append(e.history, record)

	e.metrics.IncDays()
	costFloat, _ := totalCost.Float64()
	e.metrics.ObserveDayCost(costFloat)

	e.log.Info("day simulated",
		"day", record.Day,
		"cost", totalCost.StringFixed(2),
		"clicks", totalClicks,
		"conversions", totalConversions,
		"budget", e.budget.StringFixed(2),
	)
	if e.budget.IsNegative() {
		e.log.Warn("budget overspent", "budget", e.budget.StringFixed(2))
	}

	return &DayResult{
		Cost:            totalCost.Round(2),
		Clicks:          totalClicks,
		Conversions:     totalConversions,
		Impressions:     totalImpressions,
		Revenue:         revenue,
		ROI:             roi,
		AvgCPC:          avgCPC,
		AvgPosition:     float64(positionSum) / float64(len(campaigns)),
		Campaigns:       outcomes,
		RemainingBudget: e.budget.Round(2),
	}, nil
}

// UpdateQualityScore adjusts the quality score from a day's click and
// conversion performance. The thresholds are game-balance constants, not a
// model of any real ad platform. Days without impressions or clicks leave
// the corresponding component untouched.
func (e *Engine) UpdateQualityScore(day *DayResult) {
	var change float64

	if day.Impressions > 0 {
		avgCTR := float64(day.Clicks) / float64(day.Impressions)
		if avgCTR > 0.05 {
			change += 0.2
		} else if avgCTR < 0.02 {
			change -= 0.1
		}
	}

	if day.Clicks > 0 {
		avgConvRate := float64(day.Conversions) / float64(day.Clicks)
		if avgConvRate > 0.03 {
			change += 0.2
		} else if avgConvRate < 0.01 {
			change -= 0.1
		}
	}

	e.qualityScore = math.Max(minQualityScore, math.Min(maxQualityScore, e.qualityScore+change))
	e.log.Debug("quality score updated", "quality_score", e.qualityScore, "change", change)
}

// Reset restores the engine to its construction-time state for a new
// playthrough.
func (e *Engine) Reset() {
	e.budget = e.initialBudget
	e.qualityScore = initialQualityScore
	e.history = nil
	e.log.Info("engine reset", "budget", e.budget.StringFixed(2))
}
