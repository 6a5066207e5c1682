// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package auction implements the keyword second-price auction model. One call
// to Run simulates a single day's auction for one keyword against a fixed
// bidder set and yields the player's position and charged CPC.
package auction

import (
	"math/rand"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/adxyz/serplab/pkg/keyword"
)

// PlayerName labels the player's entry in auction listings.
const PlayerName = "VOUS"

// Strategy is a competitor bidding profile.
type Strategy string

const (
	StrategyAggressive Strategy = "aggressive"
	StrategyBalanced   Strategy = "balanced"
	StrategyDefensive  Strategy = "defensive"
)

// Competitor is a simulated participant with a deterministic bid policy.
// Quality score is the configured center; actual per-auction quality gets a
// bounded jitter applied.
type Competitor struct {
	Name          string
	Budget        decimal.Decimal
	Unlimited     bool // no budget ceiling
	Strategy      Strategy
	QualityScore  float64
	BidMultiplier decimal.Decimal
}

// Bid is one ranked entry of an auction.
type Bid struct {
	Bidder       string
	Amount       decimal.Decimal
	QualityScore float64
	AdRank       decimal.Decimal
	IsPlayer     bool
}

// Result is the outcome of one keyword auction.
type Result struct {
	Keyword   string
	Position  int // 1-indexed player position
	ActualCPC decimal.Decimal
	AdRank    decimal.Decimal // player ad-rank
	Bids      []Bid           // sorted by ad-rank descending
}

// Jitter produces a bounded random offset for competitor quality scores.
// Injecting it keeps auctions reproducible under test.
type Jitter func() float64

// NewJitter returns a Jitter drawing uniformly from [-0.5, +0.5].
func NewJitter(rng *rand.Rand) Jitter {
	return func() float64 {
		return rng.Float64() - 0.5
	}
}

// NoJitter always returns zero offset.
func NoJitter() float64 { return 0 }

// AdRank computes bid × quality score.
func AdRank(bid decimal.Decimal, qualityScore float64) decimal.Decimal {
	return bid.Mul(decimal.NewFromFloat(qualityScore))
}

// CompetitorBid derives a competitor's bid for a keyword from its strategy.
// Aggressive profiles pay a 30% surcharge on high-volume keywords, defensive
// profiles a 20% surcharge on low-competition ones; finite budgets cap the
// bid at budget/100.
func CompetitorBid(c Competitor, kw keyword.Keyword) decimal.Decimal {
	bid := kw.BaselineCPC.Mul(c.BidMultiplier)

	if c.Strategy == StrategyAggressive && kw.Volume > 5000 {
		bid = bid.Mul(decimal.NewFromFloat(1.3))
	}
	if c.Strategy == StrategyDefensive && kw.Competitiveness == keyword.CompetitivenessLow {
		bid = bid.Mul(decimal.NewFromFloat(1.2))
	}

	if !c.Unlimited {
		cap := c.Budget.Div(decimal.NewFromInt(100))
		if bid.GreaterThan(cap) {
			bid = cap
		}
	}

	return bid.Round(2)
}

// competitorQuality applies the jitter to the configured quality score,
// clamped into [1, 10].
func competitorQuality(c Competitor, jitter Jitter) float64 {
	qs := c.QualityScore + jitter()
	if qs < 1 {
		qs = 1
	}
	if qs > 10 {
		qs = 10
	}
	return qs
}

// Run executes the second-price auction for one keyword. Bidders are sorted
// by ad-rank descending; equal ad-ranks keep input order (player last), which
// makes the ordering deterministic for a fixed jitter. When the player is not
// last, the charged CPC is nextAdRank/playerQS + 0.01 capped at the player's
// max bid; a last-placed player pays their bid.
func Run(kw keyword.Keyword, playerBid decimal.Decimal, playerQS float64, competitors []Competitor, jitter Jitter) *Result {
	if jitter == nil {
		jitter = NoJitter
	}

	bids := make([]Bid, 0, len(competitors)+1)
	for _, c := range competitors {
		amount := CompetitorBid(c, kw)
		qs := competitorQuality(c, jitter)
		bids = append(bids, Bid{
			Bidder:       c.Name,
			Amount:       amount,
			QualityScore: qs,
			AdRank:       AdRank(amount, qs),
		})
	}
	bids = append(bids, Bid{
		Bidder:       PlayerName,
		Amount:       playerBid,
		QualityScore: playerQS,
		AdRank:       AdRank(playerBid, playerQS),
		IsPlayer:     true,
	})

	// Tie-break policy: stable sort keeps input order for equal ad-ranks.
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].AdRank.GreaterThan(bids[j].AdRank)
	})

	position := 0
	var playerAdRank decimal.Decimal
	for i, b := range bids {
		if b.IsPlayer {
			position = i + 1
			playerAdRank = b.AdRank
			break
		}
	}

	var actualCPC decimal.Decimal
	if position < len(bids) {
		next := bids[position]
		actualCPC = next.AdRank.
			Div(decimal.NewFromFloat(playerQS)).
			Add(decimal.NewFromFloat(0.01))
	} else {
		actualCPC = playerBid
	}
	if actualCPC.GreaterThan(playerBid) {
		actualCPC = playerBid
	}
	actualCPC = actualCPC.Round(2)

	return &Result{
		Keyword:   kw.Name,
		Position:  position,
		ActualCPC: actualCPC,
		AdRank:    playerAdRank,
		Bids:      bids,
	}
}
