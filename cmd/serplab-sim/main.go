// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// serplab-sim runs a scripted offline playthrough of both marketing tracks
// and prints the day-by-day outcome. With a fixed seed the run is fully
// reproducible, which makes it handy for balancing the game constants.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/shopspring/decimal"

	"github.com/adxyz/serplab/pkg/auction"
	"github.com/adxyz/serplab/pkg/campaign"
	"github.com/adxyz/serplab/pkg/event"
	"github.com/adxyz/serplab/pkg/keyword"
	"github.com/adxyz/serplab/pkg/log"
	"github.com/adxyz/serplab/pkg/page"
	"github.com/adxyz/serplab/pkg/seo"
	"github.com/adxyz/serplab/pkg/validator"
)

var (
	days     = flag.Int("days", 7, "number of campaign days to simulate")
	budget   = flag.Float64("budget", 5000, "starting campaign budget in euros")
	seed     = flag.Int64("seed", 1, "RNG seed")
	strategy = flag.String("strategy", "balanced", "keyword strategy (aggressive/balanced/niche)")
	pageID   = flag.String("page", "homepage", "catalog page to audit and fix")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	rng := rand.New(rand.NewSource(*seed))
	logger := log.NoOp()

	preset, ok := keyword.Strategies[*strategy]
	if !ok {
		return fmt.Errorf("unknown strategy %q", *strategy)
	}

	campaigns := make([]campaign.Campaign, 0, len(preset.Keywords))
	for _, id := range preset.Keywords {
		kw, err := keyword.ByID(id)
		if err != nil {
			return err
		}
		campaigns = append(campaigns, campaign.Campaign{
			Keyword: kw,
			MaxBid:  kw.BaselineCPC.Mul(decimal.NewFromFloat(1.4)).Round(2),
		})
	}

	engine := campaign.New(decimal.NewFromFloat(*budget),
		campaign.WithLogger(logger),
		campaign.WithJitter(auction.NewJitter(rng)),
	)

	fmt.Printf("=== Campagne SEA: %s (budget %.2f) ===\n", preset.Name, *budget)
	for day := 1; day <= *days; day++ {
		result, err := engine.SimulateDay(campaigns)
		if err != nil {
			return err
		}
		engine.UpdateQualityScore(result)

		fmt.Printf("Jour %d: coût %s, clics %d, conversions %d, ROI %s%%, budget %s\n",
			day, result.Cost.StringFixed(2), result.Clicks, result.Conversions,
			result.ROI.StringFixed(0), result.RemainingBudget.StringFixed(2))

		if ev, err := event.Trigger(event.ModuleSEA, day, nil, rng); err == nil && ev != nil {
			fmt.Printf("  Événement: %s %s\n", ev.Icon, ev.Name)
		}

		if result.RemainingBudget.IsNegative() {
			fmt.Println("  Budget épuisé, fin de campagne.")
			break
		}
	}
	fmt.Printf("Quality Score final: %.1f\n\n", engine.QualityScore())

	return runSEOTrack(rng)
}

func runSEOTrack(rng *rand.Rand) error {
	p, err := page.ByID(*pageID)
	if err != nil {
		return err
	}

	organic := seo.NewEngine()

	fmt.Printf("=== Audit SEO: %s ===\n", p.Name)
	before := organic.Audit(p.HTML)
	fmt.Printf("Score initial: %d/100 (%d erreurs)\n", before.Score, len(before.Defects()))

	rankBefore := organic.CalculateRanking(seo.PageData{SEOScore: before.Score}, nil, nil)
	fmt.Printf("Position initiale: #%d\n", rankBefore)

	// Play the corrected document as the submission.
	result, err := validator.Validate(p.CorrectHTML, p.CorrectHTML, p.Defects)
	if err != nil {
		return err
	}
	newRank := validator.CalculateNewRanking(result, rankBefore)
	fmt.Printf("Corrections: %d/%d points (%d%%)\n", result.Score, result.TotalPossible, result.Percentage)
	fmt.Println(result.GeneralMessage)
	fmt.Printf("Position après correction: #%d\n", newRank)

	for i := 0; i < 3; i++ {
		quality := 40 + rng.Float64()*40
		organic.AddBacklink(quality, "partenaire")
	}
	after := organic.Audit(p.CorrectHTML)
	finalRank := organic.CalculateRanking(seo.PageData{SEOScore: after.Score}, nil, nil)
	fmt.Printf("Score corrigé: %d/100, autorité %.1f, position modèle: #%d\n",
		after.Score, organic.Authority(), finalRank)

	return nil
}
