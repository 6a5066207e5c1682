// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package campaign

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/adxyz/serplab/pkg/auction"
	"github.com/adxyz/serplab/pkg/keyword"
)

func newTestEngine(budget int64) *Engine {
	return New(decimal.NewFromInt(budget), WithJitter(auction.NoJitter))
}

func mustKeyword(t *testing.T, id string) keyword.Keyword {
	t.Helper()
	kw, err := keyword.ByID(id)
	require.NoError(t, err)
	return kw
}

func TestSimulateDaySingleCampaign(t *testing.T) {
	require := require.New(t)

	e := newTestEngine(1000)
	kw := mustKeyword(t, "purificateur-air")

	day, err := e.SimulateDay([]Campaign{{
		Keyword: kw,
		MaxBid:  decimal.NewFromInt(5),
	}})
	require.NoError(err)
	require.Len(day.Campaigns, 1)

	out := day.Campaigns[0]

	// Volume 12000: 400 daily searches, 10% impression share.
	require.Equal(40, out.Impressions)

	// Without jitter the roster ad-ranks are fixed: MegaStore 39.04 beats the
	// player's 25, BigTech's 21 prices the player's click at 4.21.
	require.Equal(2, out.Position)
	require.True(out.CPC.Equal(decimal.NewFromFloat(4.21)), "cpc = %s", out.CPC)
	require.Equal(2, out.Clicks)
	require.Equal(0, out.Conversions)

	require.True(day.Cost.Equal(decimal.NewFromFloat(8.42)), "cost = %s", day.Cost)
	require.True(day.Revenue.IsZero())
	require.True(day.ROI.Equal(decimal.NewFromInt(-100)), "roi = %s", day.ROI)
	require.True(e.Budget().Equal(decimal.NewFromFloat(991.58)), "budget = %s", e.Budget())
}

func TestSimulateDayAggregatesCampaigns(t *testing.T) {
	require := require.New(t)

	e := newTestEngine(1000)
	campaigns := []Campaign{
		{Keyword: mustKeyword(t, "purificateur-air"), MaxBid: decimal.NewFromInt(5)},
		{Keyword: mustKeyword(t, "purificateur-japonais"), MaxBid: decimal.NewFromInt(2)},
	}

	day, err := e.SimulateDay(campaigns)
	require.NoError(err)
	require.Len(day.Campaigns, 2)

	cost := decimal.Zero
	clicks := 0
	impressions := 0
	for _, out := range day.Campaigns {
		cost = cost.Add(out.Cost)
		clicks += out.Clicks
		impressions += out.Impressions
	}
	require.True(day.Cost.Equal(cost.Round(2)))
	require.Equal(clicks, day.Clicks)
	require.Equal(impressions, day.Impressions)
	require.True(e.Budget().Equal(decimal.NewFromInt(1000).Sub(cost)))
}

func TestSimulateDayNoCampaigns(t *testing.T) {
	require := require.New(t)

	_, err := newTestEngine(1000).SimulateDay(nil)
	require.ErrorIs(err, ErrNoCampaigns)
}

func TestSimulateDayBudgetMayGoNegative(t *testing.T) {
	require := require.New(t)

	e := newTestEngine(1)
	_, err := e.SimulateDay([]Campaign{{
		Keyword: mustKeyword(t, "purificateur-air"),
		MaxBid:  decimal.NewFromInt(5),
	}})
	require.NoError(err)
	require.True(e.Budget().IsNegative())
}

func TestSimulateDayAppendsHistory(t *testing.T) {
	require := require.New(t)

	e := newTestEngine(1000)
	campaigns := []Campaign{{Keyword: mustKeyword(t, "purificateur-air"), MaxBid: decimal.NewFromInt(5)}}

	_, err := e.SimulateDay(campaigns)
	require.NoError(err)
	_, err = e.SimulateDay(campaigns)
	require.NoError(err)

	history := e.History()
	require.Len(history, 2)
	require.Equal(1, history[0].Day)
	require.Equal(2, history[1].Day)
	require.NotEqual(history[0].ID, history[1].ID)
}

func TestUpdateQualityScore(t *testing.T) {
	require := require.New(t)

	t.Run("good day raises the score", func(t *testing.T) {
		e := newTestEngine(1000)
		e.UpdateQualityScore(&DayResult{Impressions: 100, Clicks: 6, Conversions: 1})
		require.InDelta(5.4, e.QualityScore(), 1e-9)
	})

	t.Run("bad day lowers the score", func(t *testing.T) {
		e := newTestEngine(1000)
		e.UpdateQualityScore(&DayResult{Impressions: 100, Clicks: 1, Conversions: 0})
		require.InDelta(4.8, e.QualityScore(), 1e-9)
	})

	t.Run("day without traffic is neutral", func(t *testing.T) {
		e := newTestEngine(1000)
		e.UpdateQualityScore(&DayResult{})
		require.InDelta(5.0, e.QualityScore(), 1e-9)
	})

	t.Run("score never leaves its bounds", func(t *testing.T) {
		e := newTestEngine(1000)
		for i := 0; i < 50; i++ {
			e.UpdateQualityScore(&DayResult{Impressions: 100, Clicks: 1, Conversions: 0})
		}
		require.GreaterOrEqual(e.QualityScore(), 1.0)

		for i := 0; i < 50; i++ {
			e.UpdateQualityScore(&DayResult{Impressions: 100, Clicks: 10, Conversions: 1})
		}
		require.LessOrEqual(e.QualityScore(), 10.0)
	})
}

func TestReset(t *testing.T) {
	require := require.New(t)

	e := newTestEngine(1000)
	_, err := e.SimulateDay([]Campaign{{
		Keyword: mustKeyword(t, "purificateur-air"),
		MaxBid:  decimal.NewFromInt(5),
	}})
	require.NoError(err)
	e.UpdateQualityScore(&DayResult{Impressions: 100, Clicks: 6, Conversions: 1})

	e.Reset()

	require.True(e.Budget().Equal(decimal.NewFromInt(1000)))
	require.InDelta(5.0, e.QualityScore(), 1e-9)
	require.Empty(e.History())
}

func TestCTRForPosition(t *testing.T) {
	require := require.New(t)

	require.Equal(0.08, CTRForPosition(1))
	require.Equal(0.06, CTRForPosition(2))
	require.Equal(0.04, CTRForPosition(3))
	require.Equal(0.025, CTRForPosition(4))
	require.Equal(0.015, CTRForPosition(5))
	require.Equal(0.01, CTRForPosition(6))
	require.Equal(0.01, CTRForPosition(42))
}

func TestImpressions(t *testing.T) {
	require := require.New(t)

	require.Equal(40, Impressions(keyword.Keyword{Volume: 12000}))
	require.Equal(0, Impressions(keyword.Keyword{Volume: 0}))
	require.Equal(0, Impressions(keyword.Keyword{Volume: -5}))
}
