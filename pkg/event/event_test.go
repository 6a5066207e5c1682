// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package event

import (
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestTriggerUnknownModule(t *testing.T) {
	require := require.New(t)

	_, err := Trigger("SMM", 1, nil, rand.New(rand.NewSource(1)))
	require.ErrorIs(err, ErrUnknownModule)
}

func TestTriggerDeterministicForSeed(t *testing.T) {
	require := require.New(t)

	for seed := int64(0); seed < 20; seed++ {
		first, err := Trigger(ModuleSEO, 3, nil, rand.New(rand.NewSource(seed)))
		require.NoError(err)
		second, err := Trigger(ModuleSEO, 3, nil, rand.New(rand.NewSource(seed)))
		require.NoError(err)

		if first == nil {
			require.Nil(second)
			continue
		}
		require.NotNil(second)
		require.Equal(first.ID, second.ID)
		require.Equal(3, first.TriggeredAt)
		require.Equal(first.Duration, first.RemainingDuration)
	}
}

func TestTriggerNeutralizedByTools(t *testing.T) {
	require := require.New(t)

	tools := []string{"Consultant SEO Expert", "Audit Backlinks Premium", "Monitoring Premium"}

	rng := rand.New(rand.NewSource(99))
	for turn := 0; turn < 200; turn++ {
		ev, err := Trigger(ModuleSEO, turn, tools, rng)
		require.NoError(err)
		if ev != nil {
			require.Empty(ev.NeutralizedBy, "event %q should have been suppressed", ev.ID)
		}
	}
}

func TestApplyEffectsSEO(t *testing.T) {
	require := require.New(t)

	ev := ActiveEvent{
		Event: Event{
			ID:       "viral-backlink",
			Module:   ModuleSEO,
			Duration: 1,
			Impact:   Impact{Backlinks: 50, Authority: 10, Ranking: -3},
		},
		RemainingDuration: 1,
	}

	state := GameState{Ranking: 40, Authority: 20, Backlinks: 5}
	next := ApplyEffects(ev, state)

	require.Equal(37, next.Ranking)
	require.InDelta(30, next.Authority, 1e-9)
	require.Equal(55, next.Backlinks)
	require.Len(next.ActiveEvents, 1)

	// The input state is left alone.
	require.Equal(40, state.Ranking)
	require.Empty(state.ActiveEvents)
}

func TestApplyEffectsClamps(t *testing.T) {
	require := require.New(t)

	drop := ActiveEvent{Event: Event{Module: ModuleSEO, Impact: Impact{Ranking: -10, Authority: -50}}}
	next := ApplyEffects(drop, GameState{Ranking: 4, Authority: 10})
	require.Equal(1, next.Ranking)
	require.Zero(next.Authority)

	boost := ActiveEvent{Event: Event{Module: ModuleSEA, Impact: Impact{QualityScoreBonus: 5}}}
	next = ApplyEffects(boost, GameState{QualityScore: 8})
	require.InDelta(10, next.QualityScore, 1e-9)
}

func TestApplyEffectsSEABudget(t *testing.T) {
	require := require.New(t)

	ev := ActiveEvent{Event: Event{
		Module: ModuleSEA,
		Impact: Impact{BudgetBonus: decimal.NewFromInt(2000)},
	}}

	next := ApplyEffects(ev, GameState{Budget: decimal.NewFromInt(500), QualityScore: 5})
	require.True(next.Budget.Equal(decimal.NewFromInt(2500)))
}

func TestUpdateActive(t *testing.T) {
	require := require.New(t)

	active := []ActiveEvent{
		{Event: Event{ID: "a"}, RemainingDuration: 2},
		{Event: Event{ID: "b"}, RemainingDuration: 1},
	}

	next := UpdateActive(active)
	require.Len(next, 1)
	require.Equal("a", next[0].ID)
	require.Equal(1, next[0].RemainingDuration)

	require.Empty(UpdateActive(next))
	require.Empty(UpdateActive(nil))
}

func TestTablesIntegrity(t *testing.T) {
	require := require.New(t)

	for module, events := range Tables {
		for _, ev := range events {
			require.Equal(module, ev.Module, "event %q", ev.ID)
			require.Greater(ev.Probability, 0.0, "event %q", ev.ID)
			require.LessOrEqual(ev.Probability, 1.0, "event %q", ev.ID)
			require.Greater(ev.Duration, 0, "event %q", ev.ID)
			require.NotEmpty(ev.PlayerMessage, "event %q", ev.ID)
		}
	}
}
