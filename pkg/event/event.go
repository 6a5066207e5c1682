// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package event implements the random-event system. Market events roll each
// turn per module and apply bounded effects to the session state while
// active; owned tools can neutralize specific events before they fire.
package event

import (
	"errors"
	"math/rand"

	"github.com/shopspring/decimal"
)

// ErrUnknownModule is returned when a trigger names a module with no event
// table.
var ErrUnknownModule = errors.New("unknown event module")

// Module selects an event table.
type Module string

const (
	ModuleSEO Module = "SEO"
	ModuleSEA Module = "SEA"
)

// Type classes an event by its overall effect.
type Type string

const (
	TypePositive Type = "positive"
	TypeNegative Type = "negative"
	TypeMixed    Type = "mixed"
)

// Impact bundles every effect an event can carry. Zero values mean the
// event does not touch that dimension; multipliers use 0 as "unset", never
// as "multiply by zero".
type Impact struct {
	Ranking           int
	Authority         float64
	Backlinks         int
	QualityScoreBonus float64
	BudgetBonus       decimal.Decimal

	CPCMultiplier         float64
	ConversionMultiplier  float64
	CompetitionMultiplier float64
	CTRMultiplier         float64

	PausedCampaigns int
}

// Event is one entry of a module's event table.
type Event struct {
	ID            string
	Name          string
	Module        Module
	Type          Type
	Probability   float64 // per-turn trigger chance, 0-1
	Duration      int     // turns the event stays active
	Impact        Impact
	Description   string
	Icon          string
	NeutralizedBy []string // tool names that suppress the event
	PlayerMessage string
	Tips          string
}

// ActiveEvent is a triggered event with its countdown.
type ActiveEvent struct {
	Event
	TriggeredAt       int
	RemainingDuration int
}

// Trigger rolls the event table for one turn. Each event passes an
// independent probability roll, then neutralized events are dropped; one
// survivor is picked uniformly. Returns nil when nothing fires.
func Trigger(module Module, currentTurn int, ownedTools []string, rng *rand.Rand) (*ActiveEvent, error) {
	table, ok := Tables[module]
	if !ok {
		return nil, ErrUnknownModule
	}

	var eligible []Event
	for _, ev := range table {
		if rng.Float64() > ev.Probability {
			continue
		}
		if neutralized(ev, ownedTools) {
			continue
		}
		eligible = append(eligible, ev)
	}

	if len(eligible) == 0 {
		return nil, nil
	}

	selected := eligible[rng.Intn(len(eligible))]
	return &ActiveEvent{
		Event:             selected,
		TriggeredAt:       currentTurn,
		RemainingDuration: selected.Duration,
	}, nil
}

func neutralized(ev Event, ownedTools []string) bool {
	for _, tool := range ev.NeutralizedBy {
		for _, owned := range ownedTools {
			if tool == owned {
				return true
			}
		}
	}
	return false
}

// GameState is the slice of session state events can touch.
type GameState struct {
	Ranking      int
	Authority    float64
	Backlinks    int
	Budget       decimal.Decimal
	QualityScore float64
	ActiveEvents []ActiveEvent
}

// ApplyEffects folds an event's immediate effects into the state and
// registers it as active. Ranking stays in [1, 100], authority in [0, 100],
// quality score in [1, 10]. The input state is not mutated.
func ApplyEffects(ev ActiveEvent, state GameState) GameState {
	next := state
	next.ActiveEvents = append(append([]ActiveEvent(nil), state.ActiveEvents...), ev)

	switch ev.Module {
	case ModuleSEO:
		if ev.Impact.Ranking != 0 {
			next.Ranking = clampInt(next.Ranking+ev.Impact.Ranking, 1, 100)
		}
		if ev.Impact.Authority != 0 {
			next.Authority = clampFloat(next.Authority+ev.Impact.Authority, 0, 100)
		}
		if ev.Impact.Backlinks != 0 {
			next.Backlinks += ev.Impact.Backlinks
		}
	case ModuleSEA:
		if !ev.Impact.BudgetBonus.IsZero() {
			next.Budget = next.Budget.Add(ev.Impact.BudgetBonus)
		}
		if ev.Impact.QualityScoreBonus != 0 {
			next.QualityScore = clampFloat(next.QualityScore+ev.Impact.QualityScoreBonus, 1, 10)
		}
	}

	return next
}

// UpdateActive ticks every active event down one turn and drops the
// expired ones.
func UpdateActive(active []ActiveEvent) []ActiveEvent {
	var out []ActiveEvent
	for _, ev := range active {
		ev.RemainingDuration--
		if ev.RemainingDuration > 0 {
			out = append(out, ev)
		}
	}
	return out
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
