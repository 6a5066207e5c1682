// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package keyword holds the paid-search keyword reference data: monthly
// volumes, competitiveness tiers and baseline CPCs used by the auction and
// campaign engines.
package keyword

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

var ErrKeywordNotFound = errors.New("keyword not found")

// Competitiveness buckets keywords by how contested their auctions are.
type Competitiveness string

const (
	CompetitivenessLow    Competitiveness = "low"
	CompetitivenessMedium Competitiveness = "medium"
	CompetitivenessHigh   Competitiveness = "high"
)

// Keyword is immutable reference data for one biddable search term.
type Keyword struct {
	ID              string
	Name            string
	Volume          int // monthly searches
	Competitiveness Competitiveness
	BaselineCPC     decimal.Decimal
	Category        string
	Description     string
}

// ByID returns the catalog keyword with the given identifier.
func ByID(id string) (Keyword, error) {
	for _, kw := range Catalog {
		if kw.ID == id {
			return kw, nil
		}
	}
	return Keyword{}, ErrKeywordNotFound
}

// ByCompetitiveness returns all catalog keywords in the given tier.
func ByCompetitiveness(level Competitiveness) []Keyword {
	var out []Keyword
	for _, kw := range Catalog {
		if kw.Competitiveness == level {
			out = append(out, kw)
		}
	}
	return out
}

// Difficulty scores a keyword from 0 to 100 by blending volume, baseline CPC
// and competitiveness.
func Difficulty(kw Keyword) int {
	volumeScore := math.Min(100, float64(kw.Volume)/15000*100)
	cpc, _ := kw.BaselineCPC.Float64()
	cpcScore := math.Min(100, cpc/5*100)

	compScore := 50.0
	switch kw.Competitiveness {
	case CompetitivenessLow:
		compScore = 30
	case CompetitivenessMedium:
		compScore = 60
	case CompetitivenessHigh:
		compScore = 90
	}

	return int(math.Round((volumeScore + cpcScore + compScore) / 3))
}
