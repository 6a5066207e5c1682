// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package page holds the playable page catalog: each entry is a realistic
// HTML document seeded with SEO defects, the corrected reference document
// and the defect list the validator scores against.
package page

import (
	"errors"
	"sort"

	"github.com/adxyz/serplab/pkg/seo"
)

// ErrPageNotFound is returned when an identifier has no catalog entry.
var ErrPageNotFound = errors.New("page not found")

// Page is one playable exercise.
type Page struct {
	ID          string
	Name        string
	Type        string
	Difficulty  int // 1 (easy) to 5 (hard)
	HTML        string
	CorrectHTML string
	Defects     []seo.Defect
	IdealScore  int // audit score of the corrected document
}

// ByID looks up a page in the catalog.
func ByID(id string) (Page, error) {
	p, ok := Catalog[id]
	if !ok {
		return Page{}, ErrPageNotFound
	}
	return p, nil
}

// IDs returns the catalog identifiers in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(Catalog))
	for id := range Catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ByDifficulty returns pages at or below the given difficulty, easiest
// first.
func ByDifficulty(max int) []Page {
	var out []Page
	for _, id := range IDs() {
		if p := Catalog[id]; p.Difficulty <= max {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Difficulty < out[j].Difficulty })
	return out
}

// TotalImpact sums the defect impact magnitudes, the maximum score a
// submission on this page can earn.
func (p Page) TotalImpact() int {
	total := 0
	for _, d := range p.Defects {
		total += -d.Impact
	}
	return total
}
