// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package keyword

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	require := require.New(t)

	kw, err := ByID("purificateur-air")
	require.NoError(err)
	require.Equal("purificateur air", kw.Name)
	require.Equal(12000, kw.Volume)
	require.Equal(CompetitivenessHigh, kw.Competitiveness)

	_, err = ByID("inconnu")
	require.ErrorIs(err, ErrKeywordNotFound)
}

func TestByCompetitiveness(t *testing.T) {
	require := require.New(t)

	high := ByCompetitiveness(CompetitivenessHigh)
	require.Len(high, 2)

	low := ByCompetitiveness(CompetitivenessLow)
	require.Len(low, 1)
	require.Equal("purificateur-japonais", low[0].ID)
}

func TestDifficulty(t *testing.T) {
	require := require.New(t)

	head, err := ByID("purificateur-air")
	require.NoError(err)
	tail, err := ByID("purificateur-japonais")
	require.NoError(err)

	// The head keyword is markedly harder than the long-tail one.
	require.Greater(Difficulty(head), Difficulty(tail))
	require.GreaterOrEqual(Difficulty(tail), 0)
	require.LessOrEqual(Difficulty(head), 100)
}

func TestStrategiesReferenceCatalogKeywords(t *testing.T) {
	require := require.New(t)

	for name, s := range Strategies {
		require.NotEmpty(s.Keywords, "strategy %q", name)
		for _, id := range s.Keywords {
			_, err := ByID(id)
			require.NoError(err, "strategy %q references %q", name, id)
		}
	}
}
