// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByID(t *testing.T) {
	require := require.New(t)

	p, err := ByID("homepage")
	require.NoError(err)
	require.Equal("Homepage TechShop.fr", p.Name)
	require.NotEmpty(p.HTML)
	require.NotEmpty(p.CorrectHTML)
	require.NotEmpty(p.Defects)

	_, err = ByID("inconnue")
	require.ErrorIs(err, ErrPageNotFound)
}

func TestIDs(t *testing.T) {
	require := require.New(t)

	ids := IDs()
	require.Equal([]string{"about", "blog", "category", "contact", "homepage", "product"}, ids)
}

func TestByDifficulty(t *testing.T) {
	require := require.New(t)

	easy := ByDifficulty(2)
	require.Len(easy, 2)
	require.Equal("about", easy[0].ID)
	require.Equal("contact", easy[1].ID)

	all := ByDifficulty(5)
	require.Len(all, len(Catalog))
}

func TestTotalImpact(t *testing.T) {
	require := require.New(t)

	p, err := ByID("homepage")
	require.NoError(err)
	// 10+8+7+6+5+2+3.
	require.Equal(41, p.TotalImpact())
}

func TestCatalogIntegrity(t *testing.T) {
	require := require.New(t)

	for id, p := range Catalog {
		require.Equal(id, p.ID)
		require.NotEmpty(p.Name, "page %q", id)
		require.GreaterOrEqual(p.Difficulty, 1, "page %q", id)
		require.LessOrEqual(p.Difficulty, 5, "page %q", id)
		require.Greater(p.IdealScore, 0, "page %q", id)
		for _, d := range p.Defects {
			require.NotEmpty(d.ID, "page %q", id)
			require.Negative(d.Impact, "page %q defect %q", id, d.ID)
		}
	}
}
