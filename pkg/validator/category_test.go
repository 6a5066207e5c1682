// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adxyz/serplab/pkg/page"
)

func TestCategorize(t *testing.T) {
	require := require.New(t)

	cases := map[string]Category{
		"no-title":                   CategoryTitle,
		"title-not-optimized":        CategoryTitle,
		"no-meta-description":        CategoryMeta,
		"meta-desc-too-short":        CategoryMeta,
		"no-h1":                      CategoryH1,
		"category-h2-instead-h1":     CategoryH1,
		"images-without-alt":         CategoryImageAlt,
		"category-images-no-alt":     CategoryImageAlt,
		"bad-anchor-text":            CategoryAnchorText,
		"thin-content":               CategoryContentLength,
		"blog-thin-content":          CategoryContentLength,
		"no-semantic-html":           CategorySemantic,
		"no-schema-markup":           CategorySchema,
		"about-no-schema-org":        CategorySchema,
		"no-breadcrumb":              CategoryBreadcrumb,
		"no-reviews":                 CategoryReviews,
		"blog-no-internal-links":     CategoryInternalLinks,
		"contact-form-accessibility": CategoryFormLabels,
		"something-unrecognized":     CategoryGeneric,
	}

	for id, want := range cases {
		require.Equal(want, Categorize(id), "id %q", id)
	}
}

// Anchor defects contain the word "text"; they must still route to the
// anchor checker, not the word-count one.
func TestCategorizeAnchorBeforeContent(t *testing.T) {
	require := require.New(t)
	require.Equal(CategoryAnchorText, Categorize("bad-anchor-text"))
}

// Every catalog defect should resolve to a non-generic checker.
func TestCategorizeCatalogCoverage(t *testing.T) {
	require := require.New(t)

	for _, id := range page.IDs() {
		p, err := page.ByID(id)
		require.NoError(err)
		for _, d := range p.Defects {
			switch d.ID {
			case "contact-poor-structure", "category-no-filters", "blog-no-h2":
				// Only the literal-solution fallback covers these.
				continue
			}
			require.NotEqual(CategoryGeneric, Categorize(d.ID), "defect %q", d.ID)
		}
	}
}
