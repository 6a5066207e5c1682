// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validator

import "strings"

// Category is the closed set of defect families the validator knows how to
// check. Every defect identifier maps to exactly one category; unknown
// identifiers fall back to the generic snippet check.
type Category int

const (
	CategoryGeneric Category = iota
	CategoryTitle
	CategoryMeta
	CategoryH1
	CategoryImageAlt
	CategoryAnchorText
	CategoryContentLength
	CategorySemantic
	CategorySchema
	CategoryBreadcrumb
	CategoryReviews
	CategoryTimeTag
	CategoryFormLabels
	CategoryInternalLinks
)

var categoryNames = map[Category]string{
	CategoryGeneric:       "generic",
	CategoryTitle:         "title",
	CategoryMeta:          "meta",
	CategoryH1:            "h1",
	CategoryImageAlt:      "image-alt",
	CategoryAnchorText:    "anchor-text",
	CategoryContentLength: "content-length",
	CategorySemantic:      "semantic",
	CategorySchema:        "schema",
	CategoryBreadcrumb:    "breadcrumb",
	CategoryReviews:       "reviews",
	CategoryTimeTag:       "time-tag",
	CategoryFormLabels:    "form-labels",
	CategoryInternalLinks: "internal-links",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "unknown"
}

// categoryRule binds identifier keywords to a category. Rules are evaluated
// in order; the first match wins, so more specific families come first
// (anchor-text before content-length keeps "bad-anchor-text" out of the
// word-count check).
type categoryRule struct {
	keywords []string
	category Category
}

var categoryRules = []categoryRule{
	{[]string{"title"}, CategoryTitle},
	{[]string{"meta"}, CategoryMeta},
	{[]string{"h1"}, CategoryH1},
	{[]string{"img", "alt"}, CategoryImageAlt},
	{[]string{"anchor"}, CategoryAnchorText},
	{[]string{"content", "text", "thin"}, CategoryContentLength},
	{[]string{"semantic", "article"}, CategorySemantic},
	{[]string{"schema"}, CategorySchema},
	{[]string{"breadcrumb"}, CategoryBreadcrumb},
	{[]string{"review"}, CategoryReviews},
	{[]string{"time"}, CategoryTimeTag},
	{[]string{"form", "label"}, CategoryFormLabels},
	{[]string{"link", "internal"}, CategoryInternalLinks},
}

// Categorize maps a defect identifier to its checker category.
func Categorize(defectID string) Category {
	id := strings.ToLower(defectID)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(id, kw) {
				return rule.category
			}
		}
	}
	return CategoryGeneric
}
