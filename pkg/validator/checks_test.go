// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adxyz/serplab/pkg/seo"
)

func check(t *testing.T, fn checkFunc, userCode string) Finding {
	t.Helper()
	return fn(NormalizeHTML(userCode), "", seo.Defect{})
}

func TestCheckTitleTag(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkTitleTag, "<html><head></head></html>").Status)
	require.Equal(StatusUnfixed, check(t, checkTitleTag, "<title>   </title>").Status)
	require.Equal(StatusPartial, check(t, checkTitleTag, "<title>Trop court</title>").Status)
	require.Equal(StatusPartial, check(t, checkTitleTag,
		"<title>"+strings.Repeat("mot ", 20)+"</title>").Status)
	require.Equal(StatusFixed, check(t, checkTitleTag,
		"<title>Boutique high-tech de confiance en ligne</title>").Status)
}

func TestCheckMetaDescription(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkMetaDescription, "<head></head>").Status)
	require.Equal(StatusPartial, check(t, checkMetaDescription,
		`<meta name="description" content="Trop court">`).Status)
	require.Equal(StatusFixed, check(t, checkMetaDescription,
		`<meta name="description" content="Une description complète de la page qui dépasse les cinquante caractères requis.">`).Status)
}

func TestCheckH1Tag(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkH1Tag, "<body></body>").Status)
	require.Equal(StatusPartial, check(t, checkH1Tag, "<h1>Court</h1>").Status)
	require.Equal(StatusPartial, check(t, checkH1Tag,
		"<h1>Premier titre valide</h1><h1>Deuxième titre</h1>").Status)
	require.Equal(StatusFixed, check(t, checkH1Tag, "<h1>Un titre assez long</h1>").Status)
}

func TestCheckImageAlt(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkImageAlt, "<body><p>pas d'image</p></body>").Status)
	require.Equal(StatusUnfixed, check(t, checkImageAlt, `<img src="/a.jpg">`).Status)

	mixed := check(t, checkImageAlt, `<img src="/a.jpg"><img src="/b.jpg" alt="Produit vue de face">`)
	require.Equal(StatusPartial, mixed.Status)
	require.Contains(mixed.Reason, "1 image(s)")

	require.Equal(StatusPartial, check(t, checkImageAlt, `<img src="/a.jpg" alt="">`).Status)
	require.Equal(StatusFixed, check(t, checkImageAlt, `<img src="/a.jpg" alt="Produit vue de face">`).Status)
}

func TestCheckAnchorText(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkAnchorText, "<body></body>").Status)
	require.Equal(StatusUnfixed, check(t, checkAnchorText, `<a href="/p">cliquez ici</a>`).Status)

	mixed := check(t, checkAnchorText, `<a href="/p">ici</a><a href="/q">Voir le catalogue</a>`)
	require.Equal(StatusPartial, mixed.Status)

	require.Equal(StatusFixed, check(t, checkAnchorText, `<a href="/p">Voir le catalogue</a>`).Status)
}

func TestCheckContentLength(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkContentLength, "<p>quelques mots</p>").Status)
	require.Equal(StatusPartial, check(t, checkContentLength,
		"<p>"+strings.Repeat("mot ", 60)+"</p>").Status)
	require.Equal(StatusFixed, check(t, checkContentLength,
		"<p>"+strings.Repeat("mot ", 150)+"</p>").Status)
}

func TestCheckContentLengthIgnoresScripts(t *testing.T) {
	require := require.New(t)

	// Script bodies are not content.
	code := "<script>" + strings.Repeat("var x = 1; ", 100) + "</script><p>court</p>"
	require.Equal(StatusUnfixed, check(t, checkContentLength, code).Status)
}

func TestCheckSemanticHTML(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkSemanticHTML, "<div><p>rien</p></div>").Status)
	require.Equal(StatusPartial, check(t, checkSemanticHTML, "<header></header>").Status)
	require.Equal(StatusFixed, check(t, checkSemanticHTML,
		"<header></header><main></main><footer></footer>").Status)
}

func TestCheckSchemaMarkup(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkSchemaMarkup, "<body></body>").Status)
	require.Equal(StatusFixed, check(t, checkSchemaMarkup, `<div itemscope itemtype="x"></div>`).Status)
	require.Equal(StatusFixed, check(t, checkSchemaMarkup,
		`<script type="application/ld+json">{"@context": "https://schema.org"}</script>`).Status)
}

func TestCheckBreadcrumb(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkBreadcrumb, "<body></body>").Status)
	require.Equal(StatusFixed, check(t, checkBreadcrumb, `<nav aria-label="breadcrumb"></nav>`).Status)
	require.Equal(StatusFixed, check(t, checkBreadcrumb, "<nav><ol><li>Accueil</li></ol></nav>").Status)
}

func TestCheckReviews(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkReviews, "<body></body>").Status)
	require.Equal(StatusPartial, check(t, checkReviews, "<p>les avis de nos clients</p>").Status)
	require.Equal(StatusFixed, check(t, checkReviews, "<p>4.8 / 5 (127 avis)</p>").Status)
	require.Equal(StatusFixed, check(t, checkReviews,
		`<div itemprop="aggregateRating"></div>`).Status)
}

func TestCheckTimeTag(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkTimeTag, "<p>Publié le 15 mars 2024</p>").Status)
	require.Equal(StatusPartial, check(t, checkTimeTag, "<time>15 mars 2024</time>").Status)
	require.Equal(StatusFixed, check(t, checkTimeTag,
		`<time datetime="2024-03-15">15 mars 2024</time>`).Status)
}

func TestCheckFormLabels(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkFormLabels, "<body></body>").Status)
	require.Equal(StatusUnfixed, check(t, checkFormLabels,
		`<form><input type="text"></form>`).Status)
	require.Equal(StatusPartial, check(t, checkFormLabels,
		`<form><label for="a"></label><input id="a"><input id="b"></form>`).Status)
	require.Equal(StatusFixed, check(t, checkFormLabels,
		`<form><label for="a"></label><input id="a"></form>`).Status)
}

func TestCheckInternalLinks(t *testing.T) {
	require := require.New(t)

	require.Equal(StatusUnfixed, check(t, checkInternalLinks,
		`<a href="https://exemple.com">Externe</a>`).Status)
	require.Equal(StatusPartial, check(t, checkInternalLinks,
		`<a href="/page">Une page</a>`).Status)
	require.Equal(StatusFixed, check(t, checkInternalLinks,
		`<a href="/page">Une page</a><a href="/autre">Une autre</a>`).Status)
}

func TestCheckGenericFix(t *testing.T) {
	require := require.New(t)

	d := seo.Defect{ID: "x", Impact: -2, Solution: "<meta charset=\"UTF-8\">"}
	hit := checkGenericFix(NormalizeHTML(`<head><meta charset="UTF-8"></head>`), "", d)
	require.Equal(StatusFixed, hit.Status)

	miss := checkGenericFix(NormalizeHTML("<head></head>"), "", d)
	require.Equal(StatusUnfixed, miss.Status)

	noSolution := checkGenericFix("<body></body>", "", seo.Defect{ID: "y", Impact: -1})
	require.Equal(StatusUnfixed, noSolution.Status)
}
