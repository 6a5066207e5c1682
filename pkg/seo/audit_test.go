// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// cleanPage builds a document that passes every audit rule.
func cleanPage() string {
	words := strings.Repeat("contenu pertinent pour le lecteur ", 70)
	return `<html>
<head>
<title>Purificateur d'air japonais - Guide complet 2024</title>
<meta name="description" content="Tout savoir sur les purificateurs d'air japonais.">
</head>
<body>
<header><nav><a href="/">Accueil du site</a></nav></header>
<main>
<h1>Purificateur d'air japonais</h1>
<p>` + words + `</p>
<a href="/guide">Consulter le guide complet</a>
</main>
</body>
</html>`
}

func TestAuditPerfectPage(t *testing.T) {
	require := require.New(t)

	result := AuditPage(cleanPage())
	require.Equal(100, result.Score)
	require.Empty(result.Defects())
}

func TestAuditMissingTitleAndMeta(t *testing.T) {
	require := require.New(t)

	html := strings.Replace(cleanPage(),
		`<title>Purificateur d'air japonais - Guide complet 2024</title>`, "", 1)
	html = strings.Replace(html,
		`<meta name="description" content="Tout savoir sur les purificateurs d'air japonais.">`, "", 1)

	result := AuditPage(html)

	ids := defectIDs(result)
	require.Contains(ids, "no-title")
	require.Contains(ids, "no-meta-description")
	require.Len(result.Critical, 2)
	// 100 - 10 - 8.
	require.Equal(82, result.Score)
}

func TestAuditTitleLength(t *testing.T) {
	require := require.New(t)

	short := strings.Replace(cleanPage(),
		"<title>Purificateur d'air japonais - Guide complet 2024</title>",
		"<title>Purificateur</title>", 1)
	result := AuditPage(short)
	require.Contains(defectIDs(result), "title-too-short")
	require.Equal(97, result.Score)

	long := strings.Replace(cleanPage(),
		"<title>Purificateur d'air japonais - Guide complet 2024</title>",
		"<title>Purificateur d'air japonais - Le guide complet et détaillé pour bien choisir en 2024</title>", 1)
	result = AuditPage(long)
	require.Contains(defectIDs(result), "title-too-long")
	require.Equal(98, result.Score)
}

func TestAuditH1Rules(t *testing.T) {
	require := require.New(t)

	missing := strings.Replace(cleanPage(),
		"<h1>Purificateur d'air japonais</h1>", "", 1)
	result := AuditPage(missing)
	require.Contains(defectIDs(result), "no-h1")
	require.Equal(93, result.Score)

	double := strings.Replace(cleanPage(),
		"<h1>Purificateur d'air japonais</h1>",
		"<h1>Purificateur d'air japonais</h1><h1>Deuxième titre</h1>", 1)
	result = AuditPage(double)
	require.Contains(defectIDs(result), "multiple-h1")
	require.Equal(96, result.Score)
}

func TestAuditImagesWithoutAlt(t *testing.T) {
	require := require.New(t)

	html := strings.Replace(cleanPage(), "<main>",
		`<main><img src="/a.jpg"><img src="/b.jpg"><img src="/c.jpg" alt="Purificateur vue de face">`, 1)
	result := AuditPage(html)

	ids := defectIDs(result)
	require.Contains(ids, "images-without-alt")
	for _, d := range result.Important {
		if d.ID == "images-without-alt" {
			// Two images lack alt, two points each.
			require.Equal(-4, d.Impact)
		}
	}
	require.Equal(96, result.Score)
}

func TestAuditBadAnchors(t *testing.T) {
	require := require.New(t)

	html := strings.Replace(cleanPage(),
		`<a href="/guide">Consulter le guide complet</a>`,
		`<a href="/guide">cliquez ici</a><a href="/faq">OK</a>`, 1)
	result := AuditPage(html)

	ids := defectIDs(result)
	require.Contains(ids, "bad-anchor-text")
	for _, d := range result.Minor {
		if d.ID == "bad-anchor-text" {
			require.Equal(-2, d.Impact)
		}
	}
	require.Equal(98, result.Score)
}

func TestAuditThinContent(t *testing.T) {
	require := require.New(t)

	html := strings.Replace(cleanPage(),
		strings.Repeat("contenu pertinent pour le lecteur ", 70),
		"contenu court", 1)
	result := AuditPage(html)

	require.Contains(defectIDs(result), "thin-content")
	require.Equal(95, result.Score)
}

func TestAuditSemanticStructure(t *testing.T) {
	require := require.New(t)

	html := cleanPage()
	html = strings.Replace(html, "<header>", "<div>", 1)
	html = strings.Replace(html, "</header>", "</div>", 1)
	html = strings.Replace(html, "<main>", "<div>", 1)
	html = strings.Replace(html, "</main>", "</div>", 1)

	result := AuditPage(html)
	ids := defectIDs(result)
	require.Contains(ids, "no-header")
	require.Contains(ids, "no-main")
	require.Equal(98, result.Score)
}

func TestAuditDeterministic(t *testing.T) {
	require := require.New(t)

	html := `<html><head></head><body><p>court</p></body></html>`
	first := AuditPage(html)
	second := AuditPage(html)

	require.Equal(first.Score, second.Score)
	require.Equal(len(first.Defects()), len(second.Defects()))
}

func TestAuditScoreFloor(t *testing.T) {
	require := require.New(t)

	// Everything wrong at once, with enough alt-less images to push the raw
	// sum below zero.
	html := `<html><head></head><body>` +
		strings.Repeat(`<img src="/x.jpg">`, 40) +
		`<a href="/a">ici</a></body></html>`

	result := AuditPage(html)
	require.Equal(0, result.Score)
}

func defectIDs(r *AuditResult) []string {
	var ids []string
	for _, d := range r.Defects() {
		ids = append(ids, d.ID)
	}
	return ids
}
