// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package seo

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// AuditResult partitions the detected defects by severity. Score is
// 100 plus the sum of all (negative) impacts, clamped to [0, 100].
type AuditResult struct {
	Critical  []Defect
	Important []Defect
	Minor     []Defect
	Score     int
}

// Defects returns all defects in severity order.
func (r *AuditResult) Defects() []Defect {
	out := make([]Defect, 0, len(r.Critical)+len(r.Important)+len(r.Minor))
	out = append(out, r.Critical...)
	out = append(out, r.Important...)
	out = append(out, r.Minor...)
	return out
}

var (
	titleRe    = regexp.MustCompile(`<title>(.+?)</title>`)
	metaDescRe = regexp.MustCompile(`<meta\s+name="description"\s+content="(.+?)"`)
	h1Re       = regexp.MustCompile(`<h1[^>]*>(.+?)</h1>`)
	imgRe      = regexp.MustCompile(`<img[^>]*>`)
	imgAltRe   = regexp.MustCompile(`alt="(.+?)"`)
	anchorRe   = regexp.MustCompile(`<a[^>]*>(.+?)</a>`)
	bodyRe     = regexp.MustCompile(`(?s)<body[^>]*>(.*?)</body>`)
	tagRe      = regexp.MustCompile(`<[^>]+>`)
)

// AuditPage runs the static SEO rule set against raw markup. The rules are
// independent and additive; no rule suppresses another, and the same input
// always yields the same result.
func AuditPage(html string) *AuditResult {
	result := &AuditResult{Score: 100}

	add := func(d Defect) {
		switch d.Severity {
		case SeverityCritical:
			result.Critical = append(result.Critical, d)
		case SeverityImportant:
			result.Important = append(result.Important, d)
		default:
			result.Minor = append(result.Minor, d)
		}
	}

	// Title tag: absence is critical, bad length is important.
	if m := titleRe.FindStringSubmatch(html); m == nil {
		add(Defect{
			ID:          "no-title",
			Severity:    SeverityCritical,
			Title:       "Balise <title> manquante",
			Description: "La balise title est essentielle pour le SEO. Elle apparaît dans les résultats de recherche.",
			Impact:      -10,
			FixCost:     1,
			Line:        lineOf(html, "<head>"),
		})
	} else {
		length := utf8.RuneCountInString(m[1])
		if length < 30 {
			add(Defect{
				ID:          "title-too-short",
				Severity:    SeverityImportant,
				Title:       "Title trop court",
				Description: fmt.Sprintf("Le title fait %d caractères. Optimal : 50-60 caractères.", length),
				Impact:      -3,
				FixCost:     1,
				Line:        lineOf(html, "<title>"),
			})
		} else if length > 60 {
			add(Defect{
				ID:          "title-too-long",
				Severity:    SeverityImportant,
				Title:       "Title trop long",
				Description: fmt.Sprintf("Le title fait %d caractères. Il sera tronqué dans les résultats.", length),
				Impact:      -2,
				FixCost:     1,
				Line:        lineOf(html, "<title>"),
			})
		}
	}

	// Meta description.
	if !metaDescRe.MatchString(html) {
		add(Defect{
			ID:          "no-meta-description",
			Severity:    SeverityCritical,
			Title:       "Meta description manquante",
			Description: "Google va générer un snippet aléatoire depuis votre contenu.",
			Impact:      -8,
			FixCost:     1,
			Line:        lineOf(html, "<head>"),
		})
	}

	// Exactly one H1.
	h1s := h1Re.FindAllString(html, -1)
	if len(h1s) == 0 {
		add(Defect{
			ID:          "no-h1",
			Severity:    SeverityCritical,
			Title:       "Pas de balise H1",
			Description: "Le H1 structure votre page et indique le sujet principal à Google.",
			Impact:      -7,
			FixCost:     1,
			Line:        lineOf(html, "<body>"),
		})
	} else if len(h1s) > 1 {
		add(Defect{
			ID:          "multiple-h1",
			Severity:    SeverityImportant,
			Title:       "Plusieurs H1 détectés",
			Description: fmt.Sprintf("%d H1 trouvés. Il devrait y en avoir un seul par page.", len(h1s)),
			Impact:      -4,
			FixCost:     1,
			Line:        lineOf(html, "<h1"),
		})
	}

	// Images missing a non-empty alt; one aggregated defect.
	missingAlt := 0
	for _, img := range imgRe.FindAllString(html, -1) {
		if !imgAltRe.MatchString(img) {
			missingAlt++
		}
	}
	if missingAlt > 0 {
		add(Defect{
			ID:          "images-without-alt",
			Severity:    SeverityImportant,
			Title:       fmt.Sprintf("%d image(s) sans attribut alt", missingAlt),
			Description: "Les attributs alt aident Google à comprendre vos images.",
			Impact:      -2 * missingAlt,
			FixCost:     1,
			Line:        lineOf(html, "<img"),
		})
	}

	// Non-descriptive anchors; one aggregated defect.
	badLinks := 0
	for _, m := range anchorRe.FindAllStringSubmatch(html, -1) {
		text := strings.ToLower(m[1])
		if strings.Contains(text, "cliquez ici") || strings.Contains(text, "ici") || utf8.RuneCountInString(text) < 3 {
			badLinks++
		}
	}
	if badLinks > 0 {
		add(Defect{
			ID:          "bad-anchor-text",
			Severity:    SeverityMinor,
			Title:       fmt.Sprintf("%d lien(s) avec texte non descriptif", badLinks),
			Description: "Utilisez des textes de liens descriptifs (évitez \"cliquez ici\").",
			Impact:      -1 * badLinks,
			FixCost:     0.5,
			Line:        lineOf(html, "<a"),
		})
	}

	// Thin content: body text under 300 words.
	if m := bodyRe.FindStringSubmatch(html); m != nil {
		text := strings.TrimSpace(tagRe.ReplaceAllString(m[1], ""))
		wordCount := len(strings.Fields(text))
		if wordCount < 300 {
			add(Defect{
				ID:          "thin-content",
				Severity:    SeverityImportant,
				Title:       "Contenu trop court",
				Description: fmt.Sprintf("%d mots détectés. Recommandé : 300+ mots minimum.", wordCount),
				Impact:      -5,
				FixCost:     2,
				Line:        lineOf(html, "<body>"),
			})
		}
	}

	// Semantic structure.
	if !strings.Contains(html, "<header>") {
		add(Defect{
			ID:          "no-header",
			Severity:    SeverityMinor,
			Title:       "Pas de balise <header>",
			Description: "Les balises sémantiques HTML5 améliorent la structure.",
			Impact:      -1,
			FixCost:     0.5,
			Line:        lineOf(html, "<body>"),
		})
	}
	if !strings.Contains(html, "<main>") {
		add(Defect{
			ID:          "no-main",
			Severity:    SeverityMinor,
			Title:       "Pas de balise <main>",
			Description: "La balise <main> identifie le contenu principal.",
			Impact:      -1,
			FixCost:     0.5,
			Line:        lineOf(html, "<body>"),
		})
	}

	total := 0
	for _, d := range result.Defects() {
		total += d.Impact
	}
	score := 100 + total
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Score = score

	return result
}

// lineOf returns the 1-indexed line containing the first occurrence of
// search, or 1 when absent.
func lineOf(html, search string) int {
	for i, line := range strings.Split(html, "\n") {
		if strings.Contains(line, search) {
			return i + 1
		}
	}
	return 1
}
