// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/adxyz/serplab/pkg/seo"
)

// FixStatus is the outcome of one defect check.
type FixStatus string

const (
	StatusFixed   FixStatus = "fixed"
	StatusPartial FixStatus = "partial"
	StatusUnfixed FixStatus = "unfixed"
)

// Finding is the result of checking one defect against the user code.
type Finding struct {
	Status     FixStatus
	Confidence float64 // set when fixed
	Reason     string  // set when partial or unfixed
}

func fixed(confidence float64) Finding {
	return Finding{Status: StatusFixed, Confidence: confidence}
}

func partial(reason string) Finding {
	return Finding{Status: StatusPartial, Reason: reason}
}

func unfixed(reason string) Finding {
	return Finding{Status: StatusUnfixed, Reason: reason}
}

// checkFunc inspects normalized user code for one defect family. The
// normalized reference document is available for checkers that need a
// comparison baseline.
type checkFunc func(userCode, refCode string, defect seo.Defect) Finding

// checkers is the dispatch table; CategoryGeneric is the fallback.
var checkers = map[Category]checkFunc{
	CategoryTitle:         checkTitleTag,
	CategoryMeta:          checkMetaDescription,
	CategoryH1:            checkH1Tag,
	CategoryImageAlt:      checkImageAlt,
	CategoryAnchorText:    checkAnchorText,
	CategoryContentLength: checkContentLength,
	CategorySemantic:      checkSemanticHTML,
	CategorySchema:        checkSchemaMarkup,
	CategoryBreadcrumb:    checkBreadcrumb,
	CategoryReviews:       checkReviews,
	CategoryTimeTag:       checkTimeTag,
	CategoryFormLabels:    checkFormLabels,
	CategoryInternalLinks: checkInternalLinks,
	CategoryGeneric:       checkGenericFix,
}

var (
	vTitleRe    = regexp.MustCompile(`<title>(.*?)</title>`)
	vMetaRe     = regexp.MustCompile(`<meta\s*name=["']description["']\s*content=["'](.*?)["']`)
	vH1Re       = regexp.MustCompile(`<h1[^>]*>(.*?)</h1>`)
	vH1OpenRe   = regexp.MustCompile(`<h1[^>]*>`)
	vImgRe      = regexp.MustCompile(`<img[^>]*>`)
	vAltRe      = regexp.MustCompile(`alt=["'](.*?)["']`)
	vAnchorRe   = regexp.MustCompile(`<a[^>]*>(.*?)</a>`)
	vHrefRe     = regexp.MustCompile(`<a[^>]*href=["']([^"']*)["'][^>]*>`)
	vScriptRe   = regexp.MustCompile(`(?s)<script[^>]*>.*?</script>`)
	vStyleRe    = regexp.MustCompile(`(?s)<style[^>]*>.*?</style>`)
	vTagRe      = regexp.MustCompile(`<[^>]+>`)
	vTimeAttrRe = regexp.MustCompile(`<time[^>]*datetime=`)
	vFieldRe    = regexp.MustCompile(`<(input|textarea|select)[^>]*>`)
	vLabelForRe = regexp.MustCompile(`<label[^>]*for=`)
)

func checkTitleTag(userCode, _ string, _ seo.Defect) Finding {
	m := vTitleRe.FindStringSubmatch(userCode)
	if m == nil {
		return unfixed("Balise <title> toujours manquante")
	}

	title := strings.TrimSpace(m[1])
	switch {
	case title == "":
		return unfixed("La balise <title> est vide")
	case utf8.RuneCountInString(title) < 30:
		return partial("Le titre est trop court (minimum 30 caractères recommandés)")
	case utf8.RuneCountInString(title) > 60:
		return partial("Le titre est trop long (maximum 60 caractères recommandés)")
	}
	return fixed(1.0)
}

func checkMetaDescription(userCode, _ string, _ seo.Defect) Finding {
	m := vMetaRe.FindStringSubmatch(userCode)
	if m == nil {
		return unfixed("Meta description toujours manquante")
	}

	desc := strings.TrimSpace(m[1])
	switch {
	case desc == "":
		return unfixed("La meta description est vide")
	case utf8.RuneCountInString(desc) < 50:
		return partial("La meta description est trop courte (minimum 50 caractères)")
	case utf8.RuneCountInString(desc) > 160:
		return partial("La meta description est trop longue (maximum 160 caractères)")
	}
	return fixed(1.0)
}

func checkH1Tag(userCode, _ string, _ seo.Defect) Finding {
	m := vH1Re.FindStringSubmatch(userCode)
	if m == nil {
		return unfixed("Balise <h1> toujours manquante")
	}

	h1 := strings.TrimSpace(m[1])
	if h1 == "" {
		return unfixed("Le <h1> est vide")
	}
	if utf8.RuneCountInString(h1) < 10 {
		return partial("Le <h1> est trop court")
	}
	if len(vH1OpenRe.FindAllString(userCode, -1)) > 1 {
		return partial("Il ne doit y avoir qu'un seul <h1> par page")
	}
	return fixed(1.0)
}

func checkImageAlt(userCode, _ string, _ seo.Defect) Finding {
	images := vImgRe.FindAllString(userCode, -1)
	if len(images) == 0 {
		return unfixed("Aucune balise <img> trouvée")
	}

	withoutAlt := 0
	emptyAlt := 0
	for _, img := range images {
		if !strings.Contains(img, "alt=") {
			withoutAlt++
			continue
		}
		if m := vAltRe.FindStringSubmatch(img); m != nil && strings.TrimSpace(m[1]) == "" {
			emptyAlt++
		}
	}

	if withoutAlt > 0 {
		reason := fmt.Sprintf("%d image(s) sans attribut alt", withoutAlt)
		if withoutAlt < len(images) {
			return partial(reason)
		}
		return unfixed(reason)
	}
	if emptyAlt > 0 {
		return partial(fmt.Sprintf("%d image(s) avec alt vide", emptyAlt))
	}
	return fixed(1.0)
}

func checkAnchorText(userCode, _ string, _ seo.Defect) Finding {
	links := vAnchorRe.FindAllStringSubmatch(userCode, -1)
	if len(links) == 0 {
		return unfixed("Aucun lien trouvé")
	}

	bad := 0
	for _, link := range links {
		text := strings.TrimSpace(link[1])
		if text == "cliquez ici" || text == "ici" || text == "lire plus" || utf8.RuneCountInString(text) < 3 {
			bad++
		}
	}

	if bad > 0 {
		reason := fmt.Sprintf("%d lien(s) avec ancre non descriptive", bad)
		if bad < len(links) {
			return partial(reason)
		}
		return unfixed(reason)
	}
	return fixed(1.0)
}

func checkContentLength(userCode, _ string, _ seo.Defect) Finding {
	text := vScriptRe.ReplaceAllString(userCode, "")
	text = vStyleRe.ReplaceAllString(text, "")
	text = vTagRe.ReplaceAllString(text, " ")
	wordCount := len(strings.Fields(text))

	if wordCount < 50 {
		return unfixed(fmt.Sprintf("Contenu trop court : %d mots (minimum 50)", wordCount))
	}
	if wordCount < 100 {
		return partial(fmt.Sprintf("Contenu un peu court : %d mots (recommandé 100+)", wordCount))
	}
	return fixed(1.0)
}

var semanticTags = []string{"header", "nav", "main", "article", "section", "aside", "footer"}

func checkSemanticHTML(userCode, _ string, _ seo.Defect) Finding {
	found := 0
	for _, tag := range semanticTags {
		if strings.Contains(userCode, "<"+tag) {
			found++
		}
	}

	if found == 0 {
		return unfixed("Aucune balise sémantique HTML5 trouvée")
	}
	if found < 3 {
		return partial(fmt.Sprintf("Seulement %d balise(s) sémantique(s) trouvée(s)", found))
	}
	return fixed(1.0)
}

func checkSchemaMarkup(userCode, _ string, _ seo.Defect) Finding {
	if strings.Contains(userCode, "itemscope") || strings.Contains(userCode, "schema.org") {
		return fixed(1.0)
	}
	return unfixed("Aucun Schema.org markup trouvé")
}

func checkBreadcrumb(userCode, _ string, _ seo.Defect) Finding {
	if strings.Contains(userCode, "breadcrumb") ||
		(strings.Contains(userCode, "<nav") && strings.Contains(userCode, "<ol")) {
		return fixed(1.0)
	}
	return unfixed("Fil d'ariane (breadcrumb) non trouvé")
}

var ratingValueRe = regexp.MustCompile(`\d(\.\d)?\s*/\s*5`)

func checkReviews(userCode, _ string, _ seo.Defect) Finding {
	if strings.Contains(userCode, "aggregaterating") ||
		strings.Contains(userCode, `itemprop="review`) ||
		ratingValueRe.MatchString(userCode) {
		return fixed(0.9)
	}
	if strings.Contains(userCode, "avis") || strings.Contains(userCode, "review") {
		return partial("Avis présents mais non balisés (Schema.org AggregateRating recommandé)")
	}
	return unfixed("Aucun avis client trouvé")
}

func checkTimeTag(userCode, _ string, _ seo.Defect) Finding {
	if vTimeAttrRe.MatchString(userCode) {
		return fixed(1.0)
	}
	if strings.Contains(userCode, "<time") {
		return partial("Balise <time> sans attribut datetime")
	}
	return unfixed("Balise <time> manquante pour la date de publication")
}

func checkFormLabels(userCode, _ string, _ seo.Defect) Finding {
	fields := vFieldRe.FindAllString(userCode, -1)
	if len(fields) == 0 {
		return unfixed("Aucun champ de formulaire trouvé")
	}

	labels := len(vLabelForRe.FindAllString(userCode, -1))
	if labels == 0 {
		return unfixed("Aucun <label> associé aux champs du formulaire")
	}
	if labels < len(fields) {
		return partial(fmt.Sprintf("%d champ(s) sans <label> associé", len(fields)-labels))
	}
	return fixed(1.0)
}

func checkInternalLinks(userCode, _ string, _ seo.Defect) Finding {
	links := vHrefRe.FindAllStringSubmatch(userCode, -1)

	internal := 0
	for _, link := range links {
		href := link[1]
		if strings.HasPrefix(href, "/") || strings.HasPrefix(href, "#") || !strings.HasPrefix(href, "http") {
			internal++
		}
	}

	if internal == 0 {
		return unfixed("Aucun lien interne trouvé")
	}
	if internal < 2 {
		return partial("Pas assez de liens internes (minimum 2 recommandés)")
	}
	return fixed(1.0)
}

// checkGenericFix tests literal presence of the defect's recorded solution
// snippet in the user code.
func checkGenericFix(userCode, _ string, defect seo.Defect) Finding {
	if defect.Solution != "" {
		if strings.Contains(userCode, NormalizeHTML(defect.Solution)) {
			return fixed(0.9)
		}
	}
	return unfixed("Correction non détectée")
}
