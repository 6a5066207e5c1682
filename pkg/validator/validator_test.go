// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package validator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adxyz/serplab/pkg/seo"
)

func titleDefect() seo.Defect {
	return seo.Defect{
		ID:       "no-title",
		Severity: seo.SeverityCritical,
		Title:    "Balise <title> manquante",
		Impact:   -10,
	}
}

func h1Defect() seo.Defect {
	return seo.Defect{
		ID:       "no-h1",
		Severity: seo.SeverityCritical,
		Title:    "Pas de balise H1",
		Impact:   -7,
	}
}

func TestNormalizeHTML(t *testing.T) {
	require := require.New(t)

	in := "  <HTML>\n  <Body>   <p>Texte</p>\n</Body>  </HTML> "
	require.Equal("<html><body><p>texte</p></body></html>", NormalizeHTML(in))
}

func TestValidateAllFixed(t *testing.T) {
	require := require.New(t)

	user := `<html><head>
<title>Boutique high-tech de confiance en ligne</title>
</head><body>
<h1>Votre boutique high-tech</h1>
<p>Contenu</p>
</body></html>`

	result, err := Validate(user, user, []seo.Defect{titleDefect(), h1Defect()})
	require.NoError(err)

	require.Equal(ResultScored, result.Status)
	require.Len(result.Fixed, 2)
	require.Empty(result.Partial)
	require.Empty(result.Remaining)
	require.Equal(17, result.Score)
	require.Equal(17, result.TotalPossible)
	require.Equal(100, result.Percentage)
	require.Equal(2, result.Improvements)
	require.Contains(result.GeneralMessage, "Parfait")
}

func TestValidatePartialCredit(t *testing.T) {
	require := require.New(t)

	// Title present but under 30 characters: half the impact, floored.
	user := `<html><head><title>Boutique tech</title></head><body><p>x</p></body></html>`

	result, err := Validate(user, user, []seo.Defect{titleDefect()})
	require.NoError(err)

	require.Len(result.Partial, 1)
	require.Equal(5, result.Score)
	require.Equal(10, result.TotalPossible)
	require.Equal(50, result.Percentage)
	require.Equal(FeedbackWarning, result.Feedback[0].Type)
}

func TestValidateNothingFixed(t *testing.T) {
	require := require.New(t)

	user := `<html><head></head><body><p>rien</p></body></html>`

	result, err := Validate(user, user, []seo.Defect{titleDefect(), h1Defect()})
	require.NoError(err)

	require.Empty(result.Fixed)
	require.Len(result.Remaining, 2)
	require.Zero(result.Score)
	require.Zero(result.Percentage)
	require.Contains(result.GeneralMessage, "Aucune correction")
	for _, fb := range result.Feedback {
		require.Equal(FeedbackError, fb.Type)
	}
}

func TestValidateMalformedDefect(t *testing.T) {
	require := require.New(t)

	_, err := Validate("<html></html>", "<html></html>", []seo.Defect{{ID: "", Impact: -5}})
	require.ErrorIs(err, ErrMalformedDefect)

	_, err = Validate("<html></html>", "<html></html>", []seo.Defect{{ID: "no-title", Impact: 5}})
	require.ErrorIs(err, ErrMalformedDefect)
}

func TestValidateEmptyDefectList(t *testing.T) {
	require := require.New(t)

	result, err := Validate("<html></html>", "<html></html>", nil)
	require.NoError(err)
	require.Zero(result.TotalPossible)
	require.Zero(result.Percentage)
}

func TestValidateSubmissionUnchanged(t *testing.T) {
	require := require.New(t)

	code := `<html><head></head><body></body></html>`

	result, err := ValidateSubmission(code, code, code, []seo.Defect{titleDefect()})
	require.NoError(err)

	require.Equal(ResultUnchanged, result.Status)
	require.Zero(result.Score)
	require.Contains(result.GeneralMessage, "Aucune modification")
}

func TestValidateSubmissionFirstTime(t *testing.T) {
	require := require.New(t)

	code := `<html><head></head><body></body></html>`

	// No previous submission: a normal scoring pass.
	result, err := ValidateSubmission(code, "", code, []seo.Defect{titleDefect()})
	require.NoError(err)
	require.Equal(ResultScored, result.Status)
}

func TestGeneralMessageTiers(t *testing.T) {
	require := require.New(t)

	require.Contains(generalMessage(100), "Parfait")
	require.Contains(generalMessage(80), "Excellent")
	require.Contains(generalMessage(60), "Bon début")
	require.Contains(generalMessage(10), "bonne voie")
	require.Contains(generalMessage(0), "Aucune correction")
}

func TestCalculateNewRanking(t *testing.T) {
	require := require.New(t)

	full := &Result{Score: 20, TotalPossible: 20}
	require.Equal(20, CalculateNewRanking(full, 50))

	half := &Result{Score: 10, TotalPossible: 20}
	require.Equal(35, CalculateNewRanking(half, 50))

	// The improvement never pushes past position 1.
	require.Equal(1, CalculateNewRanking(full, 10))

	// Nothing to fix means nothing moves.
	empty := &Result{}
	require.Equal(42, CalculateNewRanking(empty, 42))
}

func TestGenerateReport(t *testing.T) {
	require := require.New(t)

	result := &Result{
		Status:        ResultScored,
		Fixed:         []FixedDefect{{Defect: titleDefect(), Confidence: 1}},
		Score:         10,
		TotalPossible: 17,
		Percentage:    59,
	}

	report := GenerateReport(result, 50, 33)
	require.Equal(1, report.Summary.Fixed)
	require.Equal(10, report.Summary.Score)
	require.Equal(17, report.Summary.MaxScore)
	require.Equal(50, report.Ranking.Old)
	require.Equal(33, report.Ranking.New)
	require.Equal(17, report.Ranking.Improvement)
}
