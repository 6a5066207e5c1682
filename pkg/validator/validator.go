// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package validator scores a user-edited HTML document against the defects
// originally detected on the page. Each defect family has a structural
// checker; matches earn full or half credit and the aggregate drives the
// ranking improvement.
package validator

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/adxyz/serplab/pkg/seo"
)

// ErrMalformedDefect marks a defect record missing its identifier or
// carrying a non-negative impact.
var ErrMalformedDefect = errors.New("malformed defect record")

// Single-submission ranking improvement cap, in SERP positions.
const maxImprovement = 30

// ResultStatus distinguishes a scored validation from the resubmission
// guard.
type ResultStatus string

const (
	// ResultScored is a normal validation outcome.
	ResultScored ResultStatus = "scored"
	// ResultUnchanged means the submission was byte-identical to the
	// previous one; nothing was scored.
	ResultUnchanged ResultStatus = "unchanged"
)

// FeedbackType classes a feedback entry.
type FeedbackType string

const (
	FeedbackSuccess FeedbackType = "success"
	FeedbackWarning FeedbackType = "warning"
	FeedbackError   FeedbackType = "error"
)

// Feedback is one user-visible line about a defect.
type Feedback struct {
	Type     FeedbackType
	Message  string
	DefectID string
}

// FixedDefect is a fully corrected defect with the checker confidence.
type FixedDefect struct {
	Defect     seo.Defect
	Confidence float64
}

// PartialFix is a partially corrected defect with the blocking reason.
type PartialFix struct {
	Defect seo.Defect
	Reason string
}

// Result is the outcome of validating one submission.
type Result struct {
	Status         ResultStatus
	Fixed          []FixedDefect
	Partial        []PartialFix
	Remaining      []seo.Defect
	Score          int
	TotalPossible  int
	Percentage     int
	Improvements   int
	Feedback       []Feedback
	GeneralMessage string
}

var (
	spacesRe      = regexp.MustCompile(`\s+`)
	interTagRe    = regexp.MustCompile(`>\s+<`)
	beforeCloseRe = regexp.MustCompile(`\s+>`)
	afterOpenRe   = regexp.MustCompile(`<\s+`)
)

// NormalizeHTML lower-cases the markup, collapses runs of whitespace and
// strips inter-tag spacing so the validator never reacts to incidental
// formatting differences.
func NormalizeHTML(html string) string {
	s := strings.ToLower(html)
	s = spacesRe.ReplaceAllString(s, " ")
	s = interTagRe.ReplaceAllString(s, "><")
	s = beforeCloseRe.ReplaceAllString(s, ">")
	s = afterOpenRe.ReplaceAllString(s, "<")
	return strings.TrimSpace(s)
}

// Validate checks every defect against the user code and aggregates the fix
// score. Fully fixed defects earn their whole impact magnitude, partial
// fixes half (floored). referenceCode is the corrected document; it is kept
// in the contract for checkers that need a comparison baseline.
func Validate(userCode, referenceCode string, defects []seo.Defect) (*Result, error) {
	result := &Result{Status: ResultScored}

	for _, d := range defects {
		if d.ID == "" || d.Impact >= 0 {
			return nil, fmt.Errorf("%w: id=%q impact=%d", ErrMalformedDefect, d.ID, d.Impact)
		}
		result.TotalPossible += -d.Impact
	}

	normalizedUser := NormalizeHTML(userCode)
	normalizedRef := NormalizeHTML(referenceCode)

	for _, d := range defects {
		check := checkers[Categorize(d.ID)]
		finding := check(normalizedUser, normalizedRef, d)

		points := -d.Impact
		switch finding.Status {
		case StatusFixed:
			result.Fixed = append(result.Fixed, FixedDefect{Defect: d, Confidence: finding.Confidence})
			result.Score += points
			result.Improvements++
			result.Feedback = append(result.Feedback, Feedback{
				Type:     FeedbackSuccess,
				Message:  fmt.Sprintf("%s : Corrigé avec succès ! (+%d points)", d.Title, points),
				DefectID: d.ID,
			})
		case StatusPartial:
			result.Partial = append(result.Partial, PartialFix{Defect: d, Reason: finding.Reason})
			half := points / 2
			result.Score += half
			result.Feedback = append(result.Feedback, Feedback{
				Type:     FeedbackWarning,
				Message:  fmt.Sprintf("%s : Partiellement corrigé (+%d points). %s", d.Title, half, finding.Reason),
				DefectID: d.ID,
			})
		default:
			result.Remaining = append(result.Remaining, d)
			reason := finding.Reason
			if reason == "" {
				reason = "Vérifiez votre code."
			}
			result.Feedback = append(result.Feedback, Feedback{
				Type:     FeedbackError,
				Message:  fmt.Sprintf("%s : Non corrigé. %s", d.Title, reason),
				DefectID: d.ID,
			})
		}
	}

	if result.TotalPossible > 0 {
		result.Percentage = int(math.Round(float64(result.Score) / float64(result.TotalPossible) * 100))
	}

	result.GeneralMessage = generalMessage(result.Percentage)

	return result, nil
}

// ValidateSubmission wraps Validate with the resubmission guard: a
// submission byte-identical to the previous one yields the distinct
// unchanged result instead of a score.
func ValidateSubmission(userCode, lastSubmitted, referenceCode string, defects []seo.Defect) (*Result, error) {
	if lastSubmitted != "" && userCode == lastSubmitted {
		return &Result{
			Status:         ResultUnchanged,
			GeneralMessage: "⚠️ Aucune modification détectée depuis la dernière soumission.",
			Feedback: []Feedback{{
				Type:    FeedbackWarning,
				Message: "Vous devez modifier le code avant de soumettre à nouveau.",
			}},
		}, nil
	}
	return Validate(userCode, referenceCode, defects)
}

// generalMessage maps the fix percentage to its user-visible tier. The
// thresholds are part of the player-facing contract.
func generalMessage(percentage int) string {
	switch {
	case percentage == 100:
		return "🎉 Parfait ! Toutes les erreurs ont été corrigées !"
	case percentage >= 75:
		return "✅ Excellent travail ! Encore quelques détails à peaufiner."
	case percentage >= 50:
		return "👍 Bon début ! Continuez vos corrections."
	case percentage > 0:
		return "💪 Vous êtes sur la bonne voie. Plusieurs erreurs restent à corriger."
	default:
		return "⚠️ Aucune correction détectée. Consultez les indices et modifiez le code."
	}
}

// CalculateNewRanking derives the new SERP position from a validation
// result. Improvement is proportional to the fix ratio and capped at 30
// positions per submission; the result never goes above position 1.
func CalculateNewRanking(result *Result, currentRanking int) int {
	if result.TotalPossible <= 0 {
		return currentRanking
	}

	ratio := float64(result.Score) / float64(result.TotalPossible)
	if ratio > 1 {
		ratio = 1
	}
	improvement := int(math.Floor(maxImprovement * ratio))

	newRanking := currentRanking - improvement
	if newRanking < 1 {
		newRanking = 1
	}
	return newRanking
}

// ReportSummary counts the submission outcome.
type ReportSummary struct {
	Fixed      int
	Partial    int
	Remaining  int
	Score      int
	MaxScore   int
	Percentage int
}

// ReportRanking carries the position change.
type ReportRanking struct {
	Old         int
	New         int
	Improvement int
}

// Report is the plain summary handed back to the caller for display.
type Report struct {
	ID             uuid.UUID
	Summary        ReportSummary
	Ranking        ReportRanking
	Feedback       []Feedback
	GeneralMessage string
}

// GenerateReport assembles the submission report. Pure data shuffling, no
// new scoring logic.
func GenerateReport(result *Result, oldRanking, newRanking int) *Report {
	return &Report{
		ID: uuid.New(),
		Summary: ReportSummary{
			Fixed:      len(result.Fixed),
			Partial:    len(result.Partial),
			Remaining:  len(result.Remaining),
			Score:      result.Score,
			MaxScore:   result.TotalPossible,
			Percentage: result.Percentage,
		},
		Ranking: ReportRanking{
			Old:         oldRanking,
			New:         newRanking,
			Improvement: oldRanking - newRanking,
		},
		Feedback:       result.Feedback,
		GeneralMessage: result.GeneralMessage,
	}
}
