// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"

	"github.com/adxyz/serplab/pkg/campaign"
	"github.com/adxyz/serplab/pkg/event"
	"github.com/adxyz/serplab/pkg/keyword"
	"github.com/adxyz/serplab/pkg/page"
	"github.com/adxyz/serplab/pkg/seo"
	"github.com/adxyz/serplab/pkg/validator"
)

var errMissingField = errors.New("missing required field")

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

type keywordResponse struct {
	keyword.Keyword
	Difficulty int `json:"difficulty"`
}

func (s *Server) handleKeywords(w http.ResponseWriter, _ *http.Request) {
	out := make([]keywordResponse, 0, len(keyword.Catalog))
	for _, kw := range keyword.Catalog {
		out = append(out, keywordResponse{Keyword: kw, Difficulty: keyword.Difficulty(kw)})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleKeyword(w http.ResponseWriter, r *http.Request) {
	kw, err := keyword.ByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, keywordResponse{Keyword: kw, Difficulty: keyword.Difficulty(kw)})
}

type pageSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Difficulty int    `json:"difficulty"`
	IdealScore int    `json:"ideal_score"`
	Defects    int    `json:"defects"`
}

func (s *Server) handlePages(w http.ResponseWriter, _ *http.Request) {
	out := make([]pageSummary, 0, len(page.Catalog))
	for _, id := range page.IDs() {
		p := page.Catalog[id]
		out = append(out, pageSummary{
			ID:         p.ID,
			Name:       p.Name,
			Type:       p.Type,
			Difficulty: p.Difficulty,
			IdealScore: p.IdealScore,
			Defects:    len(p.Defects),
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	p, err := page.ByID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

type auctionRequest struct {
	KeywordID string          `json:"keyword_id"`
	MaxBid    decimal.Decimal `json:"max_bid"`
}

func (s *Server) handleAuction(w http.ResponseWriter, r *http.Request) {
	var req auctionRequest
	if !decodeBody(w, r, &req) {
		return
	}
	kw, err := keyword.ByID(req.KeywordID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	s.mu.Lock()
	res := s.campaigns.RunAuction(kw, req.MaxBid)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, res)
}

type dayRequest struct {
	Campaigns []struct {
		KeywordID        string          `json:"keyword_id"`
		MaxBid           decimal.Decimal `json:"max_bid"`
		LandingPageScore int             `json:"landing_page_score"`
	} `json:"campaigns"`
}

type dayResponse struct {
	Day          *campaign.DayResult `json:"day"`
	QualityScore float64             `json:"quality_score"`
	Turn         int                 `json:"turn"`
}

func (s *Server) handleSimulateDay(w http.ResponseWriter, r *http.Request) {
	var req dayRequest
	if !decodeBody(w, r, &req) {
		return
	}

	campaigns := make([]campaign.Campaign, 0, len(req.Campaigns))
	for _, c := range req.Campaigns {
		kw, err := keyword.ByID(c.KeywordID)
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		campaigns = append(campaigns, campaign.Campaign{
			Keyword:          kw,
			MaxBid:           c.MaxBid,
			LandingPageScore: c.LandingPageScore,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	day, err := s.campaigns.SimulateDay(campaigns)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	s.campaigns.UpdateQualityScore(day)
	s.turn++
	s.activeEvents = event.UpdateActive(s.activeEvents)

	writeJSON(w, http.StatusOK, dayResponse{
		Day:          day,
		QualityScore: s.campaigns.QualityScore(),
		Turn:         s.turn,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	history := s.campaigns.History()
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, history)
}

type auditRequest struct {
	HTML string `json:"html"`
}

func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	var req auditRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.HTML == "" {
		writeError(w, http.StatusBadRequest, errMissingField)
		return
	}

	s.mu.Lock()
	result := s.organic.Audit(req.HTML)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, result)
}

type backlinkRequest struct {
	Quality float64 `json:"quality"`
	Source  string  `json:"source"`
}

func (s *Server) handleAddBacklink(w http.ResponseWriter, r *http.Request) {
	var req backlinkRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Quality < 1 || req.Quality > 100 {
		writeError(w, http.StatusBadRequest, errors.New("quality must be between 1 and 100"))
		return
	}

	s.mu.Lock()
	bl := s.organic.AddBacklink(req.Quality, req.Source)
	authority := s.organic.Authority()
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"backlink":  bl,
		"authority": authority,
	})
}

type rankingRequest struct {
	SEOScore int                `json:"seo_score"`
	Events   []seo.RankingEvent `json:"events"`
}

func (s *Server) handleRanking(w http.ResponseWriter, r *http.Request) {
	var req rankingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	rank := s.organic.CalculateRanking(seo.PageData{SEOScore: req.SEOScore}, nil, req.Events)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{"ranking": rank})
}

type validateRequest struct {
	PageID string `json:"page_id"`
	Code   string `json:"code"`
}

type validateResponse struct {
	Status validator.ResultStatus `json:"status"`
	Report *validator.Report      `json:"report,omitempty"`
	Result *validator.Result      `json:"result"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p, err := page.ByID(req.PageID)
	if err != nil {
		writeError(w, http.StatusNotFound, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := validator.ValidateSubmission(req.Code, s.lastSubmitted[p.ID], p.CorrectHTML, p.Defects)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	resp := validateResponse{Status: result.Status, Result: result}
	if result.Status == validator.ResultScored {
		s.lastSubmitted[p.ID] = req.Code

		oldRank, ok := s.rankings[p.ID]
		if !ok {
			oldRank = 100
		}
		newRank := validator.CalculateNewRanking(result, oldRank)
		s.rankings[p.ID] = newRank

		resp.Report = validator.GenerateReport(result, oldRank, newRank)
		s.metrics.ObserveValidation(result.Percentage)
	}

	writeJSON(w, http.StatusOK, resp)
}

type triggerRequest struct {
	Module event.Module `json:"module"`
	Tools  []string     `json:"tools"`
}

func (s *Server) handleTriggerEvent(w http.ResponseWriter, r *http.Request) {
	var req triggerRequest
	if !decodeBody(w, r, &req) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ev, err := event.Trigger(req.Module, s.turn, req.Tools, s.rng)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if ev != nil {
		s.activeEvents = append(s.activeEvents, *ev)
	}

	writeJSON(w, http.StatusOK, map[string]any{"event": ev})
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"turn":          s.turn,
		"budget":        s.campaigns.Budget(),
		"quality_score": s.campaigns.QualityScore(),
		"authority":     s.organic.Authority(),
		"backlinks":     len(s.organic.Backlinks()),
		"rankings":      s.rankings,
		"active_events": s.activeEvents,
	})
}

func (s *Server) handleReset(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.campaigns.Reset()
	s.organic.Reset()
	s.turn = 0
	s.lastSubmitted = make(map[string]string)
	s.rankings = make(map[string]int)
	s.activeEvents = nil

	writeJSON(w, http.StatusOK, map[string]any{"status": "reset"})
}
