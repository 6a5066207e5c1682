// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api exposes the simulation engines over a JSON HTTP surface. One
// Server owns one play session; handlers serialize access so a session can
// be driven from several clients without racing.
package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"

	"github.com/adxyz/serplab/pkg/auction"
	"github.com/adxyz/serplab/pkg/campaign"
	"github.com/adxyz/serplab/pkg/event"
	"github.com/adxyz/serplab/pkg/log"
	"github.com/adxyz/serplab/pkg/metric"
	"github.com/adxyz/serplab/pkg/seo"
)

// DefaultBudget is the starting campaign budget when none is configured.
var DefaultBudget = decimal.NewFromInt(10000)

// Server bundles the engines behind the HTTP surface.
type Server struct {
	log     log.Logger
	metrics *metric.Metrics
	budget  decimal.Decimal

	mu            sync.Mutex
	campaigns     *campaign.Engine
	organic       *seo.Engine
	rng           *rand.Rand
	turn          int
	lastSubmitted map[string]string // page id -> last submitted code
	rankings      map[string]int    // page id -> current SERP position
	activeEvents  []event.ActiveEvent
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithLogger sets the server logger.
func WithLogger(l log.Logger) ServerOption {
	return func(s *Server) { s.log = l }
}

// WithMetrics attaches a metrics recorder shared with the engines.
func WithMetrics(m *metric.Metrics) ServerOption {
	return func(s *Server) { s.metrics = m }
}

// WithBudget overrides the starting campaign budget.
func WithBudget(budget decimal.Decimal) ServerOption {
	return func(s *Server) { s.budget = budget }
}

// WithSeed makes the session's randomness reproducible.
func WithSeed(seed int64) ServerOption {
	return func(s *Server) { s.rng = rand.New(rand.NewSource(seed)) }
}

// NewServer creates a session server with fresh engines.
func NewServer(opts ...ServerOption) *Server {
	s := &Server{
		log:           log.NoLog,
		budget:        DefaultBudget,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		lastSubmitted: make(map[string]string),
		rankings:      make(map[string]int),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.campaigns = campaign.New(s.budget,
		campaign.WithLogger(s.log),
		campaign.WithMetrics(s.metrics),
		campaign.WithJitter(auction.NewJitter(s.rng)),
	)
	s.organic = seo.NewEngine(seo.WithLogger(s.log), seo.WithMetrics(s.metrics))

	return s
}

// Router builds the HTTP route table.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.logRequests)

	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics.Gatherer(), promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/keywords", s.handleKeywords).Methods(http.MethodGet)
	api.HandleFunc("/keywords/{id}", s.handleKeyword).Methods(http.MethodGet)
	api.HandleFunc("/pages", s.handlePages).Methods(http.MethodGet)
	api.HandleFunc("/pages/{id}", s.handlePage).Methods(http.MethodGet)

	api.HandleFunc("/auction", s.handleAuction).Methods(http.MethodPost)
	api.HandleFunc("/campaigns/day", s.handleSimulateDay).Methods(http.MethodPost)
	api.HandleFunc("/campaigns/history", s.handleHistory).Methods(http.MethodGet)

	api.HandleFunc("/audit", s.handleAudit).Methods(http.MethodPost)
	api.HandleFunc("/backlinks", s.handleAddBacklink).Methods(http.MethodPost)
	api.HandleFunc("/ranking", s.handleRanking).Methods(http.MethodPost)
	api.HandleFunc("/validate", s.handleValidate).Methods(http.MethodPost)

	api.HandleFunc("/events/trigger", s.handleTriggerEvent).Methods(http.MethodPost)
	api.HandleFunc("/session", s.handleSession).Methods(http.MethodGet)
	api.HandleFunc("/reset", s.handleReset).Methods(http.MethodPost)

	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Debug("request served",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start).String(),
		)
	})
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return false
	}
	return true
}
