// Copyright (C) 2025, ADXYZ Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// serplabd serves the simulation engines over HTTP for one play session.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"

	"github.com/adxyz/serplab/pkg/api"
	"github.com/adxyz/serplab/pkg/log"
	"github.com/adxyz/serplab/pkg/metric"
)

var (
	addr     = flag.String("addr", ":8080", "HTTP listen address")
	budget   = flag.Float64("budget", 10000, "starting campaign budget in euros")
	seed     = flag.Int64("seed", 0, "RNG seed, 0 for time-based")
	logLevel = flag.String("log-level", "info", "log level (debug/info/warn/error)")
)

func main() {
	flag.Parse()

	logger := log.NewWithLevel(*logLevel)
	defer func() { _ = logger.Sync() }()

	metrics, err := metric.New()
	if err != nil {
		logger.Error("metrics init failed", "err", err)
		os.Exit(1)
	}

	opts := []api.ServerOption{
		api.WithLogger(logger),
		api.WithMetrics(metrics),
		api.WithBudget(decimal.NewFromFloat(*budget)),
	}
	if *seed != 0 {
		opts = append(opts, api.WithSeed(*seed))
	}
	server := api.NewServer(opts...)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info("server started", "addr", *addr, "budget", *budget)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("forced shutdown", "err", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
