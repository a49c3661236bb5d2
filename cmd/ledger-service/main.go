package main

import (
	"fmt"
	"os"

	"github.com/medetbek/marketplace-ledger/internal/auth"
	"github.com/medetbek/marketplace-ledger/internal/config"
	"github.com/medetbek/marketplace-ledger/internal/db"
	"github.com/medetbek/marketplace-ledger/internal/excel"
	httphandler "github.com/medetbek/marketplace-ledger/internal/http"
	"github.com/medetbek/marketplace-ledger/internal/http/middleware"
	"github.com/medetbek/marketplace-ledger/internal/logger"
	"github.com/medetbek/marketplace-ledger/internal/pdf"
	"github.com/medetbek/marketplace-ledger/internal/repository"
	"github.com/medetbek/marketplace-ledger/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	database, err := db.New(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	ledgerRepo := repository.NewLedgerRepository(database)
	reportRepo := repository.NewReportRepository(database)

	ledgerService := service.NewLedgerService(ledgerRepo)
	reportService := service.NewReportService(reportRepo, excel.NewGenerator(), pdf.NewGenerator())

	tokenParser := auth.NewParser(cfg.Auth.AccessSecret)
	handler := httphandler.NewHandler(ledgerService, reportService, log)
	authMiddleware := middleware.Auth(tokenParser, ledgerRepo)
	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment, log)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting ledger service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
