package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Lexv0lk/reward-ledger/internal/ledger/bootstrap"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/env"
	"github.com/Lexv0lk/reward-ledger/internal/pkg/logging"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	defaultLogger := logging.StdoutLogger

	var cfg bootstrap.LedgerConfig
	if err := env.Parse(&cfg); err != nil {
		defaultLogger.Error("failed to load configuration", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewLedgerApp(cfg, defaultLogger)

	if err := app.Run(mainCtx); err != nil {
		defaultLogger.Error("ledger stopped with error", "error", err.Error())
		os.Exit(1)
	}

	defaultLogger.Info("ledger stopped")
}
