// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/glow-up-client/internal/adapter"
	"github.com/MKhiriev/glow-up-client/internal/client"
	"github.com/MKhiriev/glow-up-client/internal/config"
	"github.com/MKhiriev/glow-up-client/internal/logger"
	"github.com/MKhiriev/glow-up-client/internal/service"
	"github.com/MKhiriev/glow-up-client/internal/store"
	"github.com/MKhiriev/glow-up-client/internal/tui"
	"github.com/MKhiriev/glow-up-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("glow-up-client", os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("glow-up-client", cfg.Log.File, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}
	defer storages.Close()

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	services := service.NewClientServices(storages, serverAdapter, log)
	ui := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)

	return client.NewApp(services, ui, log).Run(ctx)
}
