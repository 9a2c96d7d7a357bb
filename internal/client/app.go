// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/adapter"
	"github.com/MKhiriev/go-account-switcher/internal/config"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/internal/store"
	"github.com/MKhiriev/go-account-switcher/internal/tui"
	"github.com/MKhiriev/go-account-switcher/models"
)

const versionCheckTimeout = 3 * time.Second

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	close    func() error

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	accounts, closeFn, err := newAccountService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	services := service.NewClientServices(accounts, cfg.App.Profile, logger)

	ui, err := tui.New(services, buildInfo, logger)
	if err != nil {
		_ = closeFn()
		return nil, fmt.Errorf("error creating ui: %w", err)
	}

	return &App{
		services: services,
		tui:      ui,
		close:    closeFn,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	a.logger.Info().Str("profile", a.services.Directory.Owner()).Msg("account switcher started")
	return a.tui.Run(ctx)
}

func (a *App) Close() error {
	return a.close()
}

// newAccountService picks the directory backend. The returned func
// releases it.
func newAccountService(ctx context.Context, cfg *config.ClientConfig, logger *logger.Logger) (service.AccountService, func() error, error) {
	if cfg.Remote() {
		directory, err := adapter.NewHTTPDirectoryAdapter(cfg.Adapter, cfg.App, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("create directory adapter: %w", err)
		}
		checkServerVersion(ctx, directory, logger)

		accounts := service.Chain(directory,
			service.NewAccountValidationService(),
			service.NewAccountLoggingService(logger),
		)
		return accounts, func() error { return nil }, nil
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("create local storage: %w", err)
	}

	return service.NewLocalAccountService(storages.AccountRepository, logger), storages.Close, nil
}

// checkServerVersion logs the build of the directory server. An
// unreachable server is not fatal; the dialog reports the failure later.
func checkServerVersion(ctx context.Context, directory adapter.DirectoryAdapter, logger *logger.Logger) {
	ctx, cancel := context.WithTimeout(ctx, versionCheckTimeout)
	defer cancel()

	version, err := directory.Version(ctx)
	if err != nil {
		logger.Warn().Err(err).Msg("directory server version check failed")
		return
	}

	logger.Info().
		Str("server_version", version.Version).
		Str("server_commit", version.Commit).
		Msg("connected to directory server")
}
