// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-account-switcher/internal/config"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/store"
	"github.com/MKhiriev/go-account-switcher/models"
)

// Services groups the directory server services.
type Services struct {
	AccountService AccountService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, buildInfo models.AppBuildInfo, cfg *config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(buildInfo, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AccountService: NewLocalAccountService(storages.AccountRepository, logger),
		AppInfoService: appInfo,
	}, nil
}

// NewLocalAccountService wires the repository-backed service behind the
// validation and logging wrappers.
func NewLocalAccountService(repository store.AccountRepository, logger *logger.Logger) AccountService {
	return Chain(NewAccountService(repository, logger),
		NewAccountValidationService(),
		NewAccountLoggingService(logger),
	)
}

// Chain applies wrappers in order; the last one is outermost.
func Chain(inner AccountService, wrappers ...AccountServiceWrapper) AccountService {
	for _, wrapper := range wrappers {
		inner = wrapper.Wrap(inner)
	}
	return inner
}
