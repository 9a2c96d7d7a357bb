// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-account-switcher/internal/config"
	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/models"
)

const notAvailable = "N/A"

type appInfoService struct {
	appVersion string
	buildDate  string
	commit     string

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version when set, else the linker-injected
// build version.
func NewAppInfoService(buildInfo models.AppBuildInfo, cfg config.ServerApp, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" || version == notAvailable {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: version,
		buildDate:  orNotAvailable(buildInfo.BuildDate()),
		commit:     orNotAvailable(buildInfo.BuildCommit()),
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(ctx context.Context) models.VersionResponse {
	return models.VersionResponse{
		Version: s.appVersion,
		Date:    s.buildDate,
		Commit:  s.commit,
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
