// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

// AccountService is the account directory of every owner. It is served
// by the local SQL store on the client, by the same store on the directory
// server, and by the HTTP adapter when the client talks to a server.
type AccountService interface {
	ListAccounts(ctx context.Context, owner string) ([]models.Account, error)
	AddAccount(ctx context.Context, owner string, req models.NewAccountRequest) (models.Account, error)
	RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error
	// SelectAccount makes accountID the owner's only selected account; nil
	// clears the selection.
	SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error
}

// AppInfoService reports the build of the running server.
type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.VersionResponse
}

// AccountServiceWrapper defines middleware composition for AccountService.
// Implementations wrap an existing AccountService to add behavior such as
// logging or validating.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}
