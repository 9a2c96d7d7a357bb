// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the directory server API.
//
// [DirectoryAdapter] has the same shape as the service layer's account
// service, so the terminal client can switch between its local database
// and a remote directory without the rest of the code noticing.
//
// HTTP status codes are mapped back onto the store and service sentinel
// errors by mapHTTPError so that callers can keep using [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

// DirectoryAdapter talks to a remote account directory. Every call is
// authenticated with a short-lived token whose subject is the owner.
type DirectoryAdapter interface {
	ListAccounts(ctx context.Context, owner string) ([]models.Account, error)
	AddAccount(ctx context.Context, owner string, req models.NewAccountRequest) (models.Account, error)
	RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error
	SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error

	// Version returns the build information of the server.
	Version(ctx context.Context) (models.VersionResponse, error)
}
