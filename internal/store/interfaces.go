// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists the accounts of every directory owner.
type AccountRepository interface {
	// ListAccounts returns the owner's accounts, oldest first.
	ListAccounts(ctx context.Context, owner string) ([]models.Account, error)
	// SaveAccount inserts a new account for the owner.
	SaveAccount(ctx context.Context, owner string, account models.Account) error
	// RemoveAccount deletes one account of the owner.
	RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error
	// SelectAccount makes accountID the owner's only selected account. A nil
	// accountID clears the selection.
	SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error
}

// ErrorClassificator maps driver errors onto the decisions the repository
// has to make.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
