// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

// AccountDirectory is the account directory of a single profile. It is
// what the settings session and the add-account form talk to.
type AccountDirectory struct {
	accounts AccountService
	owner    string

	logger *logger.Logger
}

func NewAccountDirectory(accounts AccountService, owner string, logger *logger.Logger) *AccountDirectory {
	return &AccountDirectory{
		accounts: accounts,
		owner:    owner,
		logger:   logger,
	}
}

// Owner returns the profile the directory acts for.
func (d *AccountDirectory) Owner() string {
	return d.owner
}

// ObserveAccounts lists the accounts once on a new goroutine. The channel
// carries a single update and is closed afterwards, or closed without an
// update when ctx is cancelled first.
func (d *AccountDirectory) ObserveAccounts(ctx context.Context) <-chan models.AccountsUpdate {
	updates := make(chan models.AccountsUpdate, 1)

	go func() {
		defer close(updates)

		accounts, err := d.accounts.ListAccounts(ctx, d.owner)
		if err != nil {
			err = fmt.Errorf("error listing accounts of %q: %w", d.owner, err)
		}

		select {
		case updates <- models.AccountsUpdate{Accounts: accounts, Err: err}:
		case <-ctx.Done():
		}
	}()

	return updates
}

func (d *AccountDirectory) RemoveAccount(ctx context.Context, account models.Account) error {
	return d.accounts.RemoveAccount(ctx, d.owner, account.ID)
}

// SelectAccount selects account, or clears the selection when account is nil.
func (d *AccountDirectory) SelectAccount(ctx context.Context, account *models.Account) error {
	var id *uuid.UUID
	if account != nil {
		accountID := account.ID
		id = &accountID
	}
	return d.accounts.SelectAccount(ctx, d.owner, id)
}

// AddAccount signs a new account into the directory.
func (d *AccountDirectory) AddAccount(ctx context.Context, name string, email *string) (models.Account, error) {
	account, err := d.accounts.AddAccount(ctx, d.owner, models.NewAccountRequest{Name: name, Email: email})
	if err != nil {
		return models.Account{}, err
	}

	d.logger.Info().Stringer("account_id", account.ID).Msg("account added")
	return account, nil
}
