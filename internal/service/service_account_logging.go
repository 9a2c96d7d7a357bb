// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountLoggingService logs every call of the wrapped [AccountService]
// with its duration and outcome.
type AccountLoggingService struct {
	inner  AccountService
	logger *logger.Logger
}

func NewAccountLoggingService(logger *logger.Logger) AccountServiceWrapper {
	return &AccountLoggingService{logger: logger}
}

func (l *AccountLoggingService) ListAccounts(ctx context.Context, owner string) ([]models.Account, error) {
	start := time.Now()
	accounts, err := l.inner.ListAccounts(ctx, owner)
	l.event(ctx, err).
		Str("method", "ListAccounts").
		Str("owner", owner).
		Int("count", len(accounts)).
		Dur("duration", time.Since(start)).
		Msg("account service call")
	return accounts, err
}

func (l *AccountLoggingService) AddAccount(ctx context.Context, owner string, req models.NewAccountRequest) (models.Account, error) {
	start := time.Now()
	account, err := l.inner.AddAccount(ctx, owner, req)
	l.event(ctx, err).
		Str("method", "AddAccount").
		Str("owner", owner).
		Stringer("account_id", account.ID).
		Dur("duration", time.Since(start)).
		Msg("account service call")
	return account, err
}

func (l *AccountLoggingService) RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error {
	start := time.Now()
	err := l.inner.RemoveAccount(ctx, owner, accountID)
	l.event(ctx, err).
		Str("method", "RemoveAccount").
		Str("owner", owner).
		Stringer("account_id", accountID).
		Dur("duration", time.Since(start)).
		Msg("account service call")
	return err
}

func (l *AccountLoggingService) SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error {
	start := time.Now()
	err := l.inner.SelectAccount(ctx, owner, accountID)

	event := l.event(ctx, err).
		Str("method", "SelectAccount").
		Str("owner", owner)
	if accountID != nil {
		event = event.Stringer("account_id", accountID)
	}
	event.Dur("duration", time.Since(start)).Msg("account service call")
	return err
}

func (l *AccountLoggingService) Wrap(inner AccountService) AccountService {
	l.inner = inner
	return l
}

func (l *AccountLoggingService) event(_ context.Context, err error) *zerolog.Event {
	if err != nil {
		return l.logger.Err(err)
	}
	return l.logger.Debug()
}
