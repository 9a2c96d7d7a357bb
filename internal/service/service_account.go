// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/store"
	"github.com/MKhiriev/go-account-switcher/internal/utils"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

type accountService struct {
	accountRepository store.AccountRepository

	ids    *utils.UUIDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewAccountService returns an [AccountService] over the repository.
func NewAccountService(accountRepository store.AccountRepository, logger *logger.Logger) AccountService {
	return &accountService{
		accountRepository: accountRepository,
		ids:               utils.NewUUIDGenerator(),
		now:               time.Now,
		logger:            logger,
	}
}

func (s *accountService) ListAccounts(ctx context.Context, owner string) ([]models.Account, error) {
	return s.accountRepository.ListAccounts(ctx, owner)
}

// AddAccount stores a new, unselected account with a time-ordered ID.
func (s *accountService) AddAccount(ctx context.Context, owner string, req models.NewAccountRequest) (models.Account, error) {
	account := models.Account{
		ID:        s.ids.Generate(),
		Name:      strings.TrimSpace(req.Name),
		Email:     trimmed(req.Email),
		CreatedAt: s.now().UTC(),
	}

	if err := s.accountRepository.SaveAccount(ctx, owner, account); err != nil {
		return models.Account{}, err
	}

	return account, nil
}

func (s *accountService) RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error {
	return s.accountRepository.RemoveAccount(ctx, owner, accountID)
}

func (s *accountService) SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error {
	return s.accountRepository.SelectAccount(ctx, owner, accountID)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
