// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-account-switcher/internal/validators"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

// AccountValidationService rejects malformed input before it reaches the
// wrapped [AccountService].
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) ListAccounts(ctx context.Context, owner string) ([]models.Account, error) {
	if err := validateOwner(owner); err != nil {
		return nil, err
	}
	return v.inner.ListAccounts(ctx, owner)
}

func (v *AccountValidationService) AddAccount(ctx context.Context, owner string, req models.NewAccountRequest) (models.Account, error) {
	if err := validateOwner(owner); err != nil {
		return models.Account{}, err
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.AddAccount(ctx, owner, req)
}

func (v *AccountValidationService) RemoveAccount(ctx context.Context, owner string, accountID uuid.UUID) error {
	if err := validateOwner(owner); err != nil {
		return err
	}
	if accountID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}
	return v.inner.RemoveAccount(ctx, owner, accountID)
}

func (v *AccountValidationService) SelectAccount(ctx context.Context, owner string, accountID *uuid.UUID) error {
	if err := validateOwner(owner); err != nil {
		return err
	}
	if accountID != nil && *accountID == uuid.Nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidAccountID)
	}
	return v.inner.SelectAccount(ctx, owner, accountID)
}

func (v *AccountValidationService) Wrap(inner AccountService) AccountService {
	v.inner = inner
	return v
}

func validateOwner(owner string) error {
	if strings.TrimSpace(owner) == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, ErrEmptyOwner)
	}
	return nil
}
