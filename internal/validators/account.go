// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
)

const (
	FieldAccountID = "account_id"
	FieldName      = "name"
	FieldEmail     = "email"

	MaxNameLength  = 128
	MaxEmailLength = 254
)

// AccountValidator checks account payloads before they reach storage.
type AccountValidator struct{}

func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate accepts [models.NewAccountRequest] and [models.Account] values
// (or pointers to them). When fields are given only those are checked.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.NewAccountRequest:
		return v.validate(ctx, uuid.Nil, value.Name, value.Email, false, fields...)
	case *models.NewAccountRequest:
		return v.validate(ctx, uuid.Nil, value.Name, value.Email, false, fields...)

	case models.Account:
		return v.validate(ctx, value.ID, value.Name, value.Email, true, fields...)
	case *models.Account:
		return v.validate(ctx, value.ID, value.Name, value.Email, true, fields...)

	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *AccountValidator) validate(_ context.Context, id uuid.UUID, name string, email *string, withID bool, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail}
		if withID {
			fields = append(fields, FieldAccountID)
		}
	}

	for _, field := range fields {
		var err error
		switch field {
		case FieldAccountID:
			err = validateAccountID(id)
		case FieldName:
			err = validateName(name)
		case FieldEmail:
			err = validateEmail(email)
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateAccountID(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidAccountID
	}
	return nil
}

func validateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidAccountName)
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return fmt.Errorf("%w: longer than %d characters", ErrInvalidAccountName, MaxNameLength)
	}
	return nil
}

// nil email is allowed; a present one must be a bare address.
func validateEmail(email *string) error {
	if email == nil {
		return nil
	}

	value := strings.TrimSpace(*email)
	if value == "" || len(value) > MaxEmailLength {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, *email)
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Address != value {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, *email)
	}

	return nil
}
