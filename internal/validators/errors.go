// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyOwner         = errors.New("owner is required")
	ErrInvalidAccountID   = errors.New("invalid account ID")
	ErrInvalidAccountName = errors.New("invalid account name")
	ErrInvalidEmail       = errors.New("invalid email")
)
