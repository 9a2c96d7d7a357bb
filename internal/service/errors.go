// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-account-switcher/internal/validators"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrEmptyOwner          = validators.ErrEmptyOwner
	ErrInvalidAccountName  = validators.ErrInvalidAccountName
	ErrInvalidEmail        = validators.ErrInvalidEmail
)
