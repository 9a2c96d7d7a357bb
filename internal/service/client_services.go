// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-account-switcher/internal/logger"
)

// ClientServices groups the services of the terminal client.
type ClientServices struct {
	Directory *AccountDirectory
}

// NewClientServices builds the client services over accounts, which is
// either the local store service or the remote directory adapter.
func NewClientServices(accounts AccountService, profile string, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Directory: NewAccountDirectory(accounts, profile, logger),
	}
}
