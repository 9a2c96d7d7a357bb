// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/internal/store"
	"github.com/MKhiriev/go-account-switcher/internal/utils"
)

// errorStatuses is checked in order; the first sentinel found in the chain
// decides the status, so client errors go before storage failures.
var errorStatuses = []struct {
	target error
	status int
}{
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrNoOwnerInContext, http.StatusUnauthorized},
	{store.ErrAccountNotFound, http.StatusNotFound},
	{store.ErrAccountAlreadyExists, http.StatusConflict},

	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError},
	{store.ErrAccountNotSaved, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.target) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError answers with the status mapped from err. Client errors
// carry the error text; server errors carry only the status text.
func writeServiceError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = http.StatusText(status)
	}
	utils.WriteError(w, message, status)
}
