// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-account-switcher/internal/adapter"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/internal/session"
	"github.com/MKhiriev/go-account-switcher/internal/store"
)

const (
	msgServerUnavailable = "No network or the directory server is unavailable"
	msgUnauthorized      = "The directory server rejected the client credentials"
	msgAccountNotFound   = "The account no longer exists"
	msgAccountExists     = "An account with this id already exists"
	msgInvalidData       = "Invalid account data"
)

// humanizeError turns err into a message for the error overlay. Errors with
// no known wording keep their own text.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return withPrefix(err, msgServerUnavailable)
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return withPrefix(err, msgUnauthorized)
	case errors.Is(err, store.ErrAccountNotFound):
		return withPrefix(err, msgAccountNotFound)
	case errors.Is(err, store.ErrAccountAlreadyExists):
		return withPrefix(err, msgAccountExists)
	case errors.Is(err, service.ErrInvalidDataProvided):
		return msgInvalidData + ": " + strings.TrimPrefix(err.Error(), service.ErrInvalidDataProvided.Error()+": ")
	}

	return err.Error()
}

// withPrefix keeps the session stage (fetch or commit) in front of msg.
func withPrefix(err error, msg string) string {
	switch {
	case errors.Is(err, session.ErrAccountsFetch):
		return session.ErrAccountsFetch.Error() + ": " + msg
	case errors.Is(err, session.ErrCommit):
		return session.ErrCommit.Error() + ": " + msg
	}
	return msg
}
