// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "errors"

var (
	// ErrNilDependency is returned by NewController when a required
	// collaborator is missing.
	ErrNilDependency = errors.New("session: nil dependency")

	// ErrAccountsFetch wraps failures of the account list request.
	ErrAccountsFetch = errors.New("failed to fetch accounts")

	// ErrCommit wraps failures of the confirm step.
	ErrCommit = errors.New("failed to apply account changes")
)
