// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/google/uuid"
)

// Account is a signed-in user identity kept by the account directory.
//
// The directory owns the authoritative list and the selection flag; every
// other component works on copies that live for a single settings session.
type Account struct {
	// ID uniquely identifies the account inside the directory.
	ID uuid.UUID `json:"account_id"`

	// Name is the display name shown in the settings dialog.
	Name string `json:"name"`

	// Email is optional. A nil value means the account has no e-mail
	// attached and only the name is rendered.
	Email *string `json:"email,omitempty"`

	// Selected reports whether the directory considers this account the
	// active one. At most one account per owner is selected.
	Selected bool `json:"selected"`

	// CreatedAt is the moment the account was added to the directory.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Account model.
func (a Account) TableName() string {
	return "accounts"
}

// AccountsUpdate is a single emission of an observed account list.
// Exactly one of Accounts or Err is meaningful.
type AccountsUpdate struct {
	Accounts []Account
	Err      error
}

// NewAccountRequest is the body of an add-account call.
type NewAccountRequest struct {
	Name  string  `json:"name"`
	Email *string `json:"email,omitempty"`
}

// SelectAccountRequest is the body of a select-account call. A nil
// AccountID clears the selection.
type SelectAccountRequest struct {
	AccountID *uuid.UUID `json:"account_id"`
}
