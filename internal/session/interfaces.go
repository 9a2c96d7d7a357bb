// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"context"

	"github.com/MKhiriev/go-account-switcher/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// AccountDirectory is the authoritative owner of the account list and the
// selection state.
type AccountDirectory interface {
	// ObserveAccounts streams account lists until ctx is cancelled or the
	// source is exhausted; the channel is closed afterwards. A one-shot
	// source emits once.
	ObserveAccounts(ctx context.Context) <-chan models.AccountsUpdate

	// RemoveAccount deletes account from the directory.
	RemoveAccount(ctx context.Context, account models.Account) error

	// SelectAccount makes account the active one. A nil account clears the
	// selection.
	SelectAccount(ctx context.Context, account *models.Account) error
}

// DialogHost renders a settings dialog built from option categories.
// Every method is called on the presentation goroutine.
type DialogHost interface {
	// Clear drops all categories of the previous dialog.
	Clear()

	// AppendRadioCategory adds a mutually exclusive group of options.
	AppendRadioCategory(title string, options []Option)

	// AppendCheckedCategory adds a group of independently checkable options.
	AppendCheckedCategory(title string, options []Option)

	// AppendSingleButton adds a standalone action.
	AppendSingleButton(option Option)

	// ShowDialog displays the dialog. handler receives every option the user
	// activates, with Checked reflecting its new state. onConfirm fires only
	// on explicit confirmation, never on cancel or dismiss.
	ShowDialog(title string, handler func(Option), onConfirm func())
}

// SignInFlow starts the separate add-account flow.
type SignInFlow interface {
	Start(ctx context.Context)
}

// Dispatcher posts fn onto the presentation goroutine.
type Dispatcher interface {
	Dispatch(fn func())
}

// Reporter surfaces errors to the user.
type Reporter interface {
	ReportError(err error)
}
