// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "github.com/MKhiriev/go-account-switcher/models"

// OptionKind tags the action an [Option] triggers.
type OptionKind int

const (
	// OptionSelect makes Account the pending selection; a nil Account
	// stands for "None".
	OptionSelect OptionKind = iota
	// OptionRemove toggles Account in the pending removal set.
	OptionRemove
	// OptionAddAccount starts the sign-in flow.
	OptionAddAccount
)

// String returns a short name of the kind, used in logs.
func (k OptionKind) String() string {
	switch k {
	case OptionSelect:
		return "select"
	case OptionRemove:
		return "remove"
	case OptionAddAccount:
		return "add_account"
	default:
		return "unknown"
	}
}

// Option is a single entry of the settings dialog.
type Option struct {
	Kind    OptionKind
	Title   string
	Account *models.Account
	Checked bool
}
