// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

// Labels are the user-visible strings of the settings dialog.
type Labels struct {
	Title         string
	None          string
	AccountList   string
	RemoveAccount string
	AddAccount    string
}

// DefaultLabels returns the English dialog strings.
func DefaultLabels() Labels {
	return Labels{
		Title:         "Accounts",
		None:          "None",
		AccountList:   "Account list",
		RemoveAccount: "Remove account",
		AddAccount:    "Add account",
	}
}
