// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-account-switcher/models"

// dispatchMsg carries work posted by the session controller onto the
// program goroutine.
type dispatchMsg struct {
	fn func()
}

type reloadMsg struct{}

type accountAddedMsg struct {
	account models.Account
	err     error
}

type copiedMsg struct {
	text string
	err  error
}

type clearStatusMsg struct{}
