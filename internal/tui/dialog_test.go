// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/MKhiriev/go-account-switcher/internal/session"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAccount(name string) *models.Account {
	return &models.Account{ID: uuid.New(), Name: name}
}

func newShownHost(t *testing.T) (*dialogHost, *[]session.Option, *int) {
	t.Helper()

	a, b := testAccount("a"), testAccount("b")
	var handled []session.Option
	confirmed := 0

	host := newDialogHost()
	host.Clear()
	host.AppendRadioCategory("Account list", []session.Option{
		{Kind: session.OptionSelect, Title: "None"},
		{Kind: session.OptionSelect, Title: "a", Account: a, Checked: true},
		{Kind: session.OptionSelect, Title: "b", Account: b},
	})
	host.AppendCheckedCategory("Remove account", []session.Option{
		{Kind: session.OptionRemove, Title: "a", Account: a},
		{Kind: session.OptionRemove, Title: "b", Account: b},
	})
	host.AppendSingleButton(session.Option{Kind: session.OptionAddAccount, Title: "Add account"})
	host.ShowDialog("Accounts", func(o session.Option) {
		handled = append(handled, o)
	}, func() {
		confirmed++
	})

	require.True(t, host.visible)
	require.Len(t, host.rows, 6)
	return host, &handled, &confirmed
}

func TestDialogHost_RadioIsExclusive(t *testing.T) {
	host, handled, _ := newShownHost(t)

	host.moveDown()
	host.moveDown() // "b"
	host.activate()

	require.Len(t, *handled, 1)
	assert.Equal(t, "b", (*handled)[0].Title)
	assert.True(t, (*handled)[0].Checked)

	assert.False(t, host.rows[0].option.Checked)
	assert.False(t, host.rows[1].option.Checked)
	assert.True(t, host.rows[2].option.Checked)
}

func TestDialogHost_CheckedToggles(t *testing.T) {
	host, handled, _ := newShownHost(t)

	host.cursor = 3
	host.activate()
	host.activate()

	require.Len(t, *handled, 2)
	assert.True(t, (*handled)[0].Checked)
	assert.False(t, (*handled)[1].Checked)
	assert.Equal(t, session.OptionRemove, (*handled)[1].Kind)
}

func TestDialogHost_ButtonForwarded(t *testing.T) {
	host, handled, _ := newShownHost(t)

	host.cursor = 5
	host.activate()

	require.Len(t, *handled, 1)
	assert.Equal(t, session.OptionAddAccount, (*handled)[0].Kind)
}

func TestDialogHost_CursorBounds(t *testing.T) {
	host, _, _ := newShownHost(t)

	host.moveUp()
	assert.Equal(t, 0, host.cursor)

	for i := 0; i < 10; i++ {
		host.moveDown()
	}
	assert.Equal(t, 5, host.cursor)
}

func TestDialogHost_ConfirmFiresOnceAndHides(t *testing.T) {
	host, _, confirmed := newShownHost(t)

	host.confirm()
	host.confirm()

	assert.Equal(t, 1, *confirmed)
	assert.False(t, host.visible)
}

func TestDialogHost_DismissDoesNotConfirm(t *testing.T) {
	host, handled, confirmed := newShownHost(t)

	host.dismiss()
	host.activate()

	assert.Equal(t, 0, *confirmed)
	assert.Empty(t, *handled)
	_, ok := host.current()
	assert.False(t, ok)
}

func TestDialogHost_ClearDropsEverything(t *testing.T) {
	host, _, _ := newShownHost(t)

	host.Clear()

	assert.False(t, host.visible)
	assert.Empty(t, host.rows)
	assert.Empty(t, host.categories)
	assert.Nil(t, host.handler)
}

func TestDialogHost_View(t *testing.T) {
	host, _, _ := newShownHost(t)

	view := host.View()

	assert.Contains(t, view, "Account list")
	assert.Contains(t, view, "Remove account")
	assert.Contains(t, view, "(•) a")
	assert.Contains(t, view, "( ) b")
	assert.Contains(t, view, "[ ] a")
	assert.Contains(t, view, "+ Add account")
}
