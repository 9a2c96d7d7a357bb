// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type accountAdder interface {
	AddAccount(ctx context.Context, name string, email *string) (models.Account, error)
}

const (
	inputName = iota
	inputEmail
	inputCount
)

// accountForm is the add-account flow started from the dialog. It
// implements session.SignInFlow.
type accountForm struct {
	directory accountAdder

	ctx        context.Context
	inputs     []textinput.Model
	focus      int
	active     bool
	submitting bool
	err        string
}

func newAccountForm(directory accountAdder) *accountForm {
	inputs := make([]textinput.Model, inputCount)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 40
		inputs[i].CharLimit = 254
	}
	inputs[inputName].Placeholder = "work"
	inputs[inputEmail].Placeholder = "optional"

	return &accountForm{
		directory: directory,
		ctx:       context.Background(),
		inputs:    inputs,
	}
}

// Start opens an empty form.
func (f *accountForm) Start(ctx context.Context) {
	f.ctx = ctx
	f.active = true
	f.submitting = false
	f.err = ""
	f.focus = inputName
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.inputs[inputName].Focus()
}

func (f *accountForm) close() {
	f.active = false
	f.submitting = false
	for i := range f.inputs {
		f.inputs[i].Blur()
	}
}

func (f *accountForm) update(msg tea.Msg) tea.Cmd {
	if k, ok := msg.(tea.KeyMsg); ok {
		if f.submitting {
			return nil
		}

		switch {
		case key.Matches(k, keys.esc):
			f.close()
			return nil
		case key.Matches(k, keys.enter):
			return f.submit()
		case key.Matches(k, keys.tab):
			f.setFocus((f.focus + 1) % inputCount)
			return nil
		case key.Matches(k, keys.backtab):
			f.setFocus((f.focus + inputCount - 1) % inputCount)
			return nil
		}
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *accountForm) setFocus(i int) {
	f.inputs[f.focus].Blur()
	f.focus = i
	f.inputs[f.focus].Focus()
}

// submit adds the account in the background.
func (f *accountForm) submit() tea.Cmd {
	name := strings.TrimSpace(f.inputs[inputName].Value())
	if name == "" {
		f.err = "Name is required"
		return nil
	}

	var email *string
	if v := strings.TrimSpace(f.inputs[inputEmail].Value()); v != "" {
		email = &v
	}

	f.err = ""
	f.submitting = true

	ctx, directory := f.ctx, f.directory
	return func() tea.Msg {
		account, err := directory.AddAccount(ctx, name, email)
		return accountAddedMsg{account: account, err: err}
	}
}

// done finishes a submission. The form stays open on failure.
func (f *accountForm) done(msg accountAddedMsg) {
	f.submitting = false
	if msg.err != nil {
		f.err = humanizeError(msg.err)
		return
	}
	f.close()
}

func (f *accountForm) View() string {
	var b strings.Builder
	b.WriteString("Name:  [" + f.inputs[inputName].View() + "]\n")
	b.WriteString("Email: [" + f.inputs[inputEmail].View() + "]")
	if f.submitting {
		b.WriteString("\n\n" + statusStyle.Render("Saving..."))
	}
	if f.err != "" {
		b.WriteString("\n\n" + errorStyle.Render(f.err))
	}
	return renderPage("ADD ACCOUNT", b.String(), "tab: next field   enter: save   esc: cancel")
}
