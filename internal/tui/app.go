// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-account-switcher/internal/session"
	"github.com/MKhiriev/go-account-switcher/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 2 * time.Second

var (
	defaultWriteClipboard = clipboard.WriteAll
	writeClipboard        = defaultWriteClipboard
)

// sessionController is the part of session.Controller the app drives.
type sessionController interface {
	Start(ctx context.Context)
	Refresh(ctx context.Context)
	Teardown()
}

// appModel is the root model:
// 1) hosts the account dialog of the current session
// 2) runs work dispatched by the session controller
// 3) shows the add-account form, the error overlay and the build info
type appModel struct {
	ctx        context.Context
	controller sessionController
	host       *dialogHost
	form       *accountForm
	overlay    *errorOverlay

	profile       string
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	loading       bool
	status        string
}

func newAppModel(
	ctx context.Context,
	controller sessionController,
	host *dialogHost,
	form *accountForm,
	overlay *errorOverlay,
	profile string,
	buildInfo models.AppBuildInfo,
) appModel {
	return appModel{
		ctx:        ctx,
		controller: controller,
		host:       host,
		form:       form,
		overlay:    overlay,
		profile:    profile,
		buildInfo:  buildInfo,
	}
}

func (m appModel) Init() tea.Cmd {
	return func() tea.Msg { return reloadMsg{} }
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	formWasActive := m.form.active

	model, cmd := m.update(msg)

	if !formWasActive && m.form.active {
		return model, tea.Batch(cmd, textinput.Blink)
	}
	return model, cmd
}

func (m *appModel) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dispatchMsg:
		msg.fn()
		if m.host.visible || m.overlay.visible() {
			m.loading = false
		}
		return *m, nil

	case reloadMsg:
		m.host.Clear()
		m.loading = true
		m.controller.Start(m.ctx)
		return *m, nil

	case accountAddedMsg:
		m.form.done(msg)
		if msg.err != nil {
			return *m, nil
		}
		// the open dialog keeps its pending choices until the new list arrives
		if !m.host.visible {
			m.loading = true
		}
		m.controller.Refresh(m.ctx)
		return *m, m.setStatus("Account " + session.FormatAccount(msg.account.Name, msg.account.Email) + " added")

	case copiedMsg:
		if msg.err != nil {
			m.overlay.ReportError(msg.err)
			return *m, nil
		}
		return *m, m.setStatus("Copied " + msg.text)

	case clearStatusMsg:
		m.status = ""
		return *m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.form.active {
		return *m, m.form.update(msg)
	}
	return *m, nil
}

func (m *appModel) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.overlay.visible() {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.overlay.dismiss()
		}
		return *m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return *m, nil
	}

	if m.form.active {
		return *m, m.form.update(msg)
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m.quit()
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
		return *m, nil
	case key.Matches(msg, keys.reload):
		return *m, func() tea.Msg { return reloadMsg{} }
	}

	if !m.host.visible {
		if key.Matches(msg, keys.add) {
			m.form.Start(m.ctx)
		}
		return *m, nil
	}

	switch {
	case key.Matches(msg, keys.up):
		m.host.moveUp()
	case key.Matches(msg, keys.down):
		m.host.moveDown()
	case key.Matches(msg, keys.toggle):
		m.host.activate()
	case key.Matches(msg, keys.confirm):
		m.host.confirm()
		if !m.overlay.visible() {
			return *m, m.setStatus("Changes applied")
		}
	case key.Matches(msg, keys.esc):
		m.host.dismiss()
		m.controller.Teardown()
	case key.Matches(msg, keys.copy):
		return *m, m.copyCurrent()
	}

	return *m, nil
}

func (m *appModel) quit() (tea.Model, tea.Cmd) {
	m.controller.Teardown()
	return *m, tea.Quit
}

func (m *appModel) setStatus(status string) tea.Cmd {
	m.status = status
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// copyCurrent copies the email of the account under the cursor, or its name
// when it has no email.
func (m *appModel) copyCurrent() tea.Cmd {
	option, ok := m.host.current()
	if !ok || option.Account == nil {
		return nil
	}

	text := option.Account.Name
	if option.Account.Email != nil {
		text = *option.Account.Email
	}

	return func() tea.Msg {
		return copiedMsg{text: text, err: writeClipboard(text)}
	}
}

func (m appModel) View() string {
	if m.overlay.visible() {
		return appStyle.Render(m.overlay.View())
	}
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo, m.profile)
	}
	if m.form.active {
		return m.form.View()
	}

	var body, hotKeys string
	switch {
	case m.host.visible:
		body = m.host.View()
		hotKeys = "↑/↓: move   space: toggle   s: save   esc: close   y: copy   r: reload   v: about"
	case m.loading:
		body = "Loading accounts...\nAn empty directory opens no dialog; press a to add an account."
		hotKeys = "a: add account   r: reload   v: about   q: quit"
	default:
		body = "No account dialog is open"
		hotKeys = "a: add account   r: reload   v: about   q: quit"
	}

	if m.status != "" {
		body += "\n\n" + statusStyle.Render(m.status)
	}

	title := "ACCOUNTS"
	if m.host.visible && m.host.title != "" {
		title = m.host.title
	}
	if m.profile != "" {
		title += " · " + m.profile
	}

	return renderPage(title, body, hotKeys)
}
