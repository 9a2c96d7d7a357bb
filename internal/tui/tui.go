// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal host of the account settings session.
//
// The bubbletea program goroutine is the presentation goroutine: the dialog,
// the add-account form and the error overlay are only touched from Update,
// and the session controller posts its work there through a dispatcher.
package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-account-switcher/internal/logger"
	"github.com/MKhiriev/go-account-switcher/internal/service"
	"github.com/MKhiriev/go-account-switcher/internal/session"
	"github.com/MKhiriev/go-account-switcher/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoDirectory = errors.New("tui: no account directory")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	labels    session.Labels
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil || services.Directory == nil {
		return nil, ErrNoDirectory
	}
	return &TUI{
		services:  services,
		buildInfo: buildInfo,
		labels:    session.DefaultLabels(),
		logger:    logger,
	}, nil
}

// SetLabels overrides the dialog strings.
func (t *TUI) SetLabels(labels session.Labels) {
	t.labels = labels
}

// Run shows the account settings dialog until the user quits or ctx is
// cancelled.
func (t *TUI) Run(ctx context.Context) error {
	directory := t.services.Directory

	host := newDialogHost()
	form := newAccountForm(directory)
	overlay := &errorOverlay{}
	dispatcher := &programDispatcher{}

	controller, err := session.NewController(directory, host, form, dispatcher, overlay, t.logger)
	if err != nil {
		return err
	}
	controller.SetLabels(t.labels)

	model := newAppModel(ctx, controller, host, form, overlay, directory.Owner(), t.buildInfo)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	dispatcher.program = program

	_, err = program.Run()
	controller.Teardown()

	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// programDispatcher posts work onto the program goroutine. Dispatch must not
// be called from Update itself.
type programDispatcher struct {
	program *tea.Program
}

func (d *programDispatcher) Dispatch(fn func()) {
	d.program.Send(dispatchMsg{fn: fn})
}
