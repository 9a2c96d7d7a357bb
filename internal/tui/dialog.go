// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-account-switcher/internal/session"
)

type rowKind int

const (
	rowRadio rowKind = iota
	rowChecked
	rowButton
)

type dialogRow struct {
	kind     rowKind
	category int
	option   session.Option
}

// dialogHost renders the session dialog as a flat list of rows grouped in
// categories. It implements session.DialogHost and is only touched on the
// program goroutine.
type dialogHost struct {
	title      string
	categories []string
	rows       []dialogRow
	cursor     int
	visible    bool

	handler   func(session.Option)
	onConfirm func()
}

func newDialogHost() *dialogHost {
	return &dialogHost{}
}

func (d *dialogHost) Clear() {
	d.title = ""
	d.categories = nil
	d.rows = nil
	d.cursor = 0
	d.visible = false
	d.handler = nil
	d.onConfirm = nil
}

func (d *dialogHost) AppendRadioCategory(title string, options []session.Option) {
	d.appendCategory(title, rowRadio, options)
}

func (d *dialogHost) AppendCheckedCategory(title string, options []session.Option) {
	d.appendCategory(title, rowChecked, options)
}

func (d *dialogHost) AppendSingleButton(option session.Option) {
	d.rows = append(d.rows, dialogRow{kind: rowButton, category: -1, option: option})
}

func (d *dialogHost) ShowDialog(title string, handler func(session.Option), onConfirm func()) {
	d.title = title
	d.handler = handler
	d.onConfirm = onConfirm
	d.visible = len(d.rows) > 0
	if d.cursor >= len(d.rows) {
		d.cursor = 0
	}
}

func (d *dialogHost) appendCategory(title string, kind rowKind, options []session.Option) {
	category := len(d.categories)
	d.categories = append(d.categories, title)
	for _, option := range options {
		d.rows = append(d.rows, dialogRow{kind: kind, category: category, option: option})
	}
}

func (d *dialogHost) moveUp() {
	if d.cursor > 0 {
		d.cursor--
	}
}

func (d *dialogHost) moveDown() {
	if d.cursor < len(d.rows)-1 {
		d.cursor++
	}
}

// activate applies the row under the cursor and forwards it to the handler
// with its new checked state. Radio rows are exclusive within their
// category; checked rows toggle.
func (d *dialogHost) activate() {
	if !d.visible || d.cursor >= len(d.rows) {
		return
	}

	row := &d.rows[d.cursor]
	switch row.kind {
	case rowRadio:
		for i := range d.rows {
			if d.rows[i].kind == rowRadio && d.rows[i].category == row.category {
				d.rows[i].option.Checked = false
			}
		}
		row.option.Checked = true
	case rowChecked:
		row.option.Checked = !row.option.Checked
	}

	if d.handler != nil {
		d.handler(row.option)
	}
}

// confirm fires the confirmation callback and hides the dialog.
func (d *dialogHost) confirm() {
	if !d.visible {
		return
	}
	onConfirm := d.onConfirm
	d.visible = false
	if onConfirm != nil {
		onConfirm()
	}
}

func (d *dialogHost) dismiss() {
	d.visible = false
}

// current returns the option under the cursor.
func (d *dialogHost) current() (session.Option, bool) {
	if !d.visible || d.cursor >= len(d.rows) {
		return session.Option{}, false
	}
	return d.rows[d.cursor].option, true
}

func (d *dialogHost) View() string {
	var b strings.Builder

	category := -2
	for i, row := range d.rows {
		if row.category != category {
			category = row.category
			if i > 0 {
				b.WriteString("\n")
			}
			if category >= 0 {
				b.WriteString(categoryStyle.Render(d.categories[category]))
				b.WriteString("\n")
			}
		}

		pointer := "  "
		if i == d.cursor {
			pointer = cursorStyle.Render("> ")
		}

		b.WriteString(pointer)
		b.WriteString(rowMarker(row))
		b.WriteString(fitText(row.option.Title, 60))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func rowMarker(row dialogRow) string {
	switch row.kind {
	case rowRadio:
		if row.option.Checked {
			return "(•) "
		}
		return "( ) "
	case rowChecked:
		if row.option.Checked {
			return "[x] "
		}
		return "[ ] "
	default:
		return "+ "
	}
}
