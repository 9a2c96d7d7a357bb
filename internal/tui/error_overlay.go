// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

// errorOverlay is the session Reporter. It is only touched on the program
// goroutine.
type errorOverlay struct {
	message string
}

// ReportError shows err until the user dismisses it.
func (o *errorOverlay) ReportError(err error) {
	if err == nil {
		return
	}
	o.message = humanizeError(err)
}

func (o *errorOverlay) visible() bool {
	return o.message != ""
}

func (o *errorOverlay) dismiss() {
	o.message = ""
}

func (o *errorOverlay) View() string {
	content := errorStyle.Render("Error") + "\n\n" + o.message + "\n\n" + helpStyle.Render("enter / esc close")
	return overlayBoxStyle.Render(content)
}
