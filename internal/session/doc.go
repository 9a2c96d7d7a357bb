// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the account settings session: it fetches the
// account list from an [AccountDirectory] off the presentation goroutine,
// renders a settings dialog through a [DialogHost], collects the user's
// pending choices and commits them on explicit confirmation.
//
// A [Controller] owns at most one in-flight fetch. Starting a new session
// disposes the previous fetch, and renders produced by a disposed fetch are
// dropped, so a late result can never resurrect state after teardown.
//
// All session state (the pending removals and the selected account) is
// touched only on the presentation goroutine. Callers post work onto that
// goroutine through a [Dispatcher].
package session
