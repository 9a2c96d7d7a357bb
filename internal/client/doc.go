// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client wires the terminal account switcher.
//
// The account directory is either the local SQLite database or, when a
// directory server address is configured, the remote HTTP adapter. Both are
// wrapped by the same validation and logging layers and handed to the TUI.
package client
