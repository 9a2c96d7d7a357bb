// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import "fmt"

// FormatAccount renders an account as "name (email)", or just "name" when
// the account has no e-mail.
func FormatAccount(name string, email *string) string {
	if email == nil {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, *email)
}
