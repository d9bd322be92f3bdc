// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package logging keeps secrets out of anything shelterapp prints. Mask
// scrubs passwords and account emails from arbitrary strings, PresentError
// renders errors as single masked lines, and Debugf gates diagnostic output
// behind SHELTERAPP_VERBOSE.
package logging

import (
	"regexp"
)

var (
	rePassword   = regexp.MustCompile(`(?i)(password=)([^\s;]+)`)
	rePassphrase = regexp.MustCompile(`(?i)(passphrase=|secret=)([^\s;]+)`)
	reEmail      = regexp.MustCompile(`([A-Za-z0-9._%+-])[A-Za-z0-9._%+-]*(@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
)

// Mask scrubs credential values and email addresses from s.
// Email local parts keep their first character so accounts stay recognizable.
func Mask(s string) string {
	out := s
	out = rePassword.ReplaceAllString(out, "$1***")
	out = rePassphrase.ReplaceAllString(out, "$1***")
	out = reEmail.ReplaceAllString(out, "$1***$2")
	return out
}
