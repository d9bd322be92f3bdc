// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"fmt"
	"os"
	"strings"
)

// VerboseEnv enables debug output for the current process when set to "1".
const VerboseEnv = "SHELTERAPP_VERBOSE"

// Verbose reports whether debug output is enabled.
func Verbose() bool {
	return os.Getenv(VerboseEnv) == "1"
}

// ApplyLevel maps the configured log level onto the verbose switch. Only
// "debug" has an effect; other levels leave the current setting alone so a
// -v flag stays in force.
func ApplyLevel(level string) {
	if strings.EqualFold(level, "debug") {
		os.Setenv(VerboseEnv, "1")
	}
}

// Debugf prints a masked debug line when verbose mode is on.
func Debugf(format string, args ...any) {
	if !Verbose() {
		return
	}
	fmt.Printf("[DEBUG] %s\n", Mask(fmt.Sprintf(format, args...)))
}
