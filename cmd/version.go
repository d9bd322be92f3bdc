// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

var (
	// Version is the CLI version reported by --version.
	// Release builds override it with -ldflags.
	Version = "0.0.0-dev"
)
