// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

//go:build darwin

package keychain

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"shelterapp/cli/internal/logging"
)

// truncate shortens s to at most n characters for debug output.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// securityBackend drives the macOS security command directly.
type securityBackend struct{}

func newSecurityBackend() (*securityBackend, error) {
	if _, err := exec.LookPath("security"); err != nil {
		return nil, fmt.Errorf("security command not found: %w", err)
	}
	return &securityBackend{}, nil
}

// Set writes a value into the macOS keychain under key.
func (s *securityBackend) Set(key, value string) error {
	logging.Debugf("security_darwin: Set() called for key '%s', value length: %d", key, len(value))

	// remove any existing entry before adding; -U alone leaves stale
	// attributes on some macOS versions
	if err := s.Delete(key); err != nil {
		logging.Debugf("security_darwin: Delete() returned: %v", err)
	}

	cmd := exec.Command("security", "add-generic-password",
		"-a", ServiceName, // account name
		"-s", key, // service name
		"-w", value, // password
		"-U", // update if exists
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		errMsg := fmt.Errorf("failed to store '%s' in keychain: %s: %w", key, stderr.String(), err)
		logging.Debugf("security_darwin: Set() failed: %v", errMsg)
		return errMsg
	}

	logging.Debugf("security_darwin: Set() succeeded for key '%s'", key)
	return nil
}

// Get reads the value stored under key. Absent keys return errKeyNotFound.
func (s *securityBackend) Get(key string) (string, error) {
	logging.Debugf("security_darwin: Get() called for key '%s'", key)

	cmd := exec.Command("security", "find-generic-password",
		"-a", ServiceName, // account name
		"-s", key, // service name
		"-w", // output password only
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if strings.Contains(stderr.String(), "could not be found") {
			logging.Debugf("security_darwin: Get() key not found: '%s'", key)
			return "", errKeyNotFound
		}
		errMsg := fmt.Errorf("failed to retrieve from keychain: %s: %w", stderr.String(), err)
		logging.Debugf("security_darwin: Get() failed: %v", errMsg)
		return "", errMsg
	}

	result := strings.TrimSpace(stdout.String())
	logging.Debugf("security_darwin: Get() trimmed output (first 100 chars): %q", truncate(result, 100))
	return result, nil
}

// Delete drops the entry stored under key. Missing entries are fine.
func (s *securityBackend) Delete(key string) error {
	cmd := exec.Command("security", "delete-generic-password",
		"-a", ServiceName, // account name
		"-s", key, // service name
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if strings.Contains(stderr.String(), "could not be found") {
			return nil
		}
		return fmt.Errorf("failed to delete from keychain: %s: %w", stderr.String(), err)
	}

	return nil
}
