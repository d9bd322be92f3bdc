// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain stores session state in the OS credential store, exposed
// through the same key/value contract as the other local storage backends so
// the session lives next to the platform's own secrets.
//
// Supported platforms are macOS (native security command preferred, keyring
// library as fallback) and Windows (Credential Manager). All operations are
// safe for concurrent use.
package keychain

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/99designs/keyring"

	errs "shelterapp/cli/internal/errors"
	"shelterapp/cli/internal/localstore"
	"shelterapp/cli/internal/logging"
)

// Manager is the OS-credential-store implementation of localstore.Store.
// Exactly one of ring and backend is set.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
}

// keychainBackend is the contract native platform backends implement.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// errKeyNotFound is how native backends report absent keys.
var errKeyNotFound = errors.New("key not found")

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "shelterapp"

// New creates a keychain manager over the platform credential store.
func New() (*Manager, error) {
	// macOS gets the native security command when it resolves; everything
	// else goes through the keyring library.
	if runtime.GOOS == "darwin" {
		if backend, err := newSecurityBackend(); err == nil {
			return &Manager{backend: backend}, nil
		}
	}

	ring, err := openRing()
	if err != nil {
		return nil, errs.Wrap(errs.StorageUnavailable, "OS keychain unavailable", err)
	}
	return &Manager{ring: ring}, nil
}

// openRing opens the OS keyring with native platform backends only. There is
// no file fallback here; platforms without a credential store use one of the
// other storage backends instead.
func openRing() (keyring.Keyring, error) {
	var allowed []keyring.BackendType
	switch runtime.GOOS {
	case "darwin":
		// Keychain first; pass covers machines where the keychain API is
		// locked down (needs the pass utility and an initialized GPG key)
		allowed = []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}
	case "windows":
		allowed = []keyring.BackendType{keyring.WinCredBackend}
	default:
		return nil, errors.New("secure storage not supported on this OS (macOS/Windows only)")
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: allowed,
		PassPrefix:      ServiceName,
	}
	if runtime.GOOS == "windows" {
		// keeps our entries grouped in the credential manager UI
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable; install pass as a fallback: brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, err
	}
	return ring, nil
}

// Get retrieves the value stored under key. Absent keys yield (nil, nil).
// This method is thread-safe.
func (m *Manager) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		value, err := m.backend.Get(key)
		if errors.Is(err, errKeyNotFound) {
			return nil, nil
		}
		if err != nil {
			return nil, errs.Wrap(errs.StorageFailed, "keychain read failed", err)
		}
		return []byte(value), nil
	}

	it, err := m.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.StorageFailed, "keychain read failed", err)
	}
	return it.Data, nil
}

// Set stores value under key, replacing any previous value.
// This method is thread-safe.
func (m *Manager) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logging.Debugf("keychain: Set() called for key '%s', value length: %d", key, len(value))

	if m.backend != nil {
		if err := m.backend.Set(key, string(value)); err != nil {
			return errs.Wrap(errs.StorageFailed, "keychain write failed", err)
		}
		return nil
	}
	if err := m.ring.Set(keyring.Item{Key: key, Data: value}); err != nil {
		return errs.Wrap(errs.StorageFailed, "keychain write failed", err)
	}
	return nil
}

// Remove deletes the value stored under key. Missing keys are not an error.
// This method is thread-safe.
func (m *Manager) Remove(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	logging.Debugf("keychain: Remove() called for key '%s'", key)

	if m.backend != nil {
		if err := m.backend.Delete(key); err != nil && !errors.Is(err, errKeyNotFound) {
			return errs.Wrap(errs.StorageFailed, "keychain remove failed", err)
		}
		return nil
	}

	if err := m.ring.Remove(key); err != nil && !errors.Is(err, keyring.ErrKeyNotFound) {
		return errs.Wrap(errs.StorageFailed, "keychain remove failed", err)
	}
	return nil
}

var _ localstore.Store = (*Manager)(nil)
