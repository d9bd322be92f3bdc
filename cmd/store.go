// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"shelterapp/cli/internal/config"
	errs "shelterapp/cli/internal/errors"
	"shelterapp/cli/internal/keychain"
	"shelterapp/cli/internal/localstore"
	"shelterapp/cli/internal/logging"
	"shelterapp/cli/internal/session"
	"shelterapp/cli/internal/xdg"
)

// openStore builds the storage backend selected by configuration. It returns
// the store, the name of the backend actually in use and a release function
// for backends that hold OS resources.
func openStore(ctx context.Context, cfg config.Config) (localstore.Store, string, func(), error) {
	noop := func() {}

	switch cfg.Storage.Backend {
	case "", config.BackendAuto:
		// Prefer the OS keychain; fall back to sqlite where no native
		// credential store exists (Linux, headless machines).
		km, err := keychain.New()
		if err == nil {
			return km, config.BackendKeychain, noop, nil
		}
		logging.Debugf("store: keychain unavailable, falling back to sqlite: %v", err)
		store, closer, err := openSQLite(ctx, cfg)
		if err != nil {
			return nil, "", nil, err
		}
		return store, config.BackendSQLite, closer, nil

	case config.BackendKeychain:
		km, err := keychain.New()
		if err != nil {
			return nil, "", nil, err
		}
		return km, config.BackendKeychain, noop, nil

	case config.BackendSQLite:
		store, closer, err := openSQLite(ctx, cfg)
		if err != nil {
			return nil, "", nil, err
		}
		return store, config.BackendSQLite, closer, nil

	case config.BackendFile:
		path := cfg.Storage.Path
		if path == "" {
			dir, err := xdg.StateDir()
			if err != nil {
				return nil, "", nil, err
			}
			path = filepath.Join(dir, "state.json")
		}
		return localstore.NewFile(path), config.BackendFile, noop, nil

	case config.BackendMemory:
		return localstore.NewMemory(), config.BackendMemory, noop, nil

	default:
		return nil, "", nil, errs.New(errs.StorageUnavailable,
			fmt.Sprintf("unknown storage backend %q in config", cfg.Storage.Backend))
	}
}

func openSQLite(ctx context.Context, cfg config.Config) (*localstore.SQLite, func(), error) {
	path := cfg.Storage.Path
	if path == "" {
		dir, err := xdg.StateDir()
		if err != nil {
			return nil, nil, err
		}
		path = filepath.Join(dir, "session.db")
	}
	store, err := localstore.OpenSQLite(ctx, path)
	if err != nil {
		return nil, nil, errs.Wrap(errs.StorageUnavailable, "sqlite store unavailable", err)
	}
	return store, func() { _ = store.Close() }, nil
}

// openSession hydrates a session store over the configured storage backend.
// The returned release function must be called when the command is done with
// the session.
func openSession(ctx context.Context) (*session.Store, string, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, "", nil, err
	}
	logging.ApplyLevel(cfg.LogLevel)
	kv, backend, release, err := openStore(ctx, cfg)
	if err != nil {
		return nil, "", nil, err
	}
	return session.New(ctx, kv), backend, release, nil
}
