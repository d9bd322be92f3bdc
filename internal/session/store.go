// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session maintains the signed-in user for this device.
//
// A Store keeps the current user in memory and mirrors it into a device-local
// key/value store so sessions survive restarts. Construction hydrates the
// previous session; SignIn, Register and SignOut keep memory and storage in
// step. The store is built for exactly one interactive caller: state updates
// are safe to read from other goroutines, but operations are not serialized
// against each other and an operation is not atomic across storage and memory.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"shelterapp/cli/internal/localstore"
	"shelterapp/cli/internal/logging"
)

// Fixed user-facing failure messages. The UI renders these verbatim next to
// the state they describe, so they stay short and stable.
const (
	msgLoadFailed     = "Failed to load user"
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
	msgLogoutFailed   = "Logout failed"
)

// Store holds the device session: the current user, a loading flag for
// front-ends and the failure message of the last operation, if any.
type Store struct {
	kv localstore.Store

	verifier Verifier
	newID    func() string

	mu        sync.Mutex
	current   *UserRecord
	loading   bool
	lastError string
}

// Option customizes a Store at construction time.
type Option func(*Store)

// WithVerifier replaces the credential check.
func WithVerifier(v Verifier) Option {
	return func(s *Store) { s.verifier = v }
}

// WithIDGenerator replaces the record ID source. Tests use this to get
// deterministic IDs.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) { s.newID = gen }
}

// New constructs a Store over kv and hydrates the previously persisted
// session, if any. Hydration failure never fails construction; it surfaces
// through the snapshot's LastError as "Failed to load user".
func New(ctx context.Context, kv localstore.Store, opts ...Option) *Store {
	s := &Store{
		kv:       kv,
		verifier: demoVerifier{},
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.hydrate(ctx)
	return s
}

// hydrate restores the persisted user into memory. It runs exactly once,
// inside New.
func (s *Store) hydrate(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	data, err := s.kv.Get(ctx, localstore.KeyCurrentUser)
	if err != nil {
		logging.Debugf("session: hydrate read failed: %v", err)
		s.setFailure(msgLoadFailed)
		return
	}
	if len(data) == 0 {
		// nothing persisted; start signed out
		return
	}

	record, err := decodeRecord(data)
	if err != nil {
		logging.Debugf("session: hydrate decode failed: %v", err)
		s.setFailure(msgLoadFailed)
		return
	}
	s.setCurrent(&record)
}

// SignIn verifies the credentials and makes email the signed-in user.
// Admin rights are derived from the email domain and the display name from
// the local part. The record is persisted before memory is updated, so a
// storage failure leaves the previous session in place. Failures are raised
// as *AuthError and mirrored into LastError as "Login failed".
func (s *Store) SignIn(ctx context.Context, email, password string) error {
	s.begin()
	defer s.setLoading(false)

	if !s.verifier.Verify(email, password) {
		s.setFailure(msgLoginFailed)
		return &AuthError{Message: "Invalid credentials"}
	}

	record := UserRecord{
		ID:      s.newID(),
		Email:   email,
		Name:    displayName(email),
		IsAdmin: isAdminEmail(email),
	}
	if err := s.persist(ctx, record); err != nil {
		logging.Debugf("session: sign-in persist failed: %v", err)
		s.setFailure(msgLoginFailed)
		return &AuthError{Message: msgLoginFailed, Err: err}
	}
	s.setCurrent(&record)
	return nil
}

// Register creates an account on this device and signs it in, reporting
// success as a boolean rather than an error. The password is accepted but
// not yet stored or checked anywhere. Registered accounts never get admin
// rights. Registering over an active session replaces it without a sign-out.
func (s *Store) Register(ctx context.Context, email, password, name string) bool {
	s.begin()
	defer s.setLoading(false)

	record := UserRecord{
		ID:      s.newID(),
		Email:   email,
		Name:    name,
		IsAdmin: false,
	}
	if err := s.persist(ctx, record); err != nil {
		logging.Debugf("session: register persist failed: %v", err)
		s.setFailure(msgRegisterFailed)
		return false
	}
	s.setCurrent(&record)
	return true
}

// SignOut removes the persisted session and clears the in-memory user.
// When removal fails the in-memory user is kept, since the stored session
// still exists; the failure is raised as *AuthError and mirrored into
// LastError as "Logout failed". Signing out while signed out is a no-op.
func (s *Store) SignOut(ctx context.Context) error {
	s.begin()
	defer s.setLoading(false)

	if err := s.kv.Remove(ctx, localstore.KeyCurrentUser); err != nil {
		logging.Debugf("session: sign-out remove failed: %v", err)
		s.setFailure(msgLogoutFailed)
		return &AuthError{Message: msgLogoutFailed, Err: err}
	}
	s.setCurrent(nil)
	return nil
}

// Snapshot is a point-in-time copy of the exposed session state.
type Snapshot struct {
	// CurrentUser is the signed-in user, or nil when signed out.
	CurrentUser *UserRecord
	// IsLoading reports whether an operation is in flight.
	IsLoading bool
	// LastError is the failure message of the last operation, empty when the
	// last operation succeeded.
	LastError string
}

// Snapshot returns a copy of the current state. The returned record is
// detached; mutating it does not affect the store.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{IsLoading: s.loading, LastError: s.lastError}
	if s.current != nil {
		r := *s.current
		snap.CurrentUser = &r
	}
	return snap
}

// persist serializes the record and writes it under the session key,
// replacing whatever was stored before.
func (s *Store) persist(ctx context.Context, r UserRecord) error {
	data, err := encodeRecord(r)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, localstore.KeyCurrentUser, data)
}

// begin marks an operation as in flight and discards the previous failure.
func (s *Store) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastError = ""
	s.mu.Unlock()
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

func (s *Store) setFailure(msg string) {
	s.mu.Lock()
	s.lastError = msg
	s.mu.Unlock()
}

func (s *Store) setCurrent(r *UserRecord) {
	s.mu.Lock()
	s.current = r
	s.mu.Unlock()
}
