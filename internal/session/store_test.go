// Copyright (c) 2025 Shelterapp
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shelterapp/cli/internal/localstore"
)

var errStorageDown = errors.New("storage down")

// faultyStore wraps the in-memory store and fails selected operations, so
// tests can exercise persistence failures.
type faultyStore struct {
	*localstore.Memory
	failGet    bool
	failSet    bool
	failRemove bool
}

func newFaultyStore() *faultyStore {
	return &faultyStore{Memory: localstore.NewMemory()}
}

func (f *faultyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errStorageDown
	}
	return f.Memory.Get(ctx, key)
}

func (f *faultyStore) Set(ctx context.Context, key string, value []byte) error {
	if f.failSet {
		return errStorageDown
	}
	return f.Memory.Set(ctx, key, value)
}

func (f *faultyStore) Remove(ctx context.Context, key string) error {
	if f.failRemove {
		return errStorageDown
	}
	return f.Memory.Remove(ctx, key)
}

func TestSignIn_StaffAccount(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())

	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	snap := s.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "admin", snap.CurrentUser.Name)
	assert.Equal(t, "admin@shelter.com", snap.CurrentUser.Email)
	assert.True(t, snap.CurrentUser.IsAdmin)
	assert.NotEmpty(t, snap.CurrentUser.ID)
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.LastError)
}

func TestSignIn_OutsideDomainIsNotStaff(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())

	require.NoError(t, s.SignIn(ctx, "volunteer@gmail.com", "demo123"))

	snap := s.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "volunteer", snap.CurrentUser.Name)
	assert.False(t, snap.CurrentUser.IsAdmin)
}

func TestSignIn_WrongPasswordKeepsSession(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())
	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	err := s.SignIn(ctx, "admin@shelter.com", "wrongpass")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Message)

	snap := s.Snapshot()
	assert.Equal(t, "Login failed", snap.LastError)
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "admin@shelter.com", snap.CurrentUser.Email)
	assert.False(t, snap.IsLoading)
}

func TestSignIn_PersistFailureKeepsPreviousSession(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyStore()
	s := New(ctx, kv)
	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	kv.failSet = true
	err := s.SignIn(ctx, "other@shelter.com", "demo123")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Login failed", authErr.Message)
	require.ErrorIs(t, err, errStorageDown)

	snap := s.Snapshot()
	assert.Equal(t, "Login failed", snap.LastError)
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "admin@shelter.com", snap.CurrentUser.Email)
	assert.False(t, snap.IsLoading)
}

func TestSignIn_GeneratesUniqueIDs(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())

	require.NoError(t, s.SignIn(ctx, "a@shelter.com", "demo123"))
	first := s.Snapshot().CurrentUser.ID

	require.NoError(t, s.SignIn(ctx, "a@shelter.com", "demo123"))
	second := s.Snapshot().CurrentUser.ID

	assert.NotEqual(t, first, second)
}

func TestSignIn_CustomIDGenerator(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory(), WithIDGenerator(func() string { return "fixed-id" }))

	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))
	assert.Equal(t, "fixed-id", s.Snapshot().CurrentUser.ID)
}

// staticVerifier approves or rejects every credential pair.
type staticVerifier struct{ ok bool }

func (v staticVerifier) Verify(_, _ string) bool { return v.ok }

func TestSignIn_CustomVerifier(t *testing.T) {
	ctx := context.Background()

	accepting := New(ctx, localstore.NewMemory(), WithVerifier(staticVerifier{ok: true}))
	require.NoError(t, accepting.SignIn(ctx, "admin@shelter.com", "not-the-shared-password"))
	require.NotNil(t, accepting.Snapshot().CurrentUser)

	rejecting := New(ctx, localstore.NewMemory(), WithVerifier(staticVerifier{ok: false}))
	err := rejecting.SignIn(ctx, "admin@shelter.com", "demo123")
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid credentials", authErr.Message)

	snap := rejecting.Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, "Login failed", snap.LastError)
}

func TestRegister_NeverGrantsAdmin(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())

	ok := s.Register(ctx, "new@shelter.com", "anything", "New User")
	require.True(t, ok)

	snap := s.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "New User", snap.CurrentUser.Name)
	assert.Equal(t, "new@shelter.com", snap.CurrentUser.Email)
	assert.False(t, snap.CurrentUser.IsAdmin)
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.LastError)
}

func TestRegister_ReplacesActiveSession(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	s := New(ctx, kv)
	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	require.True(t, s.Register(ctx, "new@example.com", "anything", "New User"))

	snap := s.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "new@example.com", snap.CurrentUser.Email)

	// the persisted session was replaced as well
	rehydrated := New(ctx, kv).Snapshot()
	require.NotNil(t, rehydrated.CurrentUser)
	assert.Equal(t, "new@example.com", rehydrated.CurrentUser.Email)
}

func TestRegister_PersistFailureReturnsFalse(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyStore()
	s := New(ctx, kv)
	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	kv.failSet = true
	ok := s.Register(ctx, "new@example.com", "anything", "New User")
	assert.False(t, ok)

	snap := s.Snapshot()
	assert.Equal(t, "Registration failed", snap.LastError)
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, "admin@shelter.com", snap.CurrentUser.Email)
	assert.False(t, snap.IsLoading)
}

func TestSignOut_ClearsPersistedSession(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	s := New(ctx, kv)
	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	require.NoError(t, s.SignOut(ctx))

	snap := s.Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.LastError)

	// a fresh store over the same storage hydrates nothing
	assert.Nil(t, New(ctx, kv).Snapshot().CurrentUser)
}

func TestSignOut_RemoveFailureKeepsSession(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyStore()
	s := New(ctx, kv)
	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	kv.failRemove = true
	err := s.SignOut(ctx)
	require.Error(t, err)

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Logout failed", authErr.Message)
	require.ErrorIs(t, err, errStorageDown)

	snap := s.Snapshot()
	assert.Equal(t, "Logout failed", snap.LastError)
	require.NotNil(t, snap.CurrentUser)
	assert.False(t, snap.IsLoading)
}

func TestSignOut_WhileSignedOutIsNoOp(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())

	require.NoError(t, s.SignOut(ctx))
	assert.Nil(t, s.Snapshot().CurrentUser)
}

func TestHydrate_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	first := New(ctx, kv)
	require.NoError(t, first.SignIn(ctx, "jane.doe@shelter.com", "demo123"))
	want := first.Snapshot().CurrentUser

	second := New(ctx, kv)
	snap := second.Snapshot()
	require.NotNil(t, snap.CurrentUser)
	assert.Equal(t, want, snap.CurrentUser)
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.LastError)
}

func TestHydrate_NothingPersisted(t *testing.T) {
	snap := New(context.Background(), localstore.NewMemory()).Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.False(t, snap.IsLoading)
	assert.Empty(t, snap.LastError)
}

func TestHydrate_CorruptStateReportsLoadFailure(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	require.NoError(t, kv.Set(ctx, localstore.KeyCurrentUser, []byte("{broken")))

	snap := New(ctx, kv).Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, "Failed to load user", snap.LastError)
	assert.False(t, snap.IsLoading)
}

func TestHydrate_ReadFailureReportsLoadFailure(t *testing.T) {
	kv := newFaultyStore()
	kv.failGet = true

	snap := New(context.Background(), kv).Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.Equal(t, "Failed to load user", snap.LastError)
	assert.False(t, snap.IsLoading)
}

func TestHydrate_EmptyValueTreatedAsAbsent(t *testing.T) {
	ctx := context.Background()
	kv := localstore.NewMemory()
	require.NoError(t, kv.Set(ctx, localstore.KeyCurrentUser, []byte{}))

	snap := New(ctx, kv).Snapshot()
	assert.Nil(t, snap.CurrentUser)
	assert.Empty(t, snap.LastError)
}

func TestOperationsClearPreviousFailure(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())

	require.Error(t, s.SignIn(ctx, "admin@shelter.com", "wrongpass"))
	require.Equal(t, "Login failed", s.Snapshot().LastError)

	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))
	assert.Empty(t, s.Snapshot().LastError)
}

func TestLoadingClearedAfterEveryOperation(t *testing.T) {
	ctx := context.Background()
	kv := newFaultyStore()
	s := New(ctx, kv)

	_ = s.SignIn(ctx, "admin@shelter.com", "demo123")
	assert.False(t, s.Snapshot().IsLoading)

	_ = s.SignIn(ctx, "admin@shelter.com", "wrongpass")
	assert.False(t, s.Snapshot().IsLoading)

	kv.failSet = true
	_ = s.Register(ctx, "new@example.com", "anything", "New User")
	assert.False(t, s.Snapshot().IsLoading)
	kv.failSet = false

	kv.failRemove = true
	_ = s.SignOut(ctx)
	assert.False(t, s.Snapshot().IsLoading)
	kv.failRemove = false

	_ = s.SignOut(ctx)
	assert.False(t, s.Snapshot().IsLoading)
}

func TestSnapshot_RecordIsDetached(t *testing.T) {
	ctx := context.Background()
	s := New(ctx, localstore.NewMemory())
	require.NoError(t, s.SignIn(ctx, "admin@shelter.com", "demo123"))

	snap := s.Snapshot()
	snap.CurrentUser.Name = "mutated"

	assert.Equal(t, "admin", s.Snapshot().CurrentUser.Name)
}
