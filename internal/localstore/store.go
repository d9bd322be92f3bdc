// Package localstore defines the device-local key/value store that session
// state is persisted through, along with the built-in backends. The OS
// keychain backend lives in internal/keychain; everything here is plain
// filesystem storage.
//
// Values are opaque byte slices. Callers own serialization; the store never
// inspects what it holds.
package localstore

import "context"

// Keys used by shelterapp components.
const (
	// KeyCurrentUser holds the serialized record of the signed-in user.
	KeyCurrentUser = "current_user"
)

// Store is the minimal contract over device-local storage.
// Get returns (nil, nil) when the key is absent. Set overwrites any existing
// value. Remove succeeds for missing keys.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
