package localstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	errs "shelterapp/cli/internal/errors"
)

func tempFileStore(t *testing.T) *File {
	t.Helper()
	return NewFile(filepath.Join(t.TempDir(), "state.json"))
}

func TestFile_GetAbsentBeforeFirstWrite(t *testing.T) {
	f := tempFileStore(t)
	ctx := context.Background()

	// no file on disk yet
	v, err := f.Get(ctx, "anything")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestFile_SetThenGet(t *testing.T) {
	f := tempFileStore(t)
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "k1", []byte("hello")))

	v, err := f.Get(ctx, "k1")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), v)
}

func TestFile_ValuesSurviveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	ctx := context.Background()

	require.NoError(t, NewFile(path).Set(ctx, "k", []byte("persisted")))

	v, err := NewFile(path).Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), v)
}

func TestFile_RemoveIsIdempotent(t *testing.T) {
	f := tempFileStore(t)
	ctx := context.Background()

	require.NoError(t, f.Set(ctx, "x", []byte{0x01}))
	require.NoError(t, f.Remove(ctx, "x"))

	v, err := f.Get(ctx, "x")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, f.Remove(ctx, "x"))
}

func TestFile_CorruptFileReported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFile(path).Get(context.Background(), "k")
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to parse state file")

	var e *errs.E
	require.ErrorAs(t, err, &e)
	require.Equal(t, errs.StorageFailed, e.Kind)
}

func TestFile_WritesWithPrivatePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, NewFile(path).Set(context.Background(), "k", []byte("v")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}
