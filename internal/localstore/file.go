package localstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	errs "shelterapp/cli/internal/errors"
)

// File is a Store backed by a single JSON document on disk. It serves
// platforms without a usable OS keychain when sqlite is not wanted either.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

func (f *File) Get(ctx context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return nil, err
	}
	v, ok := values[key]
	if !ok {
		return nil, nil
	}
	return v, nil
}

func (f *File) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return err
	}
	values[key] = value
	return f.save(values)
}

func (f *File) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	values, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return f.save(values)
}

func (f *File) load() (map[string][]byte, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string][]byte{}, nil
	}
	if err != nil {
		return nil, errs.Wrap(errs.StorageFailed, "failed to read state file", err)
	}
	values := map[string][]byte{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, errs.Wrap(errs.StorageFailed, fmt.Sprintf("failed to parse state file %s", f.path), err)
	}
	return values, nil
}

func (f *File) save(values map[string][]byte) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil { // private dir
		return errs.Wrap(errs.StorageFailed, "failed to prepare state dir", err)
	}
	if err := os.WriteFile(f.path, data, 0o600); err != nil {
		return errs.Wrap(errs.StorageFailed, "failed to write state file", err)
	}
	return nil
}

var _ Store = (*File)(nil)
