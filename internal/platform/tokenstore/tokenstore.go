// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

/*
Package tokenstore persists the session token across application restarts.

It is the Go counterpart of the browser's durable local storage: the token is
written on login, erased on logout, and read exactly once at startup. There is
exactly one writer context (the commerce manager), so no locking is required
beyond what the filesystem provides.
*/
package tokenstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileStore stores the session token in a single file.
//
// # Permissions
//
// The file is written with 0600 and its parent directory with 0700 — the
// token is a raw credential.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at the given file path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted token.
//
// A missing file is not an error: it returns the empty string, meaning
// "no session".
func (store *FileStore) Load() (string, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("tokenstore: failed to read token: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token, creating the parent directory if needed.
func (store *FileStore) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o700); err != nil {
		return fmt.Errorf("tokenstore: failed to create token directory: %w", err)
	}
	if err := os.WriteFile(store.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("tokenstore: failed to write token: %w", err)
	}
	return nil
}

// Clear erases the persisted token. Clearing an absent token is a no-op.
func (store *FileStore) Clear() error {
	if err := os.Remove(store.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("tokenstore: failed to remove token: %w", err)
	}
	return nil
}
