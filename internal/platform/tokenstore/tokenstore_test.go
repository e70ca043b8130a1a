// Copyright (c) 2026 MVS Mart. All rights reserved.
// Author: dev@mvsmart.in

package tokenstore_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvsmart/storefront/internal/platform/tokenstore"
)

/*
TestFileStore_RoundTrip saves a token and reads it back.
*/
func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := tokenstore.NewFileStore(path)

	require.NoError(t, store.Save("tok-abc123"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc123", token)
}

/*
TestFileStore_LoadMissing treats an absent file as "no session", not an error.
*/
func TestFileStore_LoadMissing(t *testing.T) {
	store := tokenstore.NewFileStore(filepath.Join(t.TempDir(), "token"))

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)
}

/*
TestFileStore_Clear removes the token and is idempotent.
*/
func TestFileStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	store := tokenstore.NewFileStore(path)

	require.NoError(t, store.Save("tok"))
	require.NoError(t, store.Clear())

	token, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, token)

	// Clearing again must not fail.
	require.NoError(t, store.Clear())
}
