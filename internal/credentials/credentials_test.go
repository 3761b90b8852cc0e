package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	require.NoError(t, store.SetActive(Credentials{UserID: "user-1", Token: "tok"}))

	got, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "tok", got.Token)
}

func TestFileStoreNoUser(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))

	_, err := store.Active()
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestFileStoreCorruptedFileCountsAsLoggedOut(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

	_, err := NewFileStore(path).Active()
	assert.ErrorIs(t, err, ErrNoUser)
}

func TestFileStoreRejectsEmptyUser(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "credentials.json"))
	assert.Error(t, store.SetActive(Credentials{}))
}

func TestFileStoreClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	store := NewFileStore(path)

	require.NoError(t, store.SetActive(Credentials{UserID: "user-1"}))
	require.NoError(t, store.Clear())

	_, err := store.Active()
	assert.ErrorIs(t, err, ErrNoUser)

	// Clearing again is fine.
	require.NoError(t, store.Clear())
}

func TestStaticStore(t *testing.T) {
	store := &StaticStore{}

	_, err := store.Active()
	assert.ErrorIs(t, err, ErrNoUser)

	require.NoError(t, store.SetActive(Credentials{UserID: "user-1"}))
	got, err := store.Active()
	require.NoError(t, err)
	assert.Equal(t, "user-1", got.UserID)

	require.NoError(t, store.Clear())
	_, err = store.Active()
	assert.ErrorIs(t, err, ErrNoUser)
}
