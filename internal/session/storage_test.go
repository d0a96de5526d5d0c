package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded, "missing file reads as empty, not as an error")

	require.NoError(t, storage.Save("tok-abc"))
	loaded, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", loaded)

	require.NoError(t, storage.Clear())
	loaded, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded)
	require.NoError(t, storage.Clear(), "clearing twice is a no-op")
}

func TestFileStorage_Permissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds", "token")
	storage, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, storage.Save("tok-abc"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0700), dirInfo.Mode().Perm())
}

func TestFileStorage_TrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("tok-abc\n"), 0600))

	storage, err := NewFileStorage(path)
	require.NoError(t, err)
	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", loaded)
}

func TestMemoryStorage(t *testing.T) {
	storage := NewMemoryStorage()

	loaded, err := storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded)

	require.NoError(t, storage.Save("tok"))
	loaded, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "tok", loaded)

	require.NoError(t, storage.Clear())
	loaded, err = storage.Load()
	require.NoError(t, err)
	assert.Equal(t, "", loaded)
}
