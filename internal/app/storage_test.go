package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore(t *testing.T) {
	s := NewMemStore()

	_, ok := s.GetItem("missing")
	assert.False(t, ok)

	require.NoError(t, s.SetItem("k", "v"))
	v, ok := s.GetItem("k")
	require.True(t, ok)
	assert.Equal(t, "v", v)

	require.NoError(t, s.RemoveItem("k"))
	_, ok = s.GetItem("k")
	assert.False(t, ok)

	// Removing an absent key is fine.
	require.NoError(t, s.RemoveItem("k"))
}

func TestFileStorePersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultStoreFile)

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem(KeyUsers, `[{"id":1}]`))
	require.NoError(t, s.SetItem(KeySelectedDistrict, "Tech Park"))

	// Reopening finds the persisted state.
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok := reopened.GetItem(KeyUsers)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, v)
	district, ok := reopened.GetItem(KeySelectedDistrict)
	require.True(t, ok)
	assert.Equal(t, "Tech Park", district)

	require.NoError(t, reopened.RemoveItem(KeySelectedDistrict))
	again, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok = again.GetItem(KeySelectedDistrict)
	assert.False(t, ok)
}

func TestFileStoreWriteHygiene(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultStoreFile)

	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.SetItem("a", "1"))
	require.NoError(t, s.SetItem("b", "2"))

	// No temp file is left behind after a save.
	_, err = os.Stat(path + TmpSuffix)
	assert.True(t, os.IsNotExist(err))

	// The second write kept the previous state as backup.
	backup, err := os.ReadFile(path + BackupSuffix)
	require.NoError(t, err)
	assert.Contains(t, string(backup), `"a"`)
	assert.NotContains(t, string(backup), `"b"`)
}

func TestFileStoreLastWriterWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultStoreFile)

	// Two stores over one file model two tabs sharing browser storage.
	tab1, err := NewFileStore(path)
	require.NoError(t, err)
	tab2, err := NewFileStore(path)
	require.NoError(t, err)

	require.NoError(t, tab1.SetItem("k", "from tab1"))

	// tab2 does not observe tab1's write in its in-memory copy.
	_, ok := tab2.GetItem("k")
	assert.False(t, ok)

	// tab2's write clobbers tab1's at whole-file granularity.
	require.NoError(t, tab2.SetItem("other", "from tab2"))

	fresh, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok = fresh.GetItem("k")
	assert.False(t, ok, "tab1's write was lost")
	v, ok := fresh.GetItem("other")
	require.True(t, ok)
	assert.Equal(t, "from tab2", v)

	// Reload picks up the other tab's state.
	require.NoError(t, tab1.Reload())
	v, ok = tab1.GetItem("other")
	require.True(t, ok)
	assert.Equal(t, "from tab2", v)
}

func TestFileStoreMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "does-not-exist.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	_, ok := s.GetItem("k")
	assert.False(t, ok)
}
