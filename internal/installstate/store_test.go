package installstate

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testPath = "/home/user/.config/omarchy-cybex/installer-state.json"

func newMemStore() *FileStore {
	return NewWithFs(afero.NewMemMapFs(), testPath)
}

func TestLoadMissingFileReturnsEmptySet(t *testing.T) {
	store := newMemStore()
	assert.Empty(t, store.Load())
}

func TestLoadCorruptFileReturnsEmptySet(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, testPath, []byte("{not json"), 0o644))

	store := NewWithFs(fs, testPath)
	assert.Empty(t, store.Load())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := newMemStore()

	installed := map[string]bool{"claude": true, "fish": true, "plymouth": true}
	require.NoError(t, store.Save(installed))

	assert.Equal(t, installed, store.Load())
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewWithFs(fs, testPath)

	require.NoError(t, store.Save(map[string]bool{"ssh": true}))

	exists, err := afero.Exists(fs, testPath)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestMarkInstalledAndUninstalled(t *testing.T) {
	store := newMemStore()

	store.MarkInstalled("claude")
	store.MarkInstalled("fish")
	assert.Equal(t, map[string]bool{"claude": true, "fish": true}, store.Load())

	store.MarkUninstalled("claude")
	assert.Equal(t, map[string]bool{"fish": true}, store.Load())

	// Removing an id that was never recorded is a no-op.
	store.MarkUninstalled("claude")
	assert.Equal(t, map[string]bool{"fish": true}, store.Load())
}

func TestMarkInstalledSwallowsSaveFailure(t *testing.T) {
	store := NewWithFs(afero.NewReadOnlyFs(afero.NewMemMapFs()), testPath)

	// Must not panic or surface an error.
	store.MarkInstalled("claude")
	assert.Empty(t, store.Load())
}
