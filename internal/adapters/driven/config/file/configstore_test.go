package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.DirExists(t, dir)
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("headset.gain", 48))

	val, ok := store.Get("headset.gain")
	assert.True(t, ok)
	assert.Equal(t, 48, val)
}

func TestConfigStore_Get_Missing(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
	assert.Equal(t, "", store.GetString("missing.key"))
	assert.Equal(t, 0, store.GetInt("missing.key"))
	assert.False(t, store.GetBool("missing.key"))
	assert.Nil(t, store.GetStringSlice("missing.key"))
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("headset.output_path", "recordings"))
	require.NoError(t, store.Set("headset.sampling_rate_hz", 500))
	require.NoError(t, store.Set("modules.allow_add", true))
	require.NoError(t, store.Set("modules.seed", []string{"Avatar", "Video"}))

	assert.Equal(t, "recordings", store.GetString("headset.output_path"))
	assert.Equal(t, 500, store.GetInt("headset.sampling_rate_hz"))
	assert.True(t, store.GetBool("modules.allow_add"))
	assert.Equal(t, []string{"Avatar", "Video"}, store.GetStringSlice("modules.seed"))
}

func TestConfigStore_TypedGetters_WrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("key", 42))

	assert.Equal(t, "", store.GetString("key"))
	assert.False(t, store.GetBool("key"))
	assert.Nil(t, store.GetStringSlice("key"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("headset.notch_filter", "50Hz"))
	require.NoError(t, store.Set("headset.gain", 24))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)

	// TOML integers round-trip as int64
	assert.Equal(t, "50Hz", reopened.GetString("headset.notch_filter"))
	assert.Equal(t, 24, reopened.GetInt("headset.gain"))
}

func TestConfigStore_Load_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `
[experiment.left]
text = "Think left"
avatar = "left_hand.png"

[modules]
seed = ["Text Commands", "Avatar"]
allow_add = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "Think left", store.GetString("experiment.left.text"))
	assert.Equal(t, "left_hand.png", store.GetString("experiment.left.avatar"))
	assert.Equal(t, []string{"Text Commands", "Avatar"}, store.GetStringSlice("modules.seed"))
	assert.True(t, store.GetBool("modules.allow_add"))
}

func TestConfigStore_Load_MissingFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Load())
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_Load_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("not [valid"), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "value"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}
