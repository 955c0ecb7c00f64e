//go:build unit

package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_WriteAndReadFile(t *testing.T) {
	adapter := NewManagerAdapter()

	tempDir := t.TempDir()
	testFile := filepath.Join(tempDir, "hostapd-wlan1.conf")
	testContent := []byte("interface=wlan1\nssid=test\n")

	t.Run("WriteFile", func(t *testing.T) {
		err := adapter.WriteFile(testFile, testContent, 0600)
		assert.NoError(t, err)

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
	})

	t.Run("ReadFile", func(t *testing.T) {
		content, err := adapter.ReadFile(testFile)
		assert.NoError(t, err)
		assert.Equal(t, testContent, content)
	})

	t.Run("FileExists", func(t *testing.T) {
		assert.True(t, adapter.FileExists(testFile))
		assert.False(t, adapter.FileExists(filepath.Join(tempDir, "nonexistent.conf")))
	})

	t.Run("RemoveFile", func(t *testing.T) {
		require.NoError(t, adapter.RemoveFile(testFile))
		assert.False(t, adapter.FileExists(testFile))

		// Removing twice is fine
		assert.NoError(t, adapter.RemoveFile(testFile))
	})
}

func TestManagerAdapter_ReadFile_NonExistent(t *testing.T) {
	adapter := NewManagerAdapter()

	_, err := adapter.ReadFile("/nonexistent/file.txt")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestManagerAdapter_WriteFile_InvalidPath(t *testing.T) {
	adapter := NewManagerAdapter()

	err := adapter.WriteFile("/nonexistent/directory/file.txt", []byte("test"), 0644)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write file")
}

func TestManagerAdapter_RemoveFile_Directory(t *testing.T) {
	adapter := NewManagerAdapter()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "child"), []byte("x"), 0644))

	err := adapter.RemoveFile(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to remove file")
}

func TestManagerAdapter_EnsureDir(t *testing.T) {
	adapter := NewManagerAdapter()

	dir := filepath.Join(t.TempDir(), "run", "wifid")
	require.NoError(t, adapter.EnsureDir(dir, 0755))
	assert.True(t, adapter.FileExists(dir))

	// Existing directories are fine
	assert.NoError(t, adapter.EnsureDir(dir, 0755))

	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, adapter.WriteFile(file, []byte("x"), 0644))
	err := adapter.EnsureDir(filepath.Join(file, "sub"), 0755)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create directory")
}
