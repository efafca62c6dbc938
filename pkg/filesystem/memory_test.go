package filesystem

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFS_WriteAndRead(t *testing.T) {
	fs := NewMemoryFS()

	require.NoError(t, fs.MkdirAll("/ws/dir", 0755))
	require.NoError(t, fs.WriteFile("/ws/dir/file", []byte("content"), 0644))

	data, err := fs.ReadFile("/ws/dir/file")
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))

	info, err := fs.Stat("/ws/dir/file")
	require.NoError(t, err)
	assert.False(t, info.IsDir())
	assert.Equal(t, int64(7), info.Size())
}

func TestMemoryFS_WriteWithoutParent(t *testing.T) {
	fs := NewMemoryFS()

	err := fs.WriteFile("/missing/file", []byte("x"), 0644)
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryFS_MkdirAllIdempotent(t *testing.T) {
	fs := NewMemoryFS()

	require.NoError(t, fs.MkdirAll("/a/b/c", 0755))
	require.NoError(t, fs.MkdirAll("/a/b/c", 0755))

	info, err := fs.Stat("/a/b/c")
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestMemoryFS_MkdirAllOverFile(t *testing.T) {
	fs := NewMemoryFS()

	require.NoError(t, fs.WriteFile("/a", []byte("file"), 0644))
	assert.Error(t, fs.MkdirAll("/a/b", 0755))
}

func TestMemoryFS_ReadDirSorted(t *testing.T) {
	fs := NewMemoryFS()

	require.NoError(t, fs.MkdirAll("/ws/sub", 0755))
	require.NoError(t, fs.WriteFile("/ws/zz", []byte(""), 0644))
	require.NoError(t, fs.WriteFile("/ws/aa", []byte(""), 0644))

	entries, err := fs.ReadDir("/ws")
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "aa", entries[0].Name())
	assert.Equal(t, "sub", entries[1].Name())
	assert.Equal(t, "zz", entries[2].Name())

	// Nested entries are not reported by the parent listing
	require.NoError(t, fs.WriteFile("/ws/sub/deep", []byte(""), 0644))
	entries, err = fs.ReadDir("/ws")
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestMemoryFS_RemoveAll(t *testing.T) {
	fs := NewMemoryFS()

	require.NoError(t, fs.MkdirAll("/ws/dir", 0755))
	require.NoError(t, fs.WriteFile("/ws/dir/file", []byte("x"), 0644))

	require.NoError(t, fs.RemoveAll("/ws/dir"))

	_, err := fs.Stat("/ws/dir")
	assert.True(t, os.IsNotExist(err))
	_, err = fs.Stat("/ws/dir/file")
	assert.True(t, os.IsNotExist(err))
}

func TestMemoryFS_Chmod(t *testing.T) {
	fs := NewMemoryFS()

	require.NoError(t, fs.WriteFile("/script", []byte("#!/bin/sh"), 0644))
	require.NoError(t, fs.Chmod("/script", 0755))

	info, err := fs.Stat("/script")
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0755), info.Mode().Perm())

	err = fs.Chmod("/missing", 0755)
	assert.True(t, os.IsNotExist(err))
}
