package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vincent-herlemont/cli-integration-test/pkg/errors"
	"github.com/vincent-herlemont/cli-integration-test/pkg/filesystem"
)

func TestMaterialize(t *testing.T) {
	tests := []struct {
		name     string
		entries  map[string]entry
		wantTree []string
	}{
		{
			name: "files and dirs with implied ancestors",
			entries: map[string]entry{
				"file1":     {kind: entryFile, content: "test 1"},
				"dir/file2": {kind: entryFile, content: "test 2"},
				"empty_dir": {kind: entryDir},
			},
			wantTree: []string{"dir", "dir/file2", "empty_dir", "file1"},
		},
		{
			name: "deeply nested file creates every ancestor",
			entries: map[string]entry{
				"a/b/c/file": {kind: entryFile, content: "x"},
			},
			wantTree: []string{"a", "a/b", "a/b/c", "a/b/c/file"},
		},
		{
			name: "dir marker nested under dir marker",
			entries: map[string]entry{
				"outer":       {kind: entryDir},
				"outer/inner": {kind: entryDir},
			},
			wantTree: []string{"outer", "outer/inner"},
		},
		{
			name:     "empty store materializes nothing",
			entries:  map[string]entry{},
			wantTree: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := filesystem.NewMemoryFS()
			require.NoError(t, fs.MkdirAll("/ws", 0755))

			require.NoError(t, materialize(fs, "/ws", tt.entries))

			tree, err := walkTree(fs, "/ws")
			require.NoError(t, err)
			assert.Equal(t, tt.wantTree, tree)
		})
	}
}

func TestMaterialize_FileContentRoundTrip(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/ws", 0755))

	entries := map[string]entry{
		"file1": {kind: entryFile, content: "unicode: héllo ✓\nsecond line\n"},
	}
	require.NoError(t, materialize(fs, "/ws", entries))

	data, err := fs.ReadFile("/ws/file1")
	require.NoError(t, err)
	assert.Equal(t, "unicode: héllo ✓\nsecond line\n", string(data))
}

func TestMaterialize_OverwritesExistingFile(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/ws", 0755))
	require.NoError(t, fs.WriteFile("/ws/file1", []byte("old"), 0644))

	entries := map[string]entry{
		"file1": {kind: entryFile, content: "new"},
	}
	require.NoError(t, materialize(fs, "/ws", entries))

	data, err := fs.ReadFile("/ws/file1")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestMaterialize_ReplacesConflictingKinds(t *testing.T) {
	t.Run("existing file where dir is specified", func(t *testing.T) {
		fs := filesystem.NewMemoryFS()
		require.NoError(t, fs.MkdirAll("/ws", 0755))
		require.NoError(t, fs.WriteFile("/ws/p", []byte("file"), 0644))

		require.NoError(t, materialize(fs, "/ws", map[string]entry{"p": {kind: entryDir}}))

		info, err := fs.Stat("/ws/p")
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("existing dir where file is specified", func(t *testing.T) {
		fs := filesystem.NewMemoryFS()
		require.NoError(t, fs.MkdirAll("/ws/p/nested", 0755))

		require.NoError(t, materialize(fs, "/ws", map[string]entry{"p": {kind: entryFile, content: "file"}}))

		info, err := fs.Stat("/ws/p")
		require.NoError(t, err)
		assert.False(t, info.IsDir())
	})
}

func TestMaterialize_FailureCarriesPath(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/ws", 0755))
	// A file standing where an ancestor directory must go
	require.NoError(t, fs.WriteFile("/ws/blocked", []byte("file"), 0644))

	err := materialize(fs, "/ws", map[string]entry{"blocked/file": {kind: entryFile, content: "x"}})

	require.Error(t, err)
	assert.Equal(t, errors.ErrDirCreate, errors.GetErrorCode(err))
	assert.NotEmpty(t, errors.GetErrorDetails(err)["path"])
}

func TestWalkTree_Sorted(t *testing.T) {
	fs := filesystem.NewMemoryFS()
	require.NoError(t, fs.MkdirAll("/ws/zz", 0755))
	require.NoError(t, fs.MkdirAll("/ws/aa", 0755))
	require.NoError(t, fs.WriteFile("/ws/mm", []byte(""), 0644))
	require.NoError(t, fs.WriteFile("/ws/aa/file", []byte(""), 0644))

	tree, err := walkTree(fs, "/ws")
	require.NoError(t, err)
	assert.Equal(t, []string{"aa", "aa/file", "mm", "zz"}, tree)
}
