package billy

import (
	"errors"
	iofs "io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/safefs/fs/core"
	"github.com/jmgilman/go/safefs/fs/fstest"
)

func TestLocalFS(t *testing.T) {
	fstest.Run(t, func() core.FS {
		return NewLocal(WithRoot(t.TempDir()))
	})
}

func TestMemoryFS(t *testing.T) {
	fstest.Run(t, func() core.FS { return NewMemory() })
}

func TestType(t *testing.T) {
	assert.Equal(t, core.FSTypeLocal, NewLocal().Type())
	assert.Equal(t, core.FSTypeMemory, NewMemory().Type())
	assert.Empty(t, NewMemory().Root())
}

func TestNewLocal_Root(t *testing.T) {
	assert.Equal(t, string(filepath.Separator), NewLocal().Root())

	dir := t.TempDir()
	assert.Equal(t, dir, NewLocal(WithRoot(dir)).Root())
}

func TestLocalFS_WritesBelowRoot(t *testing.T) {
	dir := t.TempDir()
	fs := NewLocal(WithRoot(dir))

	require.NoError(t, fs.Mkdir("sub", 0o755))
	require.NoError(t, fs.WriteFile("sub/file.txt", []byte("data"), 0o644))

	data, err := os.ReadFile(filepath.Join(dir, "sub", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestMkdir_ParentIsFile(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.WriteFile("file", []byte("x"), 0o644))

	err := fs.Mkdir("file/child", 0o755)
	require.Error(t, err)
	assert.False(t, fs.Exists("file/child"))
}

func TestMkdir_Existing(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.Mkdir("dir", 0o755))

	err := fs.Mkdir("dir", 0o755)
	require.True(t, errors.Is(err, iofs.ErrExist), "got %v", err)
}

func TestRemoveTree_NonRecursiveDirectory(t *testing.T) {
	fs := NewMemory()
	require.NoError(t, fs.Mkdir("dir", 0o755))
	require.NoError(t, fs.WriteFile("dir/x", nil, 0o644))

	err := fs.RemoveTree("dir", core.RemoveTreeOptions{Force: true})
	require.Error(t, err)
	assert.True(t, fs.Exists("dir/x"))
}

func TestReadDir_Sorted(t *testing.T) {
	fs := NewMemory()
	for _, name := range []string{"c", "a", "b"} {
		require.NoError(t, fs.WriteFile(name, nil, 0o644))
	}

	entries, err := fs.ReadDir("/")
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.Equal(t, []string{"a", "b", "c"}, names)
}

func TestClean(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "a/b/../c", want: "/a/c"},
		{in: "a//b/", want: "/a/b"},
		{in: `a\b`, want: "/a/b"},
		{in: "../../etc", want: "/etc"},
		{in: "", want: "/"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, clean(tt.in))
		})
	}
}

func TestLocalFS_CannotEscapeRoot(t *testing.T) {
	dir := t.TempDir()
	fsys := NewLocal(WithRoot(filepath.Join(dir, "jail")))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "jail"), 0o755))

	require.NoError(t, fsys.WriteFile("../escaped.txt", []byte("x"), 0o644))
	assert.NoFileExists(t, filepath.Join(dir, "escaped.txt"))
	assert.FileExists(t, filepath.Join(dir, "jail", "escaped.txt"))
}
