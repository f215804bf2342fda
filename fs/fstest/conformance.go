// Package fstest checks core.FS providers against a shared set of behaviors
// and offers Fake, an in-memory provider whose calls can be inspected and
// made to fail.
//
// A provider package runs the checks against fresh instances:
//
//	func TestConformance(t *testing.T) {
//		fstest.Run(t, func() core.FS { return myprovider.New() })
//	}
//
// Code that consumes core.FS scripts a Fake instead:
//
//	f := fstest.NewFake()
//	f.Inject("Mkdir", "a", fs.ErrPermission)
package fstest

import (
	"io/fs"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/safefs/fs/core"
)

// Profile records where a provider departs from POSIX behavior. Checks that
// depend on the departed behavior are skipped.
type Profile struct {
	// VirtualDirs: directories are key prefixes. Mkdir needs no parent and
	// Stat on a directory may not report IsDir.
	VirtualDirs bool

	// Skip names individual checks to skip, e.g. "write/append".
	Skip []string
}

var (
	// POSIX is the profile of local and in-memory providers.
	POSIX = Profile{}

	// ObjectStore is the profile of S3-compatible providers.
	ObjectStore = Profile{VirtualDirs: true}
)

type check struct {
	name string
	skip func(Profile) bool
	run  func(t *testing.T, fsys core.FS)
}

// Run checks the provider returned by newFS with the POSIX profile.
func Run(t *testing.T, newFS func() core.FS) {
	RunProfile(t, newFS, POSIX)
}

// RunProfile checks the provider returned by newFS, calling newFS once per
// check. Capability checks run only when the provider implements the
// capability.
func RunProfile(t *testing.T, newFS func() core.FS, p Profile) {
	for _, c := range checks() {
		t.Run(c.name, func(t *testing.T) {
			if slices.Contains(p.Skip, c.name) || (c.skip != nil && c.skip(p)) {
				t.Skipf("%s does not apply to this provider", c.name)
			}
			c.run(t, newFS())
		})
	}
}

func virtualDirs(p Profile) bool { return p.VirtualDirs }

func checks() []check {
	return []check{
		{name: "read/exists", run: func(t *testing.T, fsys core.FS) {
			seedTree(t, fsys, "r")
			assert.True(t, fsys.Exists("r"))
			assert.True(t, fsys.Exists("r/a/b.txt"))
			assert.False(t, fsys.Exists("r/missing"))
		}},
		{name: "read/stat-file", run: func(t *testing.T, fsys core.FS) {
			seedTree(t, fsys, "r")
			info, err := fsys.Stat("r/c.txt")
			require.NoError(t, err)
			assert.False(t, info.IsDir())
			assert.Equal(t, int64(len("r/c.txt")), info.Size())
		}},
		{name: "read/stat-dir", skip: virtualDirs, run: func(t *testing.T, fsys core.FS) {
			seedTree(t, fsys, "r")
			info, err := fsys.Stat("r/a")
			require.NoError(t, err)
			assert.True(t, info.IsDir())
		}},
		{name: "read/stat-missing", run: func(t *testing.T, fsys core.FS) {
			_, err := fsys.Stat("missing.txt")
			assert.ErrorIs(t, err, fs.ErrNotExist)
		}},
		{name: "read/readdir-sorted", run: func(t *testing.T, fsys core.FS) {
			seedTree(t, fsys, "r")
			entries, err := fsys.ReadDir("r")
			require.NoError(t, err)
			var names []string
			for _, e := range entries {
				names = append(names, e.Name())
			}
			assert.Equal(t, []string{"a", "c.txt"}, names)
			assert.True(t, entries[0].IsDir())
		}},
		{name: "read/readfile", run: func(t *testing.T, fsys core.FS) {
			seedTree(t, fsys, "r")
			data, err := fsys.ReadFile("r/a/b.txt")
			require.NoError(t, err)
			assert.Equal(t, "r/a/b.txt", string(data))

			_, err = fsys.ReadFile("r/missing.txt")
			assert.ErrorIs(t, err, fs.ErrNotExist)
		}},
		{name: "write/mkdir", run: func(t *testing.T, fsys core.FS) {
			require.NoError(t, fsys.Mkdir("d", 0o755))
			assert.True(t, fsys.Exists("d"))
		}},
		{name: "write/mkdir-existing", skip: virtualDirs, run: func(t *testing.T, fsys core.FS) {
			require.NoError(t, fsys.Mkdir("d", 0o755))
			assert.Error(t, fsys.Mkdir("d", 0o755))
		}},
		{name: "write/mkdir-missing-parent", skip: virtualDirs, run: func(t *testing.T, fsys core.FS) {
			assert.Error(t, fsys.Mkdir("missing/child", 0o755))
			assert.False(t, fsys.Exists("missing"))
		}},
		{name: "write/writefile-truncates", run: func(t *testing.T, fsys core.FS) {
			require.NoError(t, fsys.WriteFile("f.txt", []byte("long content"), 0o644))
			require.NoError(t, fsys.WriteFile("f.txt", []byte("short"), 0o644))
			data, err := fsys.ReadFile("f.txt")
			require.NoError(t, err)
			assert.Equal(t, "short", string(data))
		}},
		{name: "write/append", run: func(t *testing.T, fsys core.FS) {
			for _, chunk := range []string{"abc", "123"} {
				require.NoError(t, fsys.AppendFile("log.txt", []byte(chunk), 0o644))
			}
			data, err := fsys.ReadFile("log.txt")
			require.NoError(t, err)
			assert.Equal(t, "abc123", string(data))
		}},
		{name: "manage/remove", run: func(t *testing.T, fsys core.FS) {
			require.NoError(t, fsys.WriteFile("f.txt", []byte("x"), 0o644))
			require.NoError(t, fsys.Mkdir("empty", 0o755))
			for _, p := range []string{"f.txt", "empty"} {
				require.NoError(t, fsys.Remove(p), p)
				assert.False(t, fsys.Exists(p), p)
			}
		}},
		{name: "manage/remove-missing", run: func(t *testing.T, fsys core.FS) {
			assert.ErrorIs(t, fsys.Remove("missing.txt"), fs.ErrNotExist)
		}},
		{name: "manage/rename-file", run: func(t *testing.T, fsys core.FS) {
			require.NoError(t, fsys.WriteFile("old.txt", []byte("moved"), 0o644))
			require.NoError(t, fsys.Rename("old.txt", "new.txt"))
			assert.False(t, fsys.Exists("old.txt"))
			data, err := fsys.ReadFile("new.txt")
			require.NoError(t, err)
			assert.Equal(t, "moved", string(data))
		}},
		{name: "manage/rename-dir", run: func(t *testing.T, fsys core.FS) {
			seedTree(t, fsys, "old")
			require.NoError(t, fsys.Rename("old", "new"))
			assertGone(t, fsys, "old/a/b.txt", "old/c.txt")
			data, err := fsys.ReadFile("new/a/b.txt")
			require.NoError(t, err)
			assert.Equal(t, "old/a/b.txt", string(data))
		}},
		{name: "tree-remover/tree", run: func(t *testing.T, fsys core.FS) {
			tr := requireTreeRemover(t, fsys)
			seedTree(t, fsys, "t")
			require.NoError(t, tr.RemoveTree("t", core.RemoveTreeOptions{Recursive: true, Force: true, MaxRetries: 2}))
			assertGone(t, fsys, "t", "t/a", "t/a/b.txt", "t/c.txt")
		}},
		{name: "tree-remover/file", run: func(t *testing.T, fsys core.FS) {
			tr := requireTreeRemover(t, fsys)
			require.NoError(t, fsys.WriteFile("f.txt", []byte("x"), 0o644))
			require.NoError(t, tr.RemoveTree("f.txt", core.RemoveTreeOptions{Recursive: true, Force: true}))
			assert.False(t, fsys.Exists("f.txt"))
		}},
		{name: "tree-remover/missing-forced", run: func(t *testing.T, fsys core.FS) {
			tr := requireTreeRemover(t, fsys)
			assert.NoError(t, tr.RemoveTree("missing", core.RemoveTreeOptions{Recursive: true, Force: true}))
		}},
		{name: "tree-remover/missing", run: func(t *testing.T, fsys core.FS) {
			tr := requireTreeRemover(t, fsys)
			err := tr.RemoveTree("missing", core.RemoveTreeOptions{Recursive: true})
			assert.ErrorIs(t, err, fs.ErrNotExist)
		}},
		{name: "dir-remover/tree", run: func(t *testing.T, fsys core.FS) {
			dr := requireDirRemover(t, fsys)
			seedTree(t, fsys, "d")
			require.NoError(t, dr.RemoveDir("d", core.RemoveDirOptions{Recursive: true, MaxRetries: 2}))
			assertGone(t, fsys, "d", "d/a", "d/a/b.txt", "d/c.txt")
		}},
		{name: "dir-remover/missing", run: func(t *testing.T, fsys core.FS) {
			dr := requireDirRemover(t, fsys)
			err := dr.RemoveDir("missing", core.RemoveDirOptions{Recursive: true})
			assert.ErrorIs(t, err, fs.ErrNotExist)
		}},
	}
}

func requireTreeRemover(t *testing.T, fsys core.FS) core.TreeRemover {
	t.Helper()
	tr, ok := fsys.(core.TreeRemover)
	if !ok {
		t.Skip("provider has no RemoveTree")
	}
	return tr
}

func requireDirRemover(t *testing.T, fsys core.FS) core.DirRemover {
	t.Helper()
	dr, ok := fsys.(core.DirRemover)
	if !ok {
		t.Skip("provider has no RemoveDir")
	}
	return dr
}

// seedTree creates root/a/b.txt and root/c.txt; each file holds its own path.
func seedTree(t *testing.T, fsys core.FS, root string) {
	t.Helper()
	require.NoError(t, fsys.Mkdir(root, 0o755))
	require.NoError(t, fsys.Mkdir(root+"/a", 0o755))
	for _, name := range []string{root + "/a/b.txt", root + "/c.txt"} {
		require.NoError(t, fsys.WriteFile(name, []byte(name), 0o644))
	}
}

func assertGone(t *testing.T, fsys core.FS, paths ...string) {
	t.Helper()
	for _, p := range paths {
		assert.False(t, fsys.Exists(p), "%s still exists", p)
	}
}
