package safefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/safefs/errors"
	"github.com/jmgilman/go/safefs/fs/fstest"
)

func TestCopy_Tree(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			sfs := New(b.new(t))
			require.NoError(t, sfs.WriteFile("src/a/b.txt", []byte("b")))
			require.NoError(t, sfs.WriteFile("src/c.txt", []byte("c")))

			require.NoError(t, sfs.Copy("src", "out/dst"))

			for path, want := range map[string]string{"out/dst/a/b.txt": "b", "out/dst/c.txt": "c"} {
				data, err := sfs.ReadFile(path)
				require.NoError(t, err, path)
				assert.Equal(t, want, string(data), path)
			}
			assert.True(t, sfs.Exists("src/c.txt"), "source is kept")
		})
	}
}

func TestCopy_File(t *testing.T) {
	fake := fstest.NewFake()
	fake.AddFile("f.txt", []byte("data"))

	require.NoError(t, New(fake).Copy("f.txt", "x/y/g.txt"))
	assert.Equal(t, []byte("data"), fake.Files["x/y/g.txt"])
}

func TestCopy_UsesTreeCopier(t *testing.T) {
	fake := &fstest.TreeCopierFake{Fake: fstest.NewFake()}
	fake.AddFile("src/f.txt", []byte("data"))

	require.NoError(t, New(fake).Copy("src", "dst"))
	assert.Len(t, fake.CallsTo("Copy"), 1)
	assert.Empty(t, fake.CallsTo("WriteFile"))
	assert.Equal(t, []byte("data"), fake.Files["dst/f.txt"])
}

func TestCopy_MissingSource(t *testing.T) {
	err := New(fstest.NewFake()).Copy("missing", "dst")
	assert.True(t, errors.IsNotFound(err), "got %v", err)
}

func TestMove(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			sfs := New(b.new(t))
			require.NoError(t, sfs.WriteFile("src/f.txt", []byte("data")))

			require.NoError(t, sfs.Move("src", "a/b/dst"))

			assert.False(t, sfs.Exists("src"))
			data, err := sfs.ReadFile("a/b/dst/f.txt")
			require.NoError(t, err)
			assert.Equal(t, "data", string(data))
		})
	}
}

func TestMove_MissingSource(t *testing.T) {
	fake := fstest.NewFake()

	err := New(fake).Move("missing", "a/dst")
	assert.Equal(t, errors.CodeNotFound, errors.GetCode(err))
	assert.Empty(t, fake.CallsTo("Mkdir"), "parents are not created for a missing source")
}
