package safefs

import (
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/safefs/errors"
	"github.com/jmgilman/go/safefs/fs/billy"
	"github.com/jmgilman/go/safefs/fs/fstest"
)

func TestWriteAndAppend(t *testing.T) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			sfs := New(b.new(t))

			require.NoError(t, sfs.WriteFile("X/Y/f.txt", []byte("abc")))
			require.NoError(t, sfs.AppendFile("X/Y/f.txt", []byte("123")))

			data, err := sfs.ReadFile("X/Y/f.txt")
			require.NoError(t, err)
			assert.Equal(t, "abc123", string(data))

			require.NoError(t, sfs.WriteFile("X/Y/f.txt", []byte("new")))
			data, err = sfs.ReadFile("X/Y/f.txt")
			require.NoError(t, err)
			assert.Equal(t, "new", string(data))
		})
	}
}

func TestAppendFile_CreatesFileAndParents(t *testing.T) {
	sfs := New(billy.NewMemory())

	require.NoError(t, sfs.AppendFile("logs/2024/app.log", []byte("line\n")))

	data, err := sfs.ReadFile("logs/2024/app.log")
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}

func TestWriteFile_NoParent(t *testing.T) {
	fake := fstest.NewFake()

	require.NoError(t, New(fake).WriteFile("f.txt", []byte("x")))
	assert.Empty(t, fake.CallsTo("Mkdir"))
	assert.Equal(t, []byte("x"), fake.Files["f.txt"])
}

func TestWriteFile_EnsureFailureSkipsWrite(t *testing.T) {
	fake := fstest.NewFake()
	fake.Inject("Mkdir", "x", fs.ErrPermission)
	sfs := New(fake)

	err := sfs.WriteFile("x/f.txt", []byte("data"))
	assert.Equal(t, errors.CodeCreationFailed, errors.GetCode(err))
	assert.Empty(t, fake.CallsTo("WriteFile"))

	err = sfs.AppendFile("x/f.txt", []byte("data"))
	assert.Equal(t, errors.CodeCreationFailed, errors.GetCode(err))
	assert.Empty(t, fake.CallsTo("AppendFile"))
}

func TestWriteFile_ProviderError(t *testing.T) {
	fake := fstest.NewFake()
	fake.Inject("WriteFile", "x/f.txt", fs.ErrPermission)

	err := New(fake).WriteFile("x/f.txt", []byte("data"))
	assert.Equal(t, errors.CodePermission, errors.GetCode(err))
	assert.True(t, errors.Is(err, fs.ErrPermission))
	assert.True(t, fake.Exists("x"), "parent is ensured before the write")
}

func TestWriteFile_ParentModeIgnoresPerm(t *testing.T) {
	rec := recordModes(fstest.NewFake())

	require.NoError(t, New(rec).WriteFile("a/f.txt", nil, WithPerm(0o600)))
	assert.Equal(t, fs.FileMode(0o755), rec.modes["a"])

	require.NoError(t, New(rec).WriteFile("b/f.txt", nil, WithMode(0o700)))
	assert.Equal(t, fs.FileMode(0o700), rec.modes["b"])
}

func TestWriteFile_Perm(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on Windows")
	}
	dir := t.TempDir()
	sfs := New(billy.NewLocal(billy.WithRoot(dir)))

	require.NoError(t, sfs.WriteFile("secret/key", []byte("k"), WithPerm(0o600)))

	info, err := os.Stat(filepath.Join(dir, "secret", "key"))
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o600), info.Mode().Perm())
}
