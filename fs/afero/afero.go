package afero

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/jmgilman/go/safefs/fs/core"
)

// FS wraps an afero.Fs. Paths are resolved below the filesystem root; a
// leading separator is optional.
type FS struct {
	afs  afero.Fs
	kind core.FSType
	root string
}

// NewOS creates a filesystem on the local disk confined to root.
func NewOS(root string) *FS {
	if abs, err := filepath.Abs(root); err == nil {
		root = abs
	}
	return &FS{
		afs:  afero.NewBasePathFs(afero.NewOsFs(), root),
		kind: core.FSTypeLocal,
		root: root,
	}
}

// NewMemory creates an empty in-memory filesystem.
func NewMemory() *FS {
	return &FS{
		afs:  afero.NewMemMapFs(),
		kind: core.FSTypeMemory,
	}
}

// Wrap adapts an existing afero.Fs. kind is reported by Type.
func Wrap(afs afero.Fs, kind core.FSType) *FS {
	return &FS{afs: afs, kind: kind}
}

// Root returns the directory NewOS confined the filesystem to, or "" for
// other filesystems.
func (a *FS) Root() string {
	return a.root
}

// Type returns the kind of storage behind the filesystem.
func (a *FS) Type() core.FSType {
	return a.kind
}

// Afero returns the underlying afero.Fs.
func (a *FS) Afero() afero.Fs {
	return a.afs
}

func normalize(name string) string {
	return filepath.Join(string(filepath.Separator), filepath.FromSlash(name))
}

// Exists reports whether anything exists at name.
func (a *FS) Exists(name string) bool {
	ok, err := afero.Exists(a.afs, normalize(name))
	return err == nil && ok
}

// Stat returns file metadata for name.
func (a *FS) Stat(name string) (fs.FileInfo, error) {
	return a.afs.Stat(normalize(name))
}

// ReadDir returns the entries of the directory name sorted by name.
func (a *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := afero.ReadDir(a.afs, normalize(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, len(infos))
	for i, info := range infos {
		entries[i] = fs.FileInfoToDirEntry(info)
	}
	return entries, nil
}

// ReadFile returns the contents of name.
func (a *FS) ReadFile(name string) ([]byte, error) {
	return afero.ReadFile(a.afs, normalize(name))
}

// Mkdir creates a single directory. MemMapFs would create missing parents on
// its own, so the parent is checked first.
func (a *FS) Mkdir(name string, perm fs.FileMode) error {
	name = normalize(name)
	if parent := filepath.Dir(name); parent != name {
		info, err := a.afs.Stat(parent)
		if err != nil {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		}
		if !info.IsDir() {
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
		}
	}
	return a.afs.Mkdir(name, perm)
}

// WriteFile writes data to name, creating or truncating it.
func (a *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return afero.WriteFile(a.afs, normalize(name), data, perm)
}

// AppendFile appends data to name, creating it if necessary.
func (a *FS) AppendFile(name string, data []byte, perm fs.FileMode) error {
	f, err := a.afs.OpenFile(normalize(name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
	if err != nil {
		return err
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Remove removes a file or an empty directory.
func (a *FS) Remove(name string) error {
	name = normalize(name)
	if err := a.checkEmpty(name); err != nil {
		return err
	}
	return a.afs.Remove(name)
}

// checkEmpty fails with core.ErrNotEmpty for a directory that has entries.
// MemMapFs removes such directories without complaint.
func (a *FS) checkEmpty(name string) error {
	info, err := a.afs.Stat(name)
	if err != nil || !info.IsDir() {
		return nil
	}
	if empty, err := afero.IsEmpty(a.afs, name); err == nil && !empty {
		return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
	}
	return nil
}

// Rename moves oldpath to newpath.
func (a *FS) Rename(oldpath, newpath string) error {
	return a.afs.Rename(normalize(oldpath), normalize(newpath))
}

// RemoveDir removes name. With Recursive the contents of a directory go too.
// A missing path is fs.ErrNotExist. Transient failures are retried up to
// MaxRetries times.
func (a *FS) RemoveDir(name string, opts core.RemoveDirOptions) error {
	name = normalize(name)
	return core.Retry(opts.MaxRetries, func() error {
		if _, err := a.afs.Stat(name); err != nil {
			return err
		}
		if !opts.Recursive {
			if err := a.checkEmpty(name); err != nil {
				return err
			}
			return a.afs.Remove(name)
		}
		return a.afs.RemoveAll(name)
	})
}

var (
	_ core.FS         = (*FS)(nil)
	_ core.DirRemover = (*FS)(nil)
)
