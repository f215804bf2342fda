package safefs

import (
	"io/fs"

	"github.com/jmgilman/go/safefs/errors"
)

// Exists reports whether anything exists at path.
func (f *FS) Exists(path string) bool {
	return f.provider.Exists(path)
}

// Stat returns metadata for path.
func (f *FS) Stat(path string) (fs.FileInfo, error) {
	info, err := f.provider.Stat(path)
	return info, errors.FromProvider(err, "stat", path)
}

// IsDirectory reports whether path is a directory.
func (f *FS) IsDirectory(path string) (bool, error) {
	info, err := f.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

// ReadFile returns the contents of path.
func (f *FS) ReadFile(path string) ([]byte, error) {
	data, err := f.provider.ReadFile(path)
	return data, errors.FromProvider(err, "read", path)
}

// ReadDir returns the entries of the directory at path, sorted by name.
func (f *FS) ReadDir(path string) ([]fs.DirEntry, error) {
	entries, err := f.provider.ReadDir(path)
	return entries, errors.FromProvider(err, "readdir", path)
}

// ReadDirNames returns the names of the entries of the directory at path,
// sorted.
func (f *FS) ReadDirNames(path string) ([]string, error) {
	entries, err := f.ReadDir(path)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name()
	}
	return names, nil
}

// Mkdir creates a single directory. Unlike EnsurePath it fails when the
// parent is missing or path already exists.
func (f *FS) Mkdir(path string, opts ...PathOption) error {
	err := f.provider.Mkdir(path, f.pathOptions(opts).mode)
	return f.observe("mkdir", errors.FromProvider(err, "mkdir", path))
}

// Rename moves oldpath to newpath without creating parents. See Move.
func (f *FS) Rename(oldpath, newpath string) error {
	err := f.provider.Rename(oldpath, newpath)
	return errors.FromProvider(err, "rename", oldpath)
}

// Remove removes a file or an empty directory. Unlike Unlink a missing path
// is an error.
func (f *FS) Remove(path string) error {
	return errors.FromProvider(f.provider.Remove(path), "remove", path)
}
