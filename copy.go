package safefs

import (
	"strings"

	"github.com/jmgilman/go/safefs/errors"
	"github.com/jmgilman/go/safefs/fs/core"
)

// Copy duplicates the file or directory tree at src as dst, creating the
// parents of dst. Providers implementing core.TreeCopier copy natively;
// otherwise the tree is walked and every file is read and written.
func (f *FS) Copy(src, dst string, opts ...PathOption) error {
	if tc, ok := f.provider.(core.TreeCopier); ok {
		return f.observe("copy", errors.FromProvider(tc.Copy(src, dst), "copy", src))
	}
	return f.observe("copy", f.copy(src, dst, f.pathOptions(opts)))
}

func (f *FS) copy(src, dst string, o pathOptions) error {
	info, err := f.provider.Stat(src)
	if err != nil {
		return errors.FromProvider(err, "copy", src)
	}

	if !info.IsDir() {
		data, err := f.provider.ReadFile(src)
		if err != nil {
			return errors.FromProvider(err, "copy", src)
		}
		return f.writeFile(dst, data, o)
	}

	if _, err := f.ensure(dst, o.mode); err != nil {
		return err
	}
	entries, err := f.provider.ReadDir(src)
	if err != nil {
		return errors.FromProvider(err, "copy", src)
	}
	for _, e := range entries {
		if err := f.copy(joinPath(src, e.Name()), joinPath(dst, e.Name()), o); err != nil {
			return err
		}
	}
	return nil
}

// Move relocates src to dst, creating the parents of dst first.
func (f *FS) Move(src, dst string, opts ...PathOption) error {
	if !f.provider.Exists(src) {
		err := errors.WithContext(errors.Newf(errors.CodeNotFound, "move source does not exist: %s", src), "path", src)
		return f.observe("move", err)
	}
	if err := f.ensureParent(dst, f.pathOptions(opts)); err != nil {
		return f.observe("move", err)
	}
	err := f.provider.Rename(src, dst)
	return f.observe("move", errors.FromProvider(err, "move", src))
}

func joinPath(dir, name string) string {
	return strings.TrimRight(dir, `/\`) + "/" + name
}
