package safefs

import (
	"github.com/jmgilman/go/safefs/errors"
)

// WriteFile ensures the parent directory of path, then writes data to path,
// replacing any previous content. A failure to ensure the parent is returned
// without attempting the write.
func (f *FS) WriteFile(path string, data []byte, opts ...PathOption) error {
	return f.observe("write", f.writeFile(path, data, f.pathOptions(opts)))
}

// AppendFile ensures the parent directory of path, then appends data to
// path, creating it if necessary.
func (f *FS) AppendFile(path string, data []byte, opts ...PathOption) error {
	o := f.pathOptions(opts)
	if err := f.ensureParent(path, o); err != nil {
		return f.observe("append", err)
	}
	err := f.provider.AppendFile(path, data, o.perm)
	return f.observe("append", errors.FromProvider(err, "append", path))
}

func (f *FS) writeFile(path string, data []byte, o pathOptions) error {
	if err := f.ensureParent(path, o); err != nil {
		return err
	}
	return errors.FromProvider(f.provider.WriteFile(path, data, o.perm), "write", path)
}
