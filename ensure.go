package safefs

import (
	"io/fs"

	"github.com/jmgilman/go/safefs/errors"
)

// EnsurePath makes path and all of its missing ancestors exist as
// directories. existed reports whether path was already present; anything at
// path counts, file or directory. The empty path is the provider root and
// always exists.
//
// Mkdir failures are ignored because a concurrent creator may have won the
// race; only a path still absent afterwards is an error, with code
// errors.CodeCreationFailed.
func (f *FS) EnsurePath(path string, opts ...PathOption) (existed bool, err error) {
	o := f.pathOptions(opts)
	existed, err = f.ensure(path, o.mode)
	return existed, f.observe("ensure", err)
}

func (f *FS) ensure(path string, mode fs.FileMode) (bool, error) {
	if path == "" || f.provider.Exists(path) {
		return true, nil
	}

	if parent := ParentPath(path); parent != "" && parent != path {
		if _, err := f.ensure(parent, mode); err != nil {
			return false, err
		}
	}

	mkdirErr := f.provider.Mkdir(path, mode)
	if !f.provider.Exists(path) {
		return false, creationFailed(path, mkdirErr)
	}

	f.cfg.logger.Debug("created directory", "path", path, "mode", mode, "raced", mkdirErr != nil)
	return false, nil
}

// ensureParent ensures the directory holding path, if path has one.
func (f *FS) ensureParent(path string, o pathOptions) error {
	if !hasParent(path) {
		return nil
	}
	_, err := f.ensure(ParentPath(path), f.pathOptions(dirOptions(o)).mode)
	return err
}

func creationFailed(path string, cause error) error {
	ctx := map[string]interface{}{"path": path}
	msg := "failed to create the directory: " + path
	if cause == nil {
		return errors.WithContext(errors.New(errors.CodeCreationFailed, msg), "path", path)
	}
	return errors.WrapWithContext(cause, errors.CodeCreationFailed, msg, ctx)
}
