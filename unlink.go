package safefs

import (
	"github.com/jmgilman/go/safefs/errors"
)

// Unlink removes the file at path if it exists. A missing path is success.
// There is no retry and no fallback; use RemoveTree for directories.
func (f *FS) Unlink(path string) error {
	if !f.provider.Exists(path) {
		return f.observe("unlink", nil)
	}
	err := f.provider.Remove(path)
	return f.observe("unlink", errors.FromProvider(err, "unlink", path))
}
