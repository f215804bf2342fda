// Package afero adapts spf13/afero filesystems to core.FS.
//
// Providers from this package implement core.DirRemover but not
// core.TreeRemover, so safefs removes trees with them through the
// legacy recursive remove. A missing path is reported by RemoveDir as
// fs.ErrNotExist instead of being tolerated.
//
//	local := afero.NewOS("/srv/data")
//	mem := afero.NewMemory()
package afero
