package fstest

import (
	"io/fs"
	"path"

	"github.com/jmgilman/go/safefs/fs/core"
)

// TreeRemoverFake adds core.TreeRemover to a Fake and records the options of
// every call.
type TreeRemoverFake struct {
	*Fake
	Opts []core.RemoveTreeOptions
}

// RemoveTree records the call and removes path, honouring Recursive and Force.
func (f *TreeRemoverFake) RemoveTree(name string, opts core.RemoveTreeOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	f.Opts = append(f.Opts, opts)
	if err := f.record("RemoveTree", name); err != nil {
		return err
	}
	if !f.existsLocked(name) {
		if opts.Force {
			return nil
		}
		return &fs.PathError{Op: "rm", Path: name, Err: fs.ErrNotExist}
	}
	if !opts.Recursive && len(f.childrenLocked(name)) > 0 {
		return &fs.PathError{Op: "rm", Path: name, Err: core.ErrNotEmpty}
	}
	f.removeTreeLocked(name)
	return nil
}

// DirRemoverFake adds core.DirRemover to a Fake and records the options of
// every call.
type DirRemoverFake struct {
	*Fake
	Opts []core.RemoveDirOptions
}

// RemoveDir records the call and removes path. A missing path is reported as
// fs.ErrNotExist.
func (f *DirRemoverFake) RemoveDir(name string, opts core.RemoveDirOptions) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	f.Opts = append(f.Opts, opts)
	if err := f.record("RemoveDir", name); err != nil {
		return err
	}
	if !f.existsLocked(name) {
		return &fs.PathError{Op: "rmdir", Path: name, Err: fs.ErrNotExist}
	}
	if !opts.Recursive && len(f.childrenLocked(name)) > 0 {
		return &fs.PathError{Op: "rmdir", Path: name, Err: core.ErrNotEmpty}
	}
	f.removeTreeLocked(name)
	return nil
}

// TreeCopierFake adds core.TreeCopier to a Fake.
type TreeCopierFake struct {
	*Fake
}

// Copy records the call and duplicates src at dst, creating dst's parents.
func (f *TreeCopierFake) Copy(src, dst string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	src, dst = clean(src), clean(dst)
	if err := f.record("Copy", src); err != nil {
		return err
	}
	if !f.existsLocked(src) {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrNotExist}
	}
	for _, p := range f.treeLocked(src) {
		target := dst + p[len(src):]
		if data, ok := f.Files[p]; ok {
			f.addDirLocked(path.Dir(target))
			f.Files[target] = append([]byte(nil), data...)
		}
		if f.Dirs[p] {
			f.addDirLocked(target)
		}
	}
	return nil
}

// Bare hides every optional capability of filesystem, leaving only core.FS.
func Bare(filesystem core.FS) core.FS {
	return bare{filesystem}
}

type bare struct {
	core.FS
}

var (
	_ core.TreeRemover = (*TreeRemoverFake)(nil)
	_ core.DirRemover  = (*DirRemoverFake)(nil)
	_ core.TreeCopier  = (*TreeCopierFake)(nil)
)
