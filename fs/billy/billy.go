package billy

import (
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/jmgilman/go/safefs/fs/core"
)

// FS is a core.FS over a billy.Filesystem.
type FS struct {
	bfs  billy.Filesystem
	kind core.FSType
	root string
}

// Option configures NewLocal.
type Option func(*options)

type options struct {
	root string
}

// WithRoot confines a local provider to dir.
func WithRoot(dir string) Option {
	return func(o *options) { o.root = dir }
}

// NewLocal returns a provider over the host filesystem, rooted at "/" unless
// WithRoot says otherwise.
func NewLocal(opts ...Option) *FS {
	o := options{root: string(filepath.Separator)}
	for _, opt := range opts {
		opt(&o)
	}
	root, err := filepath.Abs(o.root)
	if err != nil {
		root = o.root
	}
	return &FS{bfs: osfs.New(root), kind: core.FSTypeLocal, root: root}
}

// NewMemory returns an empty in-memory provider.
func NewMemory() *FS {
	return &FS{bfs: memfs.New(), kind: core.FSTypeMemory}
}

// Root is the absolute host directory of a local provider; empty for memory.
func (p *FS) Root() string { return p.root }

func (p *FS) Type() core.FSType { return p.kind }

// Billy exposes the underlying filesystem.
func (p *FS) Billy() billy.Filesystem { return p.bfs }

func clean(name string) string {
	return path.Clean("/" + strings.ReplaceAll(name, `\`, "/"))
}

func (p *FS) Exists(name string) bool {
	_, err := p.bfs.Lstat(clean(name))
	return err == nil
}

func (p *FS) Stat(name string) (fs.FileInfo, error) {
	return p.bfs.Stat(clean(name))
}

func (p *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	infos, err := p.bfs.ReadDir(clean(name))
	if err != nil {
		return nil, err
	}
	entries := make([]fs.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}
	slices.SortFunc(entries, func(a, b fs.DirEntry) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return entries, nil
}

func (p *FS) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(p.bfs, clean(name))
}

// Mkdir creates exactly one directory. billy only offers MkdirAll, so the
// parent is checked first: a missing parent is fs.ErrNotExist and a file in
// its place is fs.ErrInvalid.
func (p *FS) Mkdir(name string, perm fs.FileMode) error {
	name = clean(name)
	if _, err := p.bfs.Lstat(name); err == nil {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if parent := path.Dir(name); parent != "/" {
		info, err := p.bfs.Stat(parent)
		switch {
		case err != nil:
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
		case !info.IsDir():
			return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrInvalid}
		}
	}
	return p.bfs.MkdirAll(name, perm)
}

func (p *FS) WriteFile(name string, data []byte, perm fs.FileMode) error {
	return util.WriteFile(p.bfs, clean(name), data, perm)
}

func (p *FS) AppendFile(name string, data []byte, perm fs.FileMode) (err error) {
	f, err := p.bfs.OpenFile(clean(name), os.O_WRONLY|os.O_CREATE|os.O_APPEND, perm)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

func (p *FS) Remove(name string) error {
	return p.bfs.Remove(clean(name))
}

func (p *FS) Rename(oldpath, newpath string) error {
	return p.bfs.Rename(clean(oldpath), clean(newpath))
}

// RemoveTree removes name, retrying transient failures opts.MaxRetries times.
// Without Recursive only files and empty directories can go; with Force a
// missing name is success.
func (p *FS) RemoveTree(name string, opts core.RemoveTreeOptions) error {
	name = clean(name)
	return core.Retry(opts.MaxRetries, func() error {
		info, err := p.bfs.Lstat(name)
		switch {
		case os.IsNotExist(err) && opts.Force:
			return nil
		case err != nil:
			return err
		case info.IsDir() && opts.Recursive:
			return util.RemoveAll(p.bfs, name)
		default:
			return p.bfs.Remove(name)
		}
	})
}

var (
	_ core.FS          = (*FS)(nil)
	_ core.TreeRemover = (*FS)(nil)
)
