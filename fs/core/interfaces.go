package core

import (
	"io/fs"
)

// FSType names the storage behind a provider.
type FSType int

const (
	FSTypeUnknown FSType = iota
	FSTypeLocal          // host disk
	FSTypeMemory         // process memory
	FSTypeRemote         // object storage such as S3 or MinIO
)

var fsTypeNames = map[FSType]string{
	FSTypeLocal:  "local",
	FSTypeMemory: "memory",
	FSTypeRemote: "remote",
}

func (t FSType) String() string {
	if name, ok := fsTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// FS is the contract every provider implements.
type FS interface {
	ReadFS
	WriteFS
	ManageFS

	Type() FSType
}

// ReadFS is the read half of FS.
type ReadFS interface {
	// Exists reports whether anything exists at name. It never fails: a path
	// that cannot be inspected (for example because access is denied) is
	// reported as absent.
	Exists(name string) bool

	Stat(name string) (fs.FileInfo, error)

	// ReadDir returns the entries of the named directory sorted by name.
	ReadDir(name string) ([]fs.DirEntry, error)

	// ReadFile returns the contents of the named file.
	ReadFile(name string) ([]byte, error)
}

// WriteFS defines write operations. None of them create missing parents.
type WriteFS interface {
	// Mkdir creates a single directory. It fails if the parent is missing or
	// if name already exists.
	Mkdir(name string, perm fs.FileMode) error

	// WriteFile writes data to name, creating or truncating it.
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// AppendFile appends data to name, creating it if necessary.
	AppendFile(name string, data []byte, perm fs.FileMode) error
}

// ManageFS removes and renames.
type ManageFS interface {
	// Remove removes the named file or empty directory. A missing path is an
	// error satisfying errors.Is(err, fs.ErrNotExist).
	Remove(name string) error

	// Rename moves oldpath to newpath. Parents of newpath must exist.
	Rename(oldpath, newpath string) error
}

// RemoveTreeOptions configures TreeRemover.RemoveTree.
type RemoveTreeOptions struct {
	// Recursive removes directories together with their contents.
	Recursive bool
	// Force suppresses the not-found error for a missing path.
	Force bool
	// MaxRetries is how many extra attempts a transient failure gets.
	MaxRetries int
}

// TreeRemover is the modern recursive removal capability.
//
//	if tr, ok := filesystem.(TreeRemover); ok {
//	    err := tr.RemoveTree("dist", RemoveTreeOptions{Recursive: true, Force: true})
//	}
type TreeRemover interface {
	RemoveTree(path string, opts RemoveTreeOptions) error
}

// RemoveDirOptions configures DirRemover.RemoveDir.
type RemoveDirOptions struct {
	// Recursive removes the directory together with its contents.
	Recursive bool
	// MaxRetries is how many extra attempts a transient failure gets.
	MaxRetries int
}

// DirRemover is the legacy recursive removal capability. Unlike TreeRemover
// it has no force option, so a missing path is reported as not found.
type DirRemover interface {
	RemoveDir(path string, opts RemoveDirOptions) error
}

// TreeCopier copies a file or a directory tree natively, creating missing
// destination parents.
type TreeCopier interface {
	Copy(src, dst string) error
}
