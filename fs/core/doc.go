// Package core defines the provider contract that safefs builds on.
//
// A provider is any filesystem implementation (local disk, memory, object
// storage) that satisfies FS. safefs only ever talks to a provider through
// these interfaces, so the same idempotent helpers work on every backend.
//
// # Interface Hierarchy
//
// FS is composed of three small interfaces:
//
//   - ReadFS: Exists, Stat, ReadDir, ReadFile
//   - WriteFS: Mkdir, WriteFile, AppendFile
//   - ManageFS: Remove, Rename
//
// Optional capabilities are discovered with type assertions:
//
//   - TreeRemover: recursive removal with force and retry options
//   - DirRemover: recursive directory removal with retry options
//   - TreeCopier: provider-native copy of files and directory trees
//
// safefs picks its recursive removal strategy from which of TreeRemover and
// DirRemover a provider implements:
//
//	if tr, ok := provider.(core.TreeRemover); ok {
//	    err := tr.RemoveTree("build", core.RemoveTreeOptions{Recursive: true, Force: true, MaxRetries: 2})
//	}
//
// # Errors
//
// Providers report absence with errors satisfying errors.Is(err,
// fs.ErrNotExist). ErrNotExist and friends are re-exported here for
// convenience.
//
// # Retries
//
// Retry runs an operation again while it fails with a transient error (see
// IsTransient). Providers use it to honour the MaxRetries option of the
// removal capabilities.
//
// # Provider Implementations
//
//   - github.com/jmgilman/go/safefs/fs/billy - go-billy local and memory providers
//   - github.com/jmgilman/go/safefs/fs/afero - afero providers
//   - github.com/jmgilman/go/safefs/fs/minio - MinIO S3 provider
package core
