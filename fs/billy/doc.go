// Package billy adapts go-billy filesystems to core.FS.
//
// NewLocal serves the host filesystem through osfs and NewMemory keeps
// everything in memfs. Both implement core.TreeRemover, which makes safefs
// pick its modern recursive removal for them.
//
//	sfs := safefs.New(billy.NewLocal(billy.WithRoot(".")))
//
// Paths are slash-separated and resolved below the root; ".." cannot climb
// out of it. A provider is safe for concurrent use.
package billy
