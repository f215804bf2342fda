// Package safefs wraps a filesystem provider with safe, idempotent variants
// of common operations.
//
// The two central operations are EnsurePath, which makes a directory and all
// of its missing ancestors exist while tolerating concurrent creators, and
// RemoveTree, which deletes a file or a directory tree and treats a missing
// path as success. WriteFile and AppendFile ensure the parent directory before
// writing; Unlink deletes a single file only if it exists; Copy and Move
// duplicate and relocate files and trees.
//
// A provider is anything implementing core.FS:
//
//	provider := billy.NewLocal(billy.WithRoot("."))
//	fsys := safefs.New(provider, safefs.WithUmask(0o022))
//
//	existed, err := fsys.EnsurePath("build/out")
//	err = fsys.WriteFile("build/out/report.txt", data)
//	err = fsys.RemoveTree("build")
//
// # Removal strategies
//
// New inspects the provider once and picks how RemoveTree works:
//
//   - StrategyTreeRemove when the provider implements core.TreeRemover
//   - StrategyDirRemove when it implements core.DirRemover
//   - StrategySubprocess otherwise, running "rm -rf -- <path>" in the
//     configured working directory
//
// WithStrategy overrides the choice.
//
// # Concurrency
//
// An FS is immutable after New and safe for concurrent use. No locks guard
// directory creation: two goroutines ensuring the same path may both report
// existed == false, and both succeed.
//
// # Errors
//
// Failures carry codes from the errors sub-package. EnsurePath reports
// errors.CodeCreationFailed when a directory is still absent after mkdir;
// provider failures carry errors.CodeProvider or a more specific code.
package safefs
