package safefs

import (
	"github.com/jmgilman/go/safefs/errors"
	"github.com/jmgilman/go/safefs/exec"
	"github.com/jmgilman/go/safefs/fs/core"
)

// Strategy names how RemoveTree deletes a path.
type Strategy string

const (
	// StrategyTreeRemove uses the provider's core.TreeRemover with force enabled.
	StrategyTreeRemove Strategy = "modern-recursive-remove"
	// StrategyDirRemove uses the provider's core.DirRemover.
	StrategyDirRemove Strategy = "legacy-recursive-remove"
	// StrategySubprocess runs "rm -rf" in a subprocess.
	StrategySubprocess Strategy = "subprocess-fallback"
)

// removeMaxRetries bounds the provider's own retry of busy paths.
const removeMaxRetries = 2

// ProbeStrategy returns the removal strategy for provider, preferring
// TreeRemover over DirRemover over the subprocess fallback.
func ProbeStrategy(provider core.FS) Strategy {
	switch provider.(type) {
	case core.TreeRemover:
		return StrategyTreeRemove
	case core.DirRemover:
		return StrategyDirRemove
	default:
		return StrategySubprocess
	}
}

// RemoveTree deletes path and, for a directory, everything below it. A
// missing path is success.
func (f *FS) RemoveTree(path string) error {
	err := f.removeTree(path)
	if errors.IsNotFound(err) {
		err = nil
	}
	f.cfg.metrics.observeRemoval(f.strategy)
	return f.observe("remove", err)
}

func (f *FS) removeTree(path string) error {
	switch f.strategy {
	case StrategyTreeRemove:
		tr, ok := f.provider.(core.TreeRemover)
		if !ok {
			return unsupported(f.strategy)
		}
		err := tr.RemoveTree(path, core.RemoveTreeOptions{
			Recursive:  true,
			Force:      true,
			MaxRetries: removeMaxRetries,
		})
		return errors.FromProvider(err, "remove", path)

	case StrategyDirRemove:
		dr, ok := f.provider.(core.DirRemover)
		if !ok {
			return unsupported(f.strategy)
		}
		err := dr.RemoveDir(path, core.RemoveDirOptions{
			Recursive:  true,
			MaxRetries: removeMaxRetries,
		})
		return errors.FromProvider(err, "remove", path)

	case StrategySubprocess:
		return f.removeWithSubprocess(path)

	default:
		return errors.Newf(errors.CodeInvalidInput, "unknown removal strategy %q", f.strategy)
	}
}

// removeWithSubprocess runs rm with path as a single argument after "--", so
// neither shell metacharacters nor a leading dash are interpreted.
func (f *FS) removeWithSubprocess(path string) error {
	var rm exec.Executor = exec.Bind(f.cfg.executor, "rm", "-rf", "--")
	if f.cfg.workDir != "" {
		rm = rm.WithDir(f.cfg.workDir)
	}

	f.cfg.logger.Debug("removing with subprocess", "path", path, "dir", f.cfg.workDir)

	if _, err := rm.Run(path); err != nil {
		ctx := map[string]interface{}{"path": path}
		var execErr *exec.ExecError
		if errors.As(err, &execErr) {
			ctx["exit_code"] = execErr.ExitCode
			ctx["stderr"] = execErr.Stderr
		}
		return errors.WrapWithContext(err, errors.CodeExecutionFailed, "rm -rf "+path, ctx)
	}
	return nil
}

// Valid reports whether s names one of the removal strategies.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyTreeRemove, StrategyDirRemove, StrategySubprocess:
		return true
	}
	return false
}

func unsupported(s Strategy) error {
	return errors.Newf(errors.CodeUnsupported, "provider does not support the %s strategy", s)
}
