// Package exec starts local processes behind a small interface that tests
// can replace with a mock.
//
// safefs needs it for one thing: removing a tree with an external "rm -rf"
// when the provider has no recursive remove. Arguments go straight to the
// process with no shell in between, so a path is never re-parsed.
//
//	rm := exec.Bind(exec.New(exec.WithInheritEnv()), "rm", "-rf", "--")
//	if _, err := rm.WithDir(root).Run("build"); err != nil {
//		var execErr *exec.ExecError
//		if errors.As(err, &execErr) {
//			log.Printf("exit %d: %s", execErr.ExitCode, execErr.Stderr)
//		}
//	}
//
// Options given to New apply to every Run. The With* methods return a
// modified copy, so a configured Command can be shared freely.
//
// exec/mocks holds ExecutorMock, a testify mock of Executor.
package exec
