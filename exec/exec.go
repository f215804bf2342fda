package exec

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Executor runs a process and captures its output. Each With* call returns
// an Executor carrying the change; the receiver is left as it was.
type Executor interface {
	WithEnv(env map[string]string) Executor
	WithDir(dir string) Executor
	WithContext(ctx context.Context) Executor
	WithTimeout(timeout time.Duration) Executor
	// WithInheritEnv starts the process with the caller's environment,
	// overlaid with anything passed to WithEnv.
	WithInheritEnv() Executor

	// Run starts args[0] with args[1:] and waits for it to exit. A failed
	// start or a non-zero exit is returned as *ExecError; the Result is
	// still returned when the process ran.
	Run(args ...string) (*Result, error)

	// Clone returns an Executor with the same settings.
	Clone() Executor
}

// Result holds what a finished process wrote and how it exited.
type Result struct {
	Stdout   string
	Stderr   string
	Combined string // stdout and stderr interleaved in write order
	ExitCode int    // -1 when the process never started
	Duration time.Duration
}

// ExecError describes a process that could not start or exited non-zero.
type ExecError struct {
	Command  []string
	Dir      string
	ExitCode int
	Stdout   string
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	var b strings.Builder
	b.WriteString(strings.Join(e.Command, " "))
	if e.Dir != "" {
		fmt.Fprintf(&b, " (in %s)", e.Dir)
	}
	fmt.Fprintf(&b, ": exit %d", e.ExitCode)
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	if line := firstLine(e.Stderr); line != "" {
		fmt.Fprintf(&b, ": %s", line)
	}
	return b.String()
}

func (e *ExecError) Unwrap() error { return e.Err }

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
