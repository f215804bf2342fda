package exec

import (
	"bytes"
	"context"
	"io"
	"maps"
	"os"
	osexec "os/exec"
	"sync"
	"time"
)

// Option configures a Command at construction.
type Option func(*Command)

// WithEnv adds environment variables to every process.
func WithEnv(env map[string]string) Option {
	return func(c *Command) { maps.Copy(c.env, env) }
}

// WithDir sets the default working directory.
func WithDir(dir string) Option {
	return func(c *Command) { c.dir = dir }
}

// WithContext sets the context processes are bound to.
func WithContext(ctx context.Context) Option {
	return func(c *Command) { c.ctx = ctx }
}

// WithTimeout kills processes that run longer than timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Command) { c.timeout = timeout }
}

// WithInheritEnv passes the caller's environment to every process.
func WithInheritEnv() Option {
	return func(c *Command) { c.inherit = true }
}

// Command is the os/exec backed Executor. The zero value is not usable; call
// New. A Command is immutable once built, so one value may be shared between
// goroutines.
type Command struct {
	ctx     context.Context
	dir     string
	env     map[string]string
	inherit bool
	timeout time.Duration
}

// New returns a Command configured by opts.
func New(opts ...Option) *Command {
	c := &Command{ctx: context.Background(), env: map[string]string{}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Command) with(fn func(*Command)) Executor {
	next := *c
	next.env = maps.Clone(c.env)
	fn(&next)
	return &next
}

func (c *Command) WithEnv(env map[string]string) Executor {
	return c.with(WithEnv(env))
}

func (c *Command) WithDir(dir string) Executor {
	return c.with(WithDir(dir))
}

func (c *Command) WithContext(ctx context.Context) Executor {
	return c.with(WithContext(ctx))
}

func (c *Command) WithTimeout(timeout time.Duration) Executor {
	return c.with(WithTimeout(timeout))
}

func (c *Command) WithInheritEnv() Executor {
	return c.with(WithInheritEnv())
}

func (c *Command) Clone() Executor {
	return c.with(func(*Command) {})
}

func (c *Command) Run(args ...string) (*Result, error) {
	if len(args) == 0 {
		return nil, &ExecError{Dir: c.dir, ExitCode: -1, Err: osexec.ErrNotFound}
	}

	ctx := c.ctx
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	cmd := osexec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = c.dir
	cmd.Env = c.environ()

	var stdout, stderr bytes.Buffer
	var combined syncBuffer
	cmd.Stdout = io.MultiWriter(&stdout, &combined)
	cmd.Stderr = io.MultiWriter(&stderr, &combined)

	start := time.Now()
	runErr := cmd.Run()

	res := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Combined: combined.String(),
		ExitCode: -1,
		Duration: time.Since(start),
	}
	if cmd.ProcessState != nil {
		res.ExitCode = cmd.ProcessState.ExitCode()
	}
	if runErr == nil {
		return res, nil
	}
	return res, &ExecError{
		Command:  args,
		Dir:      c.dir,
		ExitCode: res.ExitCode,
		Stdout:   res.Stdout,
		Stderr:   res.Stderr,
		Err:      runErr,
	}
}

// environ returns nil, meaning the caller's environment, only when nothing
// was configured.
func (c *Command) environ() []string {
	if !c.inherit && len(c.env) == 0 {
		return nil
	}
	var env []string
	if c.inherit {
		env = os.Environ()
	}
	for k, v := range c.env {
		env = append(env, k+"="+v)
	}
	return env
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

var _ Executor = (*Command)(nil)
