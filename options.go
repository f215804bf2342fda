package safefs

import (
	"io/fs"
	"log/slog"

	"github.com/jmgilman/go/safefs/exec"
)

// DefaultUmask is used when WithUmask is not given.
const DefaultUmask fs.FileMode = 0o022

// Option configures an FS.
type Option func(*config)

type config struct {
	umask    fs.FileMode
	workDir  string
	executor exec.Executor
	logger   *slog.Logger
	metrics  *Metrics
	strategy Strategy
}

func defaultConfig() config {
	return config{
		umask:  DefaultUmask,
		logger: slog.New(slog.DiscardHandler),
	}
}

// WithUmask sets the mask applied to default directory and file modes.
func WithUmask(umask fs.FileMode) Option {
	return func(c *config) {
		c.umask = umask & fs.ModePerm
	}
}

// WithWorkDir sets the working directory of the subprocess removal fallback.
// The default is the working directory of the current process.
func WithWorkDir(dir string) Option {
	return func(c *config) {
		c.workDir = dir
	}
}

// WithExecutor sets the executor used by the subprocess removal fallback.
func WithExecutor(e exec.Executor) Option {
	return func(c *config) {
		c.executor = e
	}
}

// WithLogger sets the logger. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records operation outcomes in m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) {
		c.metrics = m
	}
}

// WithStrategy forces the removal strategy instead of probing the provider.
// RemoveTree rejects a name that is not one of the Strategy constants with
// errors.CodeInvalidInput.
func WithStrategy(s Strategy) Option {
	return func(c *config) {
		c.strategy = s
	}
}

// PathOption configures a single EnsurePath, Mkdir, WriteFile or AppendFile
// call.
type PathOption func(*pathOptions)

type pathOptions struct {
	mode    fs.FileMode
	hasMode bool
	perm    fs.FileMode
}

// WithMode sets the mode of directories created by the call.
func WithMode(mode fs.FileMode) PathOption {
	return func(o *pathOptions) {
		o.mode = mode
		o.hasMode = true
	}
}

// WithPerm sets the permission of the file written by the call.
func WithPerm(perm fs.FileMode) PathOption {
	return func(o *pathOptions) {
		o.perm = perm
	}
}

func (f *FS) pathOptions(opts []PathOption) pathOptions {
	o := pathOptions{
		mode: 0o777 &^ f.cfg.umask,
		perm: 0o666 &^ f.cfg.umask,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// dirOptions keeps only an explicit directory mode, so a file permission
// never leaks into the directories ensured for it.
func dirOptions(o pathOptions) []PathOption {
	if !o.hasMode {
		return nil
	}
	return []PathOption{WithMode(o.mode)}
}
