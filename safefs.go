package safefs

import (
	"github.com/jmgilman/go/safefs/exec"
	"github.com/jmgilman/go/safefs/fs/core"
)

// FS adds idempotent operations to a provider. Create it with New.
type FS struct {
	provider core.FS
	cfg      config
	strategy Strategy
}

// New wraps provider. The removal strategy is chosen here, once, from the
// provider's capabilities unless WithStrategy forces one.
func New(provider core.FS, opts ...Option) *FS {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.executor == nil {
		cfg.executor = exec.New(exec.WithInheritEnv())
	}

	strategy := cfg.strategy
	if strategy == "" {
		strategy = ProbeStrategy(provider)
	}

	cfg.logger.Debug("selected removal strategy",
		"strategy", strategy,
		"provider", provider.Type().String(),
	)

	return &FS{
		provider: provider,
		cfg:      cfg,
		strategy: strategy,
	}
}

// Provider returns the wrapped provider.
func (f *FS) Provider() core.FS {
	return f.provider
}

// Strategy returns the removal strategy RemoveTree uses.
func (f *FS) Strategy() Strategy {
	return f.strategy
}

// observe records the outcome of op and returns err unchanged.
func (f *FS) observe(op string, err error) error {
	f.cfg.metrics.observe(op, err)
	return err
}
