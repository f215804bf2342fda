package exec

import (
	"context"
	"slices"
	"time"
)

// Bound fixes the leading arguments of every Run, typically a program name
// and its flags.
type Bound struct {
	next   Executor
	prefix []string
}

// Bind returns an Executor whose Run(args...) calls next.Run(prefix...,
// args...). next may be any Executor, including a mock.
func Bind(next Executor, prefix ...string) *Bound {
	return &Bound{next: next, prefix: slices.Clone(prefix)}
}

func (b *Bound) wrap(next Executor) Executor {
	return &Bound{next: next, prefix: b.prefix}
}

func (b *Bound) WithEnv(env map[string]string) Executor   { return b.wrap(b.next.WithEnv(env)) }
func (b *Bound) WithDir(dir string) Executor              { return b.wrap(b.next.WithDir(dir)) }
func (b *Bound) WithContext(ctx context.Context) Executor { return b.wrap(b.next.WithContext(ctx)) }
func (b *Bound) WithTimeout(d time.Duration) Executor     { return b.wrap(b.next.WithTimeout(d)) }
func (b *Bound) WithInheritEnv() Executor                 { return b.wrap(b.next.WithInheritEnv()) }
func (b *Bound) Clone() Executor                          { return b.wrap(b.next.Clone()) }

func (b *Bound) Run(args ...string) (*Result, error) {
	return b.next.Run(slices.Concat(b.prefix, args)...)
}

var _ Executor = (*Bound)(nil)
