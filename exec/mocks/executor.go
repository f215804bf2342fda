// Package mocks provides testify mocks for the exec package.
package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jmgilman/go/safefs/exec"
)

// ExecutorMock is a testify mock of exec.Executor. The With* methods and
// Clone return the mock itself so chains keep working; only Run needs an
// expectation.
//
//	m := &mocks.ExecutorMock{}
//	m.On("Run", []string{"rm", "-rf", "--", "build"}).Return(&exec.Result{}, nil)
type ExecutorMock struct {
	mock.Mock

	// Dirs records every directory passed to WithDir. Read it once the
	// goroutines using the mock are done.
	Dirs []string

	dirsMu sync.Mutex
}

// WithEnv returns the mock.
func (m *ExecutorMock) WithEnv(env map[string]string) exec.Executor {
	return m
}

// WithDir records dir.
func (m *ExecutorMock) WithDir(dir string) exec.Executor {
	m.dirsMu.Lock()
	defer m.dirsMu.Unlock()
	m.Dirs = append(m.Dirs, dir)
	return m
}

// WithContext returns the mock.
func (m *ExecutorMock) WithContext(ctx context.Context) exec.Executor {
	return m
}

// WithTimeout returns the mock.
func (m *ExecutorMock) WithTimeout(timeout time.Duration) exec.Executor {
	return m
}

// WithInheritEnv returns the mock.
func (m *ExecutorMock) WithInheritEnv() exec.Executor {
	return m
}

// Run records args and returns what On("Run", args) configured.
func (m *ExecutorMock) Run(args ...string) (*exec.Result, error) {
	ret := m.Called(args)
	var result *exec.Result
	if r := ret.Get(0); r != nil {
		result = r.(*exec.Result)
	}
	return result, ret.Error(1)
}

// Clone returns the mock; clones share expectations.
func (m *ExecutorMock) Clone() exec.Executor {
	return m
}

var _ exec.Executor = (*ExecutorMock)(nil)
