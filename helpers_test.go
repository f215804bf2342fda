package safefs

import (
	"io/fs"
	"sync"
	"testing"

	"github.com/jmgilman/go/safefs/fs/afero"
	"github.com/jmgilman/go/safefs/fs/billy"
	"github.com/jmgilman/go/safefs/fs/core"
)

func init() {
	core.RetryInterval = 0
}

// backend is a real provider the behavioural tests run against.
type backend struct {
	name     string
	new      func(t *testing.T) core.FS
	strategy Strategy
}

func backends() []backend {
	return []backend{
		{
			name:     "billy-memory",
			new:      func(*testing.T) core.FS { return billy.NewMemory() },
			strategy: StrategyTreeRemove,
		},
		{
			name:     "billy-local",
			new:      func(t *testing.T) core.FS { return billy.NewLocal(billy.WithRoot(t.TempDir())) },
			strategy: StrategyTreeRemove,
		},
		{
			name:     "afero-memory",
			new:      func(*testing.T) core.FS { return afero.NewMemory() },
			strategy: StrategyDirRemove,
		},
		{
			name:     "afero-os",
			new:      func(t *testing.T) core.FS { return afero.NewOS(t.TempDir()) },
			strategy: StrategyDirRemove,
		},
	}
}

// modeRecorder remembers the mode of every Mkdir call.
type modeRecorder struct {
	core.FS

	mu    sync.Mutex
	modes map[string]fs.FileMode
}

func recordModes(provider core.FS) *modeRecorder {
	return &modeRecorder{FS: provider, modes: make(map[string]fs.FileMode)}
}

func (r *modeRecorder) Mkdir(name string, perm fs.FileMode) error {
	r.mu.Lock()
	r.modes[name] = perm
	r.mu.Unlock()
	return r.FS.Mkdir(name, perm)
}
