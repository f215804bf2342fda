package exec

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_Run(t *testing.T) {
	res, err := New().Run("echo", "hello world")
	require.NoError(t, err)
	assert.Equal(t, "hello world\n", res.Stdout)
	assert.Contains(t, res.Combined, "hello world")
	assert.Zero(t, res.ExitCode)
	assert.Positive(t, res.Duration)
}

func TestCommand_RunFailures(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		hasRes   bool
	}{
		{name: "non-zero exit", args: []string{"sh", "-c", "echo boom >&2; exit 3"}, wantCode: 3, hasRes: true},
		{name: "missing binary", args: []string{"safefs-no-such-binary"}, wantCode: -1, hasRes: true},
		{name: "no arguments", args: nil, wantCode: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := New().Run(tt.args...)
			require.Error(t, err)

			var execErr *ExecError
			require.True(t, errors.As(err, &execErr))
			assert.Equal(t, tt.wantCode, execErr.ExitCode)
			assert.Equal(t, tt.args, execErr.Command)
			if tt.hasRes {
				require.NotNil(t, res)
				assert.Equal(t, tt.wantCode, res.ExitCode)
			} else {
				assert.Nil(t, res)
			}
		})
	}
}

func TestExecError_Error(t *testing.T) {
	e := &ExecError{
		Command:  []string{"rm", "-rf", "--", "x"},
		Dir:      "/work",
		ExitCode: 1,
		Stderr:   "rm: cannot remove 'x'\nsecond line\n",
	}
	assert.Equal(t, "rm -rf -- x (in /work): exit 1: rm: cannot remove 'x'", e.Error())

	cause := errors.New("killed")
	e = &ExecError{Command: []string{"sleep"}, ExitCode: -1, Err: cause}
	assert.Equal(t, "sleep: exit -1: killed", e.Error())
	assert.ErrorIs(t, e, cause)
}

func TestCommand_WithDir(t *testing.T) {
	dir := t.TempDir()
	res, err := New().WithDir(dir).Run("pwd")
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(res.Stdout))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCommand_WithLeavesReceiverUnchanged(t *testing.T) {
	base := New(WithDir("/base"), WithEnv(map[string]string{"A": "1"}))

	derived := base.WithDir("/other").WithEnv(map[string]string{"A": "2", "B": "3"})

	assert.Equal(t, "/base", base.dir)
	assert.Equal(t, map[string]string{"A": "1"}, base.env)
	d := derived.(*Command)
	assert.Equal(t, "/other", d.dir)
	assert.Equal(t, map[string]string{"A": "2", "B": "3"}, d.env)
}

func TestCommand_Env(t *testing.T) {
	t.Setenv("SAFEFS_INHERITED", "yes")

	tests := []struct {
		name string
		e    Executor
		want string
	}{
		{name: "explicit", e: New(WithEnv(map[string]string{"SAFEFS_A": "a"})), want: "a -"},
		{name: "local overrides", e: New(WithEnv(map[string]string{"SAFEFS_A": "a"})).WithEnv(map[string]string{"SAFEFS_A": "b"}), want: "b -"},
		{name: "inherited", e: New(WithInheritEnv(), WithEnv(map[string]string{"SAFEFS_A": "a"})), want: "a yes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := tt.e.Run("/bin/sh", "-c", `echo "$SAFEFS_A ${SAFEFS_INHERITED:--}"`)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(res.Stdout))
		})
	}
}

func TestCommand_Timeout(t *testing.T) {
	start := time.Now()
	_, err := New().WithTimeout(50 * time.Millisecond).Run("sleep", "5")
	require.Error(t, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestCommand_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(WithContext(ctx)).Run("sleep", "5")
	require.Error(t, err)
}
