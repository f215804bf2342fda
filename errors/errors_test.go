package errors

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(CodeCreationFailed, "failed to create the directory: a/b")

	require.Equal(t, CodeCreationFailed, err.Code())
	require.Equal(t, ClassificationPermanent, err.Classification())
	require.Equal(t, "failed to create the directory: a/b", err.Message())
	require.Nil(t, err.Context())
	require.Nil(t, err.Unwrap())
	require.Equal(t, "[CREATION_FAILED] failed to create the directory: a/b", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(CodeInvalidInput, "bad umask %#o", 0o1777)
	require.Equal(t, "bad umask 01777", err.Message())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk on fire")
	err := Wrap(cause, CodeProvider, "write failed")

	require.Equal(t, CodeProvider, err.Code())
	require.Equal(t, cause, err.Unwrap())
	require.Equal(t, "[PROVIDER_ERROR] write failed: disk on fire", err.Error())
	require.True(t, stderrors.Is(err, cause))
}

func TestWrap_Nil(t *testing.T) {
	require.Nil(t, Wrap(nil, CodeProvider, "x"))
	require.Nil(t, Wrapf(nil, CodeProvider, "x %d", 1))
	require.Nil(t, WrapWithContext(nil, CodeProvider, "x", nil))
	require.Nil(t, WithContext(nil, "k", "v"))
	require.Nil(t, WithClassification(nil, ClassificationRetryable))
}

func TestWrap_PreservesClassification(t *testing.T) {
	busy := New(CodeBusy, "resource busy")
	require.True(t, busy.Classification().IsRetryable())

	wrapped := Wrap(busy, CodeProvider, "remove failed")
	require.True(t, wrapped.Classification().IsRetryable())
	require.Equal(t, CodeProvider, wrapped.Code())
}

func TestWrapWithContext_CopiesMap(t *testing.T) {
	ctx := map[string]interface{}{"path": "a"}
	err := WrapWithContext(stderrors.New("x"), CodeProvider, "m", ctx)
	ctx["path"] = "mutated"

	require.Equal(t, "a", err.Context()["path"])

	got := err.Context()
	got["path"] = "also mutated"
	require.Equal(t, "a", err.Context()["path"])
}

func TestWithContext(t *testing.T) {
	err := New(CodeProvider, "remove failed")
	err = WithContext(err, "path", "a/b")
	err = WithContext(err, "strategy", "subprocess-fallback")

	require.Equal(t, map[string]interface{}{
		"path":     "a/b",
		"strategy": "subprocess-fallback",
	}, err.Context())
	require.Equal(t, CodeProvider, err.Code())
}

func TestWithContext_PlainError(t *testing.T) {
	err := WithContext(stderrors.New("plain"), "k", 1)
	require.Equal(t, CodeUnknown, err.Code())
	require.Equal(t, "plain", err.Message())
}

func TestWithClassification(t *testing.T) {
	err := WithClassification(New(CodeProvider, "x"), ClassificationRetryable)
	require.True(t, IsRetryable(err))
	require.Equal(t, CodeProvider, err.Code())
}

func TestGetCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "plain", err: stderrors.New("x"), want: CodeUnknown},
		{name: "coded", err: New(CodeNotFound, "x"), want: CodeNotFound},
		{name: "outermost wins", err: Wrap(New(CodeNotFound, "x"), CodeProvider, "y"), want: CodeProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, GetCode(tt.err))
		})
	}
}

func TestIsNotFound(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "code", err: New(CodeNotFound, "gone"), want: true},
		{name: "fs.ErrNotExist", err: &fs.PathError{Op: "remove", Path: "a", Err: fs.ErrNotExist}, want: true},
		{name: "wrapped cause", err: Wrap(fs.ErrNotExist, CodeProvider, "remove"), want: true},
		{name: "inner code", err: Wrap(New(CodeNotFound, "gone"), CodeProvider, "remove"), want: true},
		{name: "permission", err: fs.ErrPermission, want: false},
		{name: "other code", err: New(CodeBusy, "busy"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, IsNotFound(tt.err))
		})
	}
}
