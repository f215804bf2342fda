package errors

import (
	stderrors "errors"
	"io/fs"
	"syscall"
)

// FromProvider wraps a raw provider error, choosing the most specific code
// the cause allows. Errors that already carry a code are wrapped with that
// code so the chain keeps its classification. Returns nil if err is nil.
//
// Example:
//
//	if err := p.Rename(src, dst); err != nil {
//	    return errors.FromProvider(err, "rename", src)
//	}
func FromProvider(err error, op, path string) Error {
	if err == nil {
		return nil
	}

	code := Classify(err)
	return WrapWithContext(err, code, op+" "+path, map[string]interface{}{
		"op":   op,
		"path": path,
	})
}

// Classify maps err to an ErrorCode without wrapping it.
func Classify(err error) ErrorCode {
	var e Error
	switch {
	case err == nil:
		return CodeUnknown
	case stderrors.As(err, &e):
		return e.Code()
	case isNotExist(err):
		return CodeNotFound
	case isBusy(err):
		// ENOTEMPTY also matches fs.ErrExist.
		return CodeBusy
	case stderrors.Is(err, fs.ErrExist):
		return CodeAlreadyExists
	case stderrors.Is(err, fs.ErrPermission):
		return CodePermission
	default:
		return CodeProvider
	}
}

func isNotExist(err error) bool {
	return stderrors.Is(err, fs.ErrNotExist) || stderrors.Is(err, syscall.ENOENT)
}

func isBusy(err error) bool {
	return stderrors.Is(err, syscall.EBUSY) ||
		stderrors.Is(err, syscall.ENOTEMPTY) ||
		stderrors.Is(err, syscall.EAGAIN)
}
