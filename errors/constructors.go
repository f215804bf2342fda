package errors

import (
	"errors"
	"fmt"
	"maps"
)

// New creates an Error with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeUnsupported, "provider cannot rename directories")
func New(code ErrorCode, message string) Error {
	return &fsError{
		code:           code,
		classification: getDefaultClassification(code),
		message:        message,
	}
}

// Newf creates an Error with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeCreationFailed, "failed to create the directory: %s", path)
func Newf(code ErrorCode, format string, args ...interface{}) Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps err with a code and message. If err already carries a
// classification it is preserved. Returns nil if err is nil.
//
// Example:
//
//	if err := provider.Rename(src, dst); err != nil {
//	    return errors.Wrap(err, errors.CodeProvider, "rename failed")
//	}
func Wrap(err error, code ErrorCode, message string) Error {
	return WrapWithContext(err, code, message, nil)
}

// Wrapf wraps err with a formatted message. Returns nil if err is nil.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) Error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps err and attaches a copy of ctx in one step.
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeProvider, "write failed", map[string]interface{}{
//	    "path": name,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) Error {
	if err == nil {
		return nil
	}

	classification := getDefaultClassification(code)
	var wrapped Error
	if errors.As(err, &wrapped) {
		classification = wrapped.Classification()
	}

	return &fsError{
		code:           code,
		classification: classification,
		message:        message,
		context:        maps.Clone(ctx),
		cause:          err,
	}
}
