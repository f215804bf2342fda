package errors

import (
	stderrors "errors"
)

// Is is errors.Is from the standard library, re-exported so callers need
// only one errors import.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// GetCode is the code of the outermost Error in err's chain, or CodeUnknown.
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Code()
	}
	return CodeUnknown
}

// GetClassification is the classification of the outermost Error in err's
// chain. Errors without one are permanent.
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationPermanent
	}

	var e Error
	if stderrors.As(err, &e) {
		return e.Classification()
	}
	return ClassificationPermanent
}

func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// IsNotFound reports whether err means the target does not exist, either by
// code or by a fs.ErrNotExist cause anywhere in the chain.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e Error
	for cur := err; stderrors.As(cur, &e); cur = e.Unwrap() {
		if e.Code() == CodeNotFound {
			return true
		}
	}
	return isNotExist(err)
}
