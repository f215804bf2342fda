package errors

import "errors"

// WithContext returns a copy of err with key set in its context.
// Plain errors are converted with CodeUnknown. Returns nil if err is nil.
//
// Example:
//
//	err = errors.WithContext(err, "strategy", "subprocess-fallback")
func WithContext(err error, key string, value interface{}) Error {
	if err == nil {
		return nil
	}

	base := asError(err)
	ctx := base.Context()
	if ctx == nil {
		ctx = make(map[string]interface{}, 1)
	}
	ctx[key] = value

	return &fsError{
		code:           base.Code(),
		classification: base.Classification(),
		message:        base.Message(),
		context:        ctx,
		cause:          base.Unwrap(),
	}
}

// WithClassification returns a copy of err with the classification replaced.
// Plain errors are converted with CodeUnknown. Returns nil if err is nil.
func WithClassification(err error, classification ErrorClassification) Error {
	if err == nil {
		return nil
	}

	base := asError(err)
	return &fsError{
		code:           base.Code(),
		classification: classification,
		message:        base.Message(),
		context:        base.Context(),
		cause:          base.Unwrap(),
	}
}

func asError(err error) Error {
	var e Error
	if errors.As(err, &e) {
		return e
	}
	return &fsError{
		code:           CodeUnknown,
		classification: ClassificationPermanent,
		message:        err.Error(),
		cause:          err,
	}
}
