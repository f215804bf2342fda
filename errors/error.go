package errors

import (
	"fmt"
	"maps"
)

// Error is an error with a code, a retry classification and key/value
// context. It unwraps to its cause, so the standard errors.Is and errors.As
// see through it.
type Error interface {
	error
	Code() ErrorCode
	Classification() ErrorClassification
	// Message is the text of this layer alone, without the cause.
	Message() string
	// Context returns a copy; mutating it does not affect the error.
	Context() map[string]any
	Unwrap() error
}

type fsError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]any
	cause          error
}

// Error renders "[CODE] message", followed by ": cause" when there is one.
func (e *fsError) Error() string {
	s := fmt.Sprintf("[%s] %s", e.code, e.message)
	if e.cause == nil {
		return s
	}
	return s + ": " + e.cause.Error()
}

func (e *fsError) Code() ErrorCode                      { return e.code }
func (e *fsError) Classification() ErrorClassification { return e.classification }
func (e *fsError) Message() string                      { return e.message }
func (e *fsError) Context() map[string]any              { return maps.Clone(e.context) }
func (e *fsError) Unwrap() error                        { return e.cause }
