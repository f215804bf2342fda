package errors

// ErrorClassification indicates whether an operation that failed with the
// error may succeed if attempted again.
type ErrorClassification string

const (
	// ClassificationRetryable marks temporary failures such as a busy path.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent marks failures that will not change on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification allows a retry.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeBusy: ClassificationRetryable,

	CodeNotFound:        ClassificationPermanent,
	CodeAlreadyExists:   ClassificationPermanent,
	CodeCreationFailed:  ClassificationPermanent,
	CodeProvider:        ClassificationPermanent,
	CodePermission:      ClassificationPermanent,
	CodeUnsupported:     ClassificationPermanent,
	CodeExecutionFailed: ClassificationPermanent,
	CodeInvalidInput:    ClassificationPermanent,
	CodeInvalidConfig:   ClassificationPermanent,
	CodeInternal:        ClassificationPermanent,
	CodeUnknown:         ClassificationPermanent,
}

// getDefaultClassification returns ClassificationPermanent for unknown codes.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
