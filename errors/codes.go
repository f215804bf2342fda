package errors

// ErrorCode identifies the kind of failure.
// Codes are strings so they read well in logs and JSON output.
type ErrorCode string

const (
	// Path errors.

	// CodeNotFound indicates the target path does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the target path already exists.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// CodeCreationFailed indicates a directory is still absent after an
	// attempt to create it.
	CodeCreationFailed ErrorCode = "CREATION_FAILED"

	// Provider errors.

	// CodeProvider indicates the underlying filesystem provider failed.
	CodeProvider ErrorCode = "PROVIDER_ERROR"

	// CodePermission indicates the provider denied access to the path.
	CodePermission ErrorCode = "PERMISSION_DENIED"

	// CodeBusy indicates the path is temporarily in use.
	CodeBusy ErrorCode = "BUSY"

	// CodeUnsupported indicates the provider lacks the requested capability.
	CodeUnsupported ErrorCode = "UNSUPPORTED"

	// Execution errors.

	// CodeExecutionFailed indicates an external command failed.
	CodeExecutionFailed ErrorCode = "EXECUTION_FAILED"

	// Validation errors.

	// CodeInvalidInput indicates the caller supplied an unusable argument.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates configuration prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// CodeInternal indicates an internal failure.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unclassified error.
	CodeUnknown ErrorCode = "UNKNOWN"
)
