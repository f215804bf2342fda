// Package errors provides the structured errors returned by safefs and its
// providers.
//
// Every error carries an ErrorCode naming the kind of failure, a
// retry classification and optional context metadata, and wraps the
// underlying cause. Wrapping never hides the cause, so the standard library
// helpers keep working:
//
//	_, err := fsys.EnsurePath("build/out")
//	if errors.GetCode(err) == errors.CodeCreationFailed {
//	    // the directory could not be made to exist
//	}
//	if stderrors.Is(err, fs.ErrPermission) {
//	    // the provider denied access
//	}
//
// Raw provider errors (os.PathError, syscall errors, object store errors) are
// converted with FromProvider, which picks the most specific code it can
// recognize and falls back to CodeProvider.
//
// # Codes
//
//   - CodeNotFound: the target does not exist
//   - CodeCreationFailed: a directory could not be made to exist
//   - CodeProvider: any other provider failure
//   - CodeExecutionFailed: the subprocess removal fallback failed
//
// CodePermission, CodeAlreadyExists and CodeBusy refine CodeProvider when the
// cause is recognized. CodeBusy is the only retryable code.
//
// # Serialization
//
// ToJSON flattens an error into an ErrorResponse for command line output. The
// cause chain is not included.
package errors
