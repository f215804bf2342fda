// Package errs converts MinIO errors into io/fs errors.
package errs

import (
	"fmt"
	"io/fs"
	"syscall"

	"github.com/minio/minio-go/v7"
)

// Translate maps a MinIO error response onto the io/fs sentinel it means.
// Throttling responses become syscall.EBUSY so callers retry them.
func Translate(err error) error {
	if err == nil {
		return nil
	}

	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return fs.ErrNotExist
	case "AccessDenied":
		return fs.ErrPermission
	case "SlowDown", "ServiceUnavailable", "RequestTimeout":
		return fmt.Errorf("minio: %w: %w", syscall.EBUSY, err)
	}
	return fmt.Errorf("minio: %w", err)
}

// PathError wraps the translation of err in an fs.PathError. Returns nil if
// err is nil.
func PathError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	return &fs.PathError{Op: op, Path: path, Err: Translate(err)}
}
