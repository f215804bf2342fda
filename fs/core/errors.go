package core

import (
	"errors"
	"io/fs"
	"syscall"
)

var (
	// Providers report the io/fs sentinels; these aliases save an import.
	ErrNotExist   = fs.ErrNotExist
	ErrExist      = fs.ErrExist
	ErrPermission = fs.ErrPermission

	// ErrNotEmpty: a non-recursive removal found children.
	ErrNotEmpty = errors.New("directory not empty")

	// ErrUnsupported: the provider cannot perform the operation at all.
	ErrUnsupported = errors.New("operation not supported")
)

// IsTransient reports whether err is worth retrying: the path was busy or a
// concurrent writer repopulated a directory being removed.
func IsTransient(err error) bool {
	return errors.Is(err, syscall.EBUSY) ||
		errors.Is(err, syscall.ENOTEMPTY) ||
		errors.Is(err, syscall.EMFILE) ||
		errors.Is(err, syscall.ENFILE) ||
		errors.Is(err, ErrNotEmpty)
}
