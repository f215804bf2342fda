//go:build unix

package main

import (
	"io/fs"

	"golang.org/x/sys/unix"
)

// processUmask reads the umask without changing it. The read is a
// set-and-restore, so it runs once at startup before any goroutines.
func processUmask() fs.FileMode {
	old := unix.Umask(0)
	unix.Umask(old)
	return fs.FileMode(old) & fs.ModePerm
}
