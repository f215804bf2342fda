//go:build !unix

package main

import (
	"io/fs"

	"github.com/jmgilman/go/safefs"
)

func processUmask() fs.FileMode {
	return safefs.DefaultUmask
}
