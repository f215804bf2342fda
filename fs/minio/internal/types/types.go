// Package types holds the fs.FileInfo and fs.DirEntry implementations for
// S3 objects and virtual directories.
package types // nolint:revive // internal package with a narrow purpose

import (
	"io/fs"
	"time"
)

const (
	fileMode = fs.FileMode(0o644)
	dirMode  = fs.ModeDir | 0o755
)

// FileInfo describes an object or a virtual directory.
type FileInfo struct {
	name    string
	size    int64
	modTime time.Time
	mode    fs.FileMode
}

// File describes an object.
func File(name string, size int64, modTime time.Time) *FileInfo {
	return &FileInfo{name: name, size: size, modTime: modTime, mode: fileMode}
}

// Dir describes a virtual directory.
func Dir(name string) *FileInfo {
	return &FileInfo{name: name, mode: dirMode}
}

func (fi *FileInfo) Name() string       { return fi.name }
func (fi *FileInfo) Size() int64        { return fi.size }
func (fi *FileInfo) Mode() fs.FileMode  { return fi.mode }
func (fi *FileInfo) ModTime() time.Time { return fi.modTime }
func (fi *FileInfo) IsDir() bool        { return fi.mode.IsDir() }
func (fi *FileInfo) Sys() any           { return nil }

// DirEntry is a listing entry built from a ListObjects result.
type DirEntry struct {
	info *FileInfo
}

// NewDirEntry creates an entry for a file of size bytes, or for a directory
// when isDir is set.
func NewDirEntry(name string, isDir bool, size int64, modTime time.Time) *DirEntry {
	if isDir {
		return &DirEntry{info: Dir(name)}
	}
	return &DirEntry{info: File(name, size, modTime)}
}

func (e *DirEntry) Name() string               { return e.info.name }
func (e *DirEntry) IsDir() bool                { return e.info.IsDir() }
func (e *DirEntry) Type() fs.FileMode          { return e.info.mode.Type() }
func (e *DirEntry) Info() (fs.FileInfo, error) { return e.info, nil }

var (
	_ fs.FileInfo = (*FileInfo)(nil)
	_ fs.DirEntry = (*DirEntry)(nil)
)
