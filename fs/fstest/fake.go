package fstest

import (
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jmgilman/go/safefs/fs/core"
)

// Fake is an in-memory core.FS for testing. It records all calls (spy) and
// simulates filesystem state (fake). Pre-populate Dirs, Files and Errors
// before calling methods. Fake implements no optional capability; wrap it
// with TreeRemoverFake, DirRemoverFake or TreeCopierFake to add one.
type Fake struct {
	Dirs   map[string]bool   // pre-populated directories
	Files  map[string][]byte // pre-populated files
	Errors map[Call]error    // call → injected error (checked first)
	Calls  []Call            // spy log

	// BeforeMkdir runs before Mkdir touches any state. Tests use it to
	// simulate a concurrent creator.
	BeforeMkdir func(name string)

	mu sync.Mutex
}

// Call records a single method invocation on Fake.
type Call struct {
	Method string // "Exists", "Mkdir", "WriteFile", "Remove", ...
	Path   string // first path argument, cleaned
}

// NewFake returns a ready-to-use Fake with empty maps.
func NewFake() *Fake {
	return &Fake{
		Dirs:   make(map[string]bool),
		Files:  make(map[string][]byte),
		Errors: make(map[Call]error),
	}
}

// AddDir records name and all of its parents as directories.
func (f *Fake) AddDir(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addDirLocked(clean(name))
}

// AddFile stores data at name and records its parents as directories.
func (f *Fake) AddFile(name string, data []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	f.addDirLocked(path.Dir(name))
	f.Files[name] = append([]byte(nil), data...)
}

// Inject makes the next and every later call of method on name fail with err.
func (f *Fake) Inject(method, name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Errors[Call{Method: method, Path: clean(name)}] = err
}

// CallsTo returns the recorded calls of method, in order.
func (f *Fake) CallsTo(method string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.Calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

func (f *Fake) addDirLocked(name string) {
	for p := name; !isRoot(p); p = path.Dir(p) {
		f.Dirs[p] = true
	}
}

// record logs the call and returns any injected error. Callers hold mu.
func (f *Fake) record(method, name string) error {
	c := Call{Method: method, Path: name}
	f.Calls = append(f.Calls, c)
	return f.Errors[c]
}

func (f *Fake) isDirLocked(name string) bool {
	return isRoot(name) || f.Dirs[name]
}

func (f *Fake) existsLocked(name string) bool {
	_, isFile := f.Files[name]
	return isFile || f.isDirLocked(name)
}

// Exists records the call and reports whether name is a known file or directory.
// An injected error makes the path look absent.
func (f *Fake) Exists(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("Exists", name); err != nil {
		return false
	}
	return f.existsLocked(name)
}

// Stat records the call and returns info based on Dirs/Files maps.
func (f *Fake) Stat(name string) (fs.FileInfo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("Stat", name); err != nil {
		return nil, err
	}
	if f.isDirLocked(name) {
		return fakeFileInfo{name: path.Base(name), dir: true}, nil
	}
	if data, ok := f.Files[name]; ok {
		return fakeFileInfo{name: path.Base(name), size: int64(len(data))}, nil
	}
	return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
}

// ReadDir records the call and returns the direct children of name.
func (f *Fake) ReadDir(name string) ([]fs.DirEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("ReadDir", name); err != nil {
		return nil, err
	}
	if !f.isDirLocked(name) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	var entries []fs.DirEntry
	for d := range f.Dirs {
		if path.Dir(d) == name && d != name {
			entries = append(entries, fakeDirEntry{name: path.Base(d), dir: true})
		}
	}
	for p, data := range f.Files {
		if path.Dir(p) == name {
			entries = append(entries, fakeDirEntry{name: path.Base(p), size: int64(len(data))})
		}
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// ReadFile records the call and returns a copy of the file contents.
func (f *Fake) ReadFile(name string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("ReadFile", name); err != nil {
		return nil, err
	}
	if data, ok := f.Files[name]; ok {
		return append([]byte(nil), data...), nil
	}
	return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrNotExist}
}

// Mkdir records the call and creates a single directory.
func (f *Fake) Mkdir(name string, _ fs.FileMode) error {
	if f.BeforeMkdir != nil {
		f.BeforeMkdir(clean(name))
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("Mkdir", name); err != nil {
		return err
	}
	if f.existsLocked(name) {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	if !f.isDirLocked(path.Dir(name)) {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrNotExist}
	}
	f.Dirs[name] = true
	return nil
}

// WriteFile records the call and stores a copy of data. The parent must exist.
func (f *Fake) WriteFile(name string, data []byte, _ fs.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("WriteFile", name); err != nil {
		return err
	}
	if !f.isDirLocked(path.Dir(name)) {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	f.Files[name] = append([]byte(nil), data...)
	return nil
}

// AppendFile records the call and appends data. The parent must exist.
func (f *Fake) AppendFile(name string, data []byte, _ fs.FileMode) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("AppendFile", name); err != nil {
		return err
	}
	if !f.isDirLocked(path.Dir(name)) {
		return &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	f.Files[name] = append(f.Files[name], data...)
	return nil
}

// Remove records the call and removes a file or an empty directory.
func (f *Fake) Remove(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	name = clean(name)
	if err := f.record("Remove", name); err != nil {
		return err
	}
	if _, ok := f.Files[name]; ok {
		delete(f.Files, name)
		return nil
	}
	if !f.Dirs[name] {
		return &fs.PathError{Op: "remove", Path: name, Err: fs.ErrNotExist}
	}
	if len(f.childrenLocked(name)) > 0 {
		return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
	}
	delete(f.Dirs, name)
	return nil
}

// Rename records the call and moves a file or a directory tree.
func (f *Fake) Rename(oldpath, newpath string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	oldpath, newpath = clean(oldpath), clean(newpath)
	if err := f.record("Rename", oldpath); err != nil {
		return err
	}
	if !f.existsLocked(oldpath) {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if !f.isDirLocked(path.Dir(newpath)) {
		return &fs.PathError{Op: "rename", Path: newpath, Err: fs.ErrNotExist}
	}
	for _, p := range f.treeLocked(oldpath) {
		moved := newpath + strings.TrimPrefix(p, oldpath)
		if data, ok := f.Files[p]; ok {
			f.Files[moved] = data
			delete(f.Files, p)
		}
		if f.Dirs[p] {
			f.Dirs[moved] = true
			delete(f.Dirs, p)
		}
	}
	return nil
}

// Type returns FSTypeMemory.
func (f *Fake) Type() core.FSType {
	return core.FSTypeMemory
}

// childrenLocked returns every path strictly below name.
func (f *Fake) childrenLocked(name string) []string {
	prefix := name + "/"
	if isRoot(name) {
		prefix = ""
	}
	var out []string
	for d := range f.Dirs {
		if strings.HasPrefix(d, prefix) && d != name {
			out = append(out, d)
		}
	}
	for p := range f.Files {
		if strings.HasPrefix(p, prefix) {
			out = append(out, p)
		}
	}
	return out
}

// treeLocked returns name and every path below it.
func (f *Fake) treeLocked(name string) []string {
	return append(f.childrenLocked(name), name)
}

// removeTreeLocked deletes name and everything below it.
func (f *Fake) removeTreeLocked(name string) {
	for _, p := range f.treeLocked(name) {
		delete(f.Files, p)
		delete(f.Dirs, p)
	}
}

func clean(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if name == "" {
		return "."
	}
	return path.Clean(name)
}

func isRoot(name string) bool {
	return name == "." || name == "/" || name == ""
}

// --- fake fs.FileInfo ---

type fakeFileInfo struct {
	name string
	size int64
	dir  bool
}

func (fi fakeFileInfo) Name() string { return fi.name }
func (fi fakeFileInfo) Size() int64  { return fi.size }
func (fi fakeFileInfo) Mode() fs.FileMode {
	if fi.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
func (fi fakeFileInfo) ModTime() time.Time { return time.Time{} }
func (fi fakeFileInfo) IsDir() bool        { return fi.dir }
func (fi fakeFileInfo) Sys() any           { return nil }

// --- fake fs.DirEntry ---

type fakeDirEntry struct {
	name string
	size int64
	dir  bool
}

func (de fakeDirEntry) Name() string { return de.name }
func (de fakeDirEntry) IsDir() bool  { return de.dir }
func (de fakeDirEntry) Type() fs.FileMode {
	if de.dir {
		return fs.ModeDir
	}
	return 0
}
func (de fakeDirEntry) Info() (fs.FileInfo, error) {
	return fakeFileInfo(de), nil
}

var (
	_ core.FS     = (*Fake)(nil)
	_ fs.FileInfo = fakeFileInfo{}
	_ fs.DirEntry = fakeDirEntry{}
)
