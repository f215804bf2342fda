package minio

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"golang.org/x/sync/errgroup"

	"github.com/jmgilman/go/safefs/errors"
	"github.com/jmgilman/go/safefs/fs/core"
	"github.com/jmgilman/go/safefs/fs/minio/internal/errs"
	"github.com/jmgilman/go/safefs/fs/minio/internal/pathutil"
	"github.com/jmgilman/go/safefs/fs/minio/internal/types"
)

// FS implements core.FS on a MinIO or S3-compatible bucket.
type FS struct {
	client      *minio.Client
	bucket      string
	prefix      string
	concurrency int
}

// New creates a MinIO-backed filesystem. The bucket is not contacted.
func New(cfg Config) (*FS, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := cfg.Client
	if client == nil {
		var err error
		client, err = minio.New(cfg.Endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
			Secure: cfg.UseSSL,
		})
		if err != nil {
			return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to create minio client")
		}
	}

	concurrency := cfg.MaxConcurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	return &FS{
		client:      client,
		bucket:      cfg.Bucket,
		prefix:      pathutil.Normalize(cfg.Prefix),
		concurrency: concurrency,
	}, nil
}

// Type returns FSTypeRemote.
func (m *FS) Type() core.FSType {
	return core.FSTypeRemote
}

// Bucket returns the bucket name.
func (m *FS) Bucket() string {
	return m.bucket
}

func (m *FS) key(name string) string {
	return pathutil.JoinPath(m.prefix, name)
}

// Exists reports whether name is an object or a non-empty virtual directory.
func (m *FS) Exists(name string) bool {
	_, err := m.Stat(name)
	return err == nil
}

// Stat returns metadata for an object, or directory metadata for a virtual
// directory.
func (m *FS) Stat(name string) (fs.FileInfo, error) {
	key := m.key(name)
	if key == m.prefix {
		return types.Dir("."), nil
	}
	ctx := context.Background()

	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return types.File(pathutil.Base(key), info.Size, info.LastModified), nil
	}
	if !stderrors.Is(errs.Translate(err), fs.ErrNotExist) {
		return nil, errs.PathError("stat", name, err)
	}

	ok, err := m.anyBelow(ctx, pathutil.DirPrefix(key), "")
	if err != nil {
		return nil, errs.PathError("stat", name, err)
	}
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return types.Dir(pathutil.Base(key)), nil
}

// anyBelow reports whether an object other than skip has prefix.
func (m *FS) anyBelow(ctx context.Context, prefix, skip string) (bool, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return false, object.Err
		}
		if object.Key != skip {
			return true, nil
		}
	}
	return false, nil
}

// ReadDir lists the immediate children of a virtual directory, sorted by
// name.
func (m *FS) ReadDir(name string) ([]fs.DirEntry, error) {
	prefix := pathutil.DirPrefix(m.key(name))
	ctx := context.Background()

	var entries []fs.DirEntry
	found := false
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}) {
		if object.Err != nil {
			return nil, errs.PathError("readdir", name, object.Err)
		}
		found = true

		rel := strings.TrimPrefix(object.Key, prefix)
		isDir := strings.HasSuffix(rel, "/")
		rel = strings.TrimSuffix(rel, "/")
		if rel == "" {
			continue
		}
		entries = append(entries, types.NewDirEntry(rel, isDir, object.Size, object.LastModified))
	}

	if !found && prefix != pathutil.DirPrefix(m.prefix) {
		return nil, &fs.PathError{Op: "readdir", Path: name, Err: fs.ErrNotExist}
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})
	return entries, nil
}

// ReadFile returns the contents of the object name.
func (m *FS) ReadFile(name string) ([]byte, error) {
	key := m.key(name)
	ctx := context.Background()

	info, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		return nil, errs.PathError("readfile", name, err)
	}

	obj, err := m.client.GetObject(ctx, m.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, errs.PathError("readfile", name, err)
	}
	defer func() {
		_ = obj.Close()
	}()

	buf := make([]byte, info.Size)
	if _, err := io.ReadFull(obj, buf); err != nil {
		return nil, errs.PathError("readfile", name, err)
	}
	return buf, nil
}

// Mkdir writes the directory marker for name. Parents are implicit.
func (m *FS) Mkdir(name string, _ fs.FileMode) error {
	if m.Exists(name) {
		return &fs.PathError{Op: "mkdir", Path: name, Err: fs.ErrExist}
	}
	marker := pathutil.DirPrefix(m.key(name))
	_, err := m.client.PutObject(context.Background(), m.bucket, marker, bytes.NewReader(nil), 0,
		minio.PutObjectOptions{ContentType: "application/x-directory"})
	return errs.PathError("mkdir", name, err)
}

// WriteFile uploads data as the object name, replacing any previous object.
func (m *FS) WriteFile(name string, data []byte, _ fs.FileMode) error {
	_, err := m.client.PutObject(context.Background(), m.bucket, m.key(name), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	return errs.PathError("writefile", name, err)
}

// AppendFile downloads the object, appends data and uploads the result.
// Objects are immutable, so concurrent appends to the same object race.
func (m *FS) AppendFile(name string, data []byte, perm fs.FileMode) error {
	existing, err := m.ReadFile(name)
	if err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}
	return m.WriteFile(name, append(existing, data...), perm)
}

// Remove deletes an object or an empty virtual directory. A name that is
// neither an object, a directory marker nor a prefix of other objects is
// fs.ErrNotExist.
func (m *FS) Remove(name string) error {
	key := m.key(name)
	ctx := context.Background()

	_, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{})
	switch err = errs.Translate(err); {
	case err == nil:
		return errs.PathError("remove", name,
			m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}))
	case !stderrors.Is(err, fs.ErrNotExist):
		return &fs.PathError{Op: "remove", Path: name, Err: err}
	}

	marker := pathutil.DirPrefix(key)
	children, err := m.anyBelow(ctx, marker, marker)
	if err != nil {
		return errs.PathError("remove", name, err)
	}
	if children {
		return &fs.PathError{Op: "remove", Path: name, Err: core.ErrNotEmpty}
	}
	if _, err := m.client.StatObject(ctx, m.bucket, marker, minio.StatObjectOptions{}); err != nil {
		return errs.PathError("remove", name, err)
	}
	return errs.PathError("remove", name,
		m.client.RemoveObject(ctx, m.bucket, marker, minio.RemoveObjectOptions{}))
}

// Rename copies oldpath to newpath and deletes the originals.
//
// The operation is not atomic. A failed copy can leave some objects at both
// paths, and a failed delete leaves all of them there.
func (m *FS) Rename(oldpath, newpath string) error {
	copied, err := m.copyTree(oldpath, newpath)
	if err != nil {
		return errs.PathError("rename", oldpath, err)
	}
	if len(copied) == 0 {
		return &fs.PathError{Op: "rename", Path: oldpath, Err: fs.ErrNotExist}
	}
	if _, err := m.removeKeys(context.Background(), copied); err != nil {
		return errs.PathError("rename", oldpath, err)
	}
	return nil
}

// Copy duplicates the object or tree at src as dst.
func (m *FS) Copy(src, dst string) error {
	copied, err := m.copyTree(src, dst)
	if err != nil {
		return errs.PathError("copy", src, err)
	}
	if len(copied) == 0 {
		return &fs.PathError{Op: "copy", Path: src, Err: fs.ErrNotExist}
	}
	return nil
}

// RemoveTree deletes an object, or every object below a virtual directory.
// Without Recursive a directory with children is core.ErrNotEmpty; without
// Force a missing path is fs.ErrNotExist. Throttled requests are retried up
// to MaxRetries times.
func (m *FS) RemoveTree(name string, opts core.RemoveTreeOptions) error {
	key := m.key(name)
	return core.Retry(opts.MaxRetries, func() error {
		ctx := context.Background()

		if _, err := m.client.StatObject(ctx, m.bucket, key, minio.StatObjectOptions{}); err == nil {
			return errs.PathError("removetree", name,
				m.client.RemoveObject(ctx, m.bucket, key, minio.RemoveObjectOptions{}))
		}

		prefix := pathutil.DirPrefix(key)
		if !opts.Recursive {
			children, err := m.anyBelow(ctx, prefix, prefix)
			if err != nil {
				return errs.PathError("removetree", name, err)
			}
			if children {
				return &fs.PathError{Op: "removetree", Path: name, Err: core.ErrNotEmpty}
			}
		}

		removed, err := m.removePrefix(ctx, prefix)
		if err != nil {
			return errs.PathError("removetree", name, err)
		}
		if removed == 0 && !opts.Force {
			return &fs.PathError{Op: "removetree", Path: name, Err: fs.ErrNotExist}
		}
		return nil
	})
}

// copyTree copies the object at src, or every object below it, to dst and
// returns the source keys copied.
func (m *FS) copyTree(src, dst string) ([]string, error) {
	srcKey, dstKey := m.key(src), m.key(dst)
	ctx := context.Background()

	if _, err := m.client.StatObject(ctx, m.bucket, srcKey, minio.StatObjectOptions{}); err == nil {
		if err := m.copyObject(ctx, srcKey, dstKey); err != nil {
			return nil, err
		}
		return []string{srcKey}, nil
	}
	return m.parallelCopy(ctx, pathutil.DirPrefix(srcKey), pathutil.DirPrefix(dstKey))
}

func (m *FS) copyObject(ctx context.Context, srcKey, dstKey string) error {
	_, err := m.client.CopyObject(ctx,
		minio.CopyDestOptions{Bucket: m.bucket, Object: dstKey},
		minio.CopySrcOptions{Bucket: m.bucket, Object: srcKey},
	)
	if err != nil {
		return fmt.Errorf("copy object %s to %s: %w", srcKey, dstKey, err)
	}
	return nil
}

// parallelCopy copies every object below oldPrefix to newPrefix with a
// bounded worker pool.
func (m *FS) parallelCopy(ctx context.Context, oldPrefix, newPrefix string) ([]string, error) {
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(m.concurrency)

	var mu sync.Mutex
	var copied []string

	for object := range m.client.ListObjects(egCtx, m.bucket, minio.ListObjectsOptions{
		Prefix:    oldPrefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			_ = eg.Wait()
			return copied, object.Err
		}

		key := object.Key
		eg.Go(func() error {
			if err := m.copyObject(egCtx, key, newPrefix+strings.TrimPrefix(key, oldPrefix)); err != nil {
				return err
			}
			mu.Lock()
			copied = append(copied, key)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return copied, err
	}
	return copied, nil
}

// removePrefix batch-deletes every object below prefix and returns how many
// were listed.
func (m *FS) removePrefix(ctx context.Context, prefix string) (int, error) {
	var keys []string
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if object.Err != nil {
			return 0, object.Err
		}
		keys = append(keys, object.Key)
	}
	return m.removeKeys(ctx, keys)
}

func (m *FS) removeKeys(ctx context.Context, keys []string) (int, error) {
	objects := make(chan minio.ObjectInfo, len(keys))
	for _, key := range keys {
		objects <- minio.ObjectInfo{Key: key}
	}
	close(objects)

	// The result channel is drained fully so the client's goroutine exits.
	var first error
	for result := range m.client.RemoveObjects(ctx, m.bucket, objects, minio.RemoveObjectsOptions{}) {
		if result.Err != nil && first == nil {
			first = result.Err
		}
	}
	if first != nil {
		return 0, first
	}
	return len(keys), nil
}

var (
	_ core.FS          = (*FS)(nil)
	_ core.TreeRemover = (*FS)(nil)
	_ core.TreeCopier  = (*FS)(nil)
)
