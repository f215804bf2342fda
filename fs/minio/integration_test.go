//go:build integration

package minio

import (
	"context"
	"fmt"
	"io/fs"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/jmgilman/go/safefs/fs/core"
	"github.com/jmgilman/go/safefs/fs/fstest"
)

const testBucket = "test-bucket"

// setupMinIOContainer starts a MinIO container with testBucket and returns a
// client for it.
func setupMinIOContainer(t *testing.T) *minio.Client {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx := context.Background()

	minioC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000/tcp"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     "minioadmin",
				"MINIO_ROOT_PASSWORD": "minioadmin",
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err, "failed to start MinIO container")
	t.Cleanup(func() {
		_ = minioC.Terminate(ctx)
	})

	endpoint, err := minioC.Endpoint(ctx, "")
	require.NoError(t, err, "failed to get container endpoint")

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4("minioadmin", "minioadmin", ""),
		Secure: false,
	})
	require.NoError(t, err, "failed to create MinIO client")
	require.NoError(t, client.MakeBucket(ctx, testBucket, minio.MakeBucketOptions{}))

	return client
}

var prefixSeq atomic.Int64

// newTestFS returns a filesystem under a fresh prefix so tests sharing the
// container never see each other's objects.
func newTestFS(t *testing.T, client *minio.Client) *FS {
	t.Helper()
	m, err := New(Config{
		Client: client,
		Bucket: testBucket,
		Prefix: fmt.Sprintf("t%d", prefixSeq.Add(1)),
	})
	require.NoError(t, err)
	return m
}

func TestMinioConformance(t *testing.T) {
	client := setupMinIOContainer(t)

	fstest.RunProfile(t, func() core.FS {
		return newTestFS(t, client)
	}, fstest.ObjectStore)
}

func TestIntegration(t *testing.T) {
	client := setupMinIOContainer(t)

	t.Run("EmptyDirectoryMarker", func(t *testing.T) {
		m := newTestFS(t, client)
		require.NoError(t, m.Mkdir("empty", 0o755))

		info, err := m.Stat("empty")
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		entries, err := m.ReadDir("empty")
		require.NoError(t, err)
		assert.Empty(t, entries)

		err = m.Mkdir("empty", 0o755)
		assert.ErrorIs(t, err, fs.ErrExist)

		require.NoError(t, m.Remove("empty"))
		assert.False(t, m.Exists("empty"))
	})

	t.Run("RemoveNonEmptyDirectory", func(t *testing.T) {
		m := newTestFS(t, client)
		require.NoError(t, m.WriteFile("d/f.txt", []byte("x"), 0o644))

		assert.ErrorIs(t, m.Remove("d"), core.ErrNotEmpty)
		assert.True(t, m.Exists("d/f.txt"))
	})

	t.Run("RemoveMissing", func(t *testing.T) {
		m := newTestFS(t, client)
		assert.ErrorIs(t, m.Remove("nope"), fs.ErrNotExist)

		require.NoError(t, m.WriteFile("once.txt", []byte("x"), 0o644))
		require.NoError(t, m.Remove("once.txt"))
		assert.ErrorIs(t, m.Remove("once.txt"), fs.ErrNotExist)

		require.NoError(t, m.Mkdir("gone", 0o755))
		require.NoError(t, m.Remove("gone"))
		assert.ErrorIs(t, m.Remove("gone"), fs.ErrNotExist)
	})

	t.Run("AppendFile", func(t *testing.T) {
		m := newTestFS(t, client)
		require.NoError(t, m.AppendFile("log", []byte("abc"), 0o644))
		require.NoError(t, m.AppendFile("log", []byte("123"), 0o644))

		data, err := m.ReadFile("log")
		require.NoError(t, err)
		assert.Equal(t, "abc123", string(data))
	})

	t.Run("RemoveTree", func(t *testing.T) {
		m := newTestFS(t, client)
		require.NoError(t, m.Mkdir("tree", 0o755))
		for i := 0; i < 25; i++ {
			require.NoError(t, m.WriteFile(fmt.Sprintf("tree/sub%d/f.txt", i%5), []byte("x"), 0o644))
		}

		err := m.RemoveTree("tree", core.RemoveTreeOptions{Force: true})
		assert.ErrorIs(t, err, core.ErrNotEmpty)

		require.NoError(t, m.RemoveTree("tree", core.RemoveTreeOptions{Recursive: true, Force: true, MaxRetries: 2}))
		assert.False(t, m.Exists("tree"))

		err = m.RemoveTree("tree", core.RemoveTreeOptions{Recursive: true})
		assert.ErrorIs(t, err, fs.ErrNotExist)
	})

	t.Run("CopyAndRename", func(t *testing.T) {
		m := newTestFS(t, client)
		require.NoError(t, m.WriteFile("src/a/b.txt", []byte("b"), 0o644))
		require.NoError(t, m.WriteFile("src/c.txt", []byte("c"), 0o644))

		require.NoError(t, m.Copy("src", "copy"))
		data, err := m.ReadFile("copy/a/b.txt")
		require.NoError(t, err)
		assert.Equal(t, "b", string(data))
		assert.True(t, m.Exists("src/c.txt"))

		require.NoError(t, m.Rename("src", "moved"))
		assert.False(t, m.Exists("src"))
		data, err = m.ReadFile("moved/c.txt")
		require.NoError(t, err)
		assert.Equal(t, "c", string(data))

		assert.ErrorIs(t, m.Copy("missing", "x"), fs.ErrNotExist)
		assert.ErrorIs(t, m.Rename("missing", "x"), fs.ErrNotExist)
	})

	t.Run("PrefixIsolation", func(t *testing.T) {
		a, b := newTestFS(t, client), newTestFS(t, client)
		require.NoError(t, a.WriteFile("shared.txt", []byte("a"), 0o644))

		assert.True(t, a.Exists("shared.txt"))
		assert.False(t, b.Exists("shared.txt"))
	})

	t.Run("ConcurrentWrites", func(t *testing.T) {
		m := newTestFS(t, client)

		var wg sync.WaitGroup
		errCh := make(chan error, 20)
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errCh <- m.WriteFile(fmt.Sprintf("c/%02d.txt", i), []byte("x"), 0o644)
			}()
		}
		wg.Wait()
		close(errCh)
		for err := range errCh {
			require.NoError(t, err)
		}

		entries, err := m.ReadDir("c")
		require.NoError(t, err)
		assert.Len(t, entries, 20)
		assert.Equal(t, "00.txt", entries[0].Name())
	})
}
