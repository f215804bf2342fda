// Package minio provides a core.FS backed by a MinIO or S3-compatible bucket.
//
// Directories are virtual: a directory exists when a marker object
// ("name/") or any object below it exists. Mkdir writes the marker so empty
// directories survive. The provider implements core.TreeRemover and
// core.TreeCopier.
package minio

import (
	"github.com/minio/minio-go/v7"

	"github.com/jmgilman/go/safefs/errors"
)

// defaultConcurrency bounds the parallel object copies of Copy and Rename.
const defaultConcurrency = 10

// Config holds MinIO filesystem configuration.
type Config struct {
	// Endpoint is the MinIO server address (e.g., "localhost:9000").
	Endpoint string

	// Bucket is the bucket holding the filesystem. Required.
	Bucket string

	// AccessKey and SecretKey authenticate against Endpoint.
	AccessKey string
	SecretKey string

	// UseSSL enables HTTPS.
	UseSSL bool

	// Prefix places every key below this path, for namespacing.
	Prefix string

	// Client is a pre-configured client. When set, Endpoint and the keys are
	// ignored.
	Client *minio.Client

	// MaxConcurrency limits parallel object copies. Default: 10.
	MaxConcurrency int
}

// validate requires a bucket and either a client or full credentials.
func (c *Config) validate() error {
	if c.Bucket == "" {
		return errors.New(errors.CodeInvalidConfig, "bucket is required")
	}
	if c.Client != nil {
		return nil
	}
	if c.Endpoint == "" {
		return errors.New(errors.CodeInvalidConfig, "endpoint is required when client is not provided")
	}
	if c.AccessKey == "" {
		return errors.New(errors.CodeInvalidConfig, "access key is required when client is not provided")
	}
	if c.SecretKey == "" {
		return errors.New(errors.CodeInvalidConfig, "secret key is required when client is not provided")
	}
	return nil
}
