package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/safefs"
	"github.com/jmgilman/go/safefs/errors"
	"github.com/jmgilman/go/safefs/fs/afero"
	"github.com/jmgilman/go/safefs/fs/billy"
	"github.com/jmgilman/go/safefs/fs/core"
	"github.com/jmgilman/go/safefs/fs/minio"
)

// app carries the I/O streams and, once a command runs, its configuration.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	settings *settings
	fs       *safefs.FS
}

// open loads the configuration and builds the filesystem for cmd.
func (a *app) open(cmd *cobra.Command) error {
	s, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	a.settings = s

	level, err := s.level()
	if err != nil {
		return err
	}
	logger := slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))

	umask, err := s.umask()
	if err != nil {
		return err
	}

	provider, err := s.provider()
	if err != nil {
		return err
	}

	opts := []safefs.Option{
		safefs.WithUmask(umask),
		safefs.WithLogger(logger),
		safefs.WithWorkDir(s.workDir()),
	}
	if s.Strategy != "" {
		opts = append(opts, safefs.WithStrategy(safefs.Strategy(s.Strategy)))
	}
	a.fs = safefs.New(provider, opts...)
	return nil
}

func (s *settings) provider() (core.FS, error) {
	switch s.Backend {
	case "afero":
		return afero.NewOS(s.Root), nil
	case "minio":
		m, err := minio.New(minio.Config{
			Endpoint:  s.Minio.Endpoint,
			Bucket:    s.Minio.Bucket,
			AccessKey: s.Minio.AccessKey,
			SecretKey: s.Minio.SecretKey,
			UseSSL:    s.Minio.UseSSL,
			Prefix:    s.Minio.Prefix,
		})
		if err != nil {
			return nil, err
		}
		return m, nil
	default:
		return billy.NewLocal(billy.WithRoot(s.Root)), nil
	}
}

// workDir defaults to the root for local backends so the rm fallback
// resolves paths the same way the provider does.
func (s *settings) workDir() string {
	if s.WorkDir != "" || s.Backend == "minio" {
		return s.WorkDir
	}
	return s.Root
}

// runE adapts a command body to cobra, loading configuration first and
// reporting any error in the configured output format.
func (a *app) runE(name string, body func(args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if err := a.open(cmd); err != nil {
			return a.fail(name, err)
		}
		if err := body(args); err != nil {
			return a.fail(name, err)
		}
		return nil
	}
}

func (a *app) fail(name string, err error) error {
	if a.settings != nil && a.settings.Output == "json" {
		_ = json.NewEncoder(a.stderr).Encode(errors.ToJSON(err))
	} else {
		fmt.Fprintf(a.stderr, "safefs %s: %v\n", name, err) //nolint:errcheck // best-effort stderr
	}
	return errExit
}

// emit writes v as JSON, or text as a line, depending on the output format.
func (a *app) emit(v any, text string) error {
	if a.settings.Output == "json" {
		return json.NewEncoder(a.stdout).Encode(v)
	}
	_, err := fmt.Fprintln(a.stdout, text)
	return err
}
