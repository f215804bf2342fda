package main

import (
	"io/fs"
	"log/slog"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/jmgilman/go/safefs"
	"github.com/jmgilman/go/safefs/errors"
)

// settings is the merged configuration. Precedence: flags, SAFEFS_*
// environment variables, config file, defaults.
type settings struct {
	Backend  string        `mapstructure:"backend"`
	Root     string        `mapstructure:"root"`
	WorkDir  string        `mapstructure:"workdir"`
	Umask    string        `mapstructure:"umask"`
	Strategy string        `mapstructure:"strategy"`
	LogLevel string        `mapstructure:"log-level"`
	Output   string        `mapstructure:"output"`
	Minio    minioSettings `mapstructure:"minio"`
}

type minioSettings struct {
	Endpoint  string `mapstructure:"endpoint"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access-key"`
	SecretKey string `mapstructure:"secret-key"`
	UseSSL    bool   `mapstructure:"use-ssl"`
	Prefix    string `mapstructure:"prefix"`
}

// flagKeys maps flag names to configuration keys where they differ.
var flagKeys = map[string]string{
	"minio-endpoint":   "minio.endpoint",
	"minio-bucket":     "minio.bucket",
	"minio-access-key": "minio.access-key",
	"minio-secret-key": "minio.secret-key",
	"minio-use-ssl":    "minio.use-ssl",
	"minio-prefix":     "minio.prefix",
}

func addPersistentFlags(flags *pflag.FlagSet) {
	flags.String("config", "", "config file (YAML, JSON or TOML)")
	flags.String("backend", "local", "storage backend: local, afero or minio")
	flags.String("root", ".", "directory the local and afero backends are rooted at")
	flags.String("workdir", "", "working directory for the rm fallback (default: root for local backends)")
	flags.String("umask", "", "octal umask for created directories and files (default: process umask)")
	flags.String("strategy", "", "force a removal strategy instead of probing the backend")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.StringP("output", "o", "text", "output format: text or json")
	flags.String("minio-endpoint", "", "MinIO endpoint, host:port")
	flags.String("minio-bucket", "", "MinIO bucket")
	flags.String("minio-access-key", "", "MinIO access key")
	flags.String("minio-secret-key", "", "MinIO secret key")
	flags.Bool("minio-use-ssl", false, "connect to MinIO over HTTPS")
	flags.String("minio-prefix", "", "key prefix inside the MinIO bucket")
}

// loadSettings merges flags, environment and the optional config file.
func loadSettings(cmd *cobra.Command) (*settings, error) {
	v := viper.New()
	v.SetEnvPrefix("SAFEFS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	flags := cmd.Flags()
	var bindErr error
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		key := f.Name
		if k, ok := flagKeys[f.Name]; ok {
			key = k
		}
		bindErr = v.BindPFlag(key, f)
	})
	if bindErr != nil {
		return nil, errors.Wrap(bindErr, errors.CodeInternal, "failed to bind flags")
	}

	if path, _ := flags.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.WrapWithContext(err, errors.CodeInvalidConfig,
				"failed to read config file", map[string]interface{}{"path": path})
		}
	}

	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidConfig, "failed to decode configuration")
	}
	return &s, s.validate()
}

func (s *settings) validate() error {
	switch s.Backend {
	case "local", "afero", "minio":
	default:
		return errors.Newf(errors.CodeInvalidConfig, "unknown backend %q", s.Backend)
	}
	switch s.Output {
	case "text", "json":
	default:
		return errors.Newf(errors.CodeInvalidConfig, "unknown output format %q", s.Output)
	}
	if s.Strategy != "" && !safefs.Strategy(s.Strategy).Valid() {
		return errors.Newf(errors.CodeInvalidConfig, "unknown removal strategy %q", s.Strategy)
	}
	return nil
}

// umask parses the configured octal umask, falling back to the process
// umask.
func (s *settings) umask() (fs.FileMode, error) {
	if s.Umask == "" {
		return processUmask(), nil
	}
	n, err := strconv.ParseUint(s.Umask, 8, 32)
	if err != nil || n > 0o777 {
		return 0, errors.Newf(errors.CodeInvalidConfig, "invalid umask %q", s.Umask)
	}
	return fs.FileMode(n), nil
}

func (s *settings) level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s.LogLevel)); err != nil {
		return 0, errors.Wrapf(err, errors.CodeInvalidConfig, "invalid log level %q", s.LogLevel)
	}
	return level, nil
}
