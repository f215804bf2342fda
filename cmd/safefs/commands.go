package main

import (
	"fmt"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmgilman/go/safefs"
	"github.com/jmgilman/go/safefs/errors"
)

// Build metadata, injected via ldflags at build time.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type ensureResult struct {
	Path    string `json:"path"`
	Existed bool   `json:"existed"`
}

type pathResult struct {
	Path string `json:"path"`
}

type moveResult struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func newEnsureCmd(a *app) *cobra.Command {
	var mode string
	cmd := &cobra.Command{
		Use:   "ensure PATH...",
		Short: "Create directories and any missing parents",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.Flags().StringVar(&mode, "mode", "", "octal mode for created directories (default: 0777 minus umask)")
	cmd.RunE = a.runE("ensure", func(args []string) error {
		opts, err := modeOption(mode, safefs.WithMode)
		if err != nil {
			return err
		}
		for _, p := range args {
			existed, err := a.fs.EnsurePath(p, opts...)
			if err != nil {
				return err
			}
			state := "created"
			if existed {
				state = "exists"
			}
			if err := a.emit(ensureResult{Path: p, Existed: existed}, state+" "+p); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}

// newWriteCmd builds "write" or, with appendMode, "append". Content comes
// from the second argument or, when absent, from stdin.
func newWriteCmd(a *app, appendMode bool) *cobra.Command {
	name, short := "write", "Write a file, creating its parent directories"
	if appendMode {
		name, short = "append", "Append to a file, creating it and its parent directories"
	}

	var perm, mode string
	cmd := &cobra.Command{
		Use:   name + " PATH [CONTENT]",
		Short: short,
		Args:  cobra.RangeArgs(1, 2),
	}
	cmd.Flags().StringVar(&perm, "perm", "", "octal file permission (default: 0666 minus umask)")
	cmd.Flags().StringVar(&mode, "mode", "", "octal mode for created parent directories")
	cmd.RunE = a.runE(name, func(args []string) error {
		opts, err := modeOption(perm, safefs.WithPerm)
		if err != nil {
			return err
		}
		dirOpts, err := modeOption(mode, safefs.WithMode)
		if err != nil {
			return err
		}
		opts = append(opts, dirOpts...)

		var data []byte
		if len(args) == 2 {
			data = []byte(args[1])
		} else if data, err = io.ReadAll(a.stdin); err != nil {
			return errors.Wrap(err, errors.CodeInvalidInput, "failed to read stdin")
		}

		if appendMode {
			err = a.fs.AppendFile(args[0], data, opts...)
		} else {
			err = a.fs.WriteFile(args[0], data, opts...)
		}
		if err != nil {
			return err
		}
		if a.settings.Output == "json" {
			return a.emit(pathResult{Path: args[0]}, "")
		}
		return nil
	})
	return cmd
}

func newCatCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cat PATH",
		Short: "Print a file",
		Args:  cobra.ExactArgs(1),
	}
	cmd.RunE = a.runE("cat", func(args []string) error {
		data, err := a.fs.ReadFile(args[0])
		if err != nil {
			return err
		}
		_, err = a.stdout.Write(data)
		return err
	})
	return cmd
}

func newLsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ls [PATH]",
		Short: "List a directory, one name per line; directories end in /",
		Args:  cobra.MaximumNArgs(1),
	}
	cmd.RunE = a.runE("ls", func(args []string) error {
		dir := ""
		if len(args) == 1 {
			dir = args[0]
		}
		entries, err := a.fs.ReadDir(dir)
		if err != nil {
			return err
		}
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Name()
			if e.IsDir() {
				names[i] += "/"
			}
		}
		if a.settings.Output == "json" {
			return a.emit(names, "")
		}
		for _, n := range names {
			if _, err := fmt.Fprintln(a.stdout, n); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}

func newRmCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm PATH...",
		Short: "Remove files and directory trees; absent paths are not an error",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = a.runE("rm", func(args []string) error {
		for _, p := range args {
			if err := a.fs.RemoveTree(p); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}

func newUnlinkCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unlink PATH...",
		Short: "Remove files; absent paths are not an error",
		Args:  cobra.MinimumNArgs(1),
	}
	cmd.RunE = a.runE("unlink", func(args []string) error {
		for _, p := range args {
			if err := a.fs.Unlink(p); err != nil {
				return err
			}
		}
		return nil
	})
	return cmd
}

func newCopyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cp SRC DST",
		Short: "Copy a file or directory tree, creating the destination's parents",
		Args:  cobra.ExactArgs(2),
	}
	cmd.RunE = a.runE("cp", func(args []string) error {
		if err := a.fs.Copy(args[0], args[1]); err != nil {
			return err
		}
		if a.settings.Output == "json" {
			return a.emit(moveResult{Source: args[0], Destination: args[1]}, "")
		}
		return nil
	})
	return cmd
}

func newMoveCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mv SRC DST",
		Short: "Move a file or directory tree, creating the destination's parents",
		Args:  cobra.ExactArgs(2),
	}
	cmd.RunE = a.runE("mv", func(args []string) error {
		if err := a.fs.Move(args[0], args[1]); err != nil {
			return err
		}
		if a.settings.Output == "json" {
			return a.emit(moveResult{Source: args[0], Destination: args[1]}, "")
		}
		return nil
	})
	return cmd
}

func newStrategyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Print the removal strategy selected for the backend",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = a.runE("strategy", func([]string) error {
		s := a.fs.Strategy()
		return a.emit(map[string]string{
			"strategy": string(s),
			"backend":  a.fs.Provider().Type().String(),
		}, string(s))
	})
	return cmd
}

func newVersionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print safefs version information",
		Args:  cobra.NoArgs,
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(stdout, "safefs %s (commit: %s, built: %s)\n", version, commit, date) //nolint:errcheck // best-effort stdout
		},
	}
}

// modeOption parses an octal mode flag into an option. An empty value yields
// no option.
func modeOption(value string, opt func(fs.FileMode) safefs.PathOption) ([]safefs.PathOption, error) {
	if value == "" {
		return nil, nil
	}
	n, err := strconv.ParseUint(strings.TrimPrefix(value, "0o"), 8, 32)
	if err != nil || n > 0o7777 {
		return nil, errors.Newf(errors.CodeInvalidInput, "invalid mode %q", value)
	}
	return []safefs.PathOption{opt(fs.FileMode(n))}, nil
}
