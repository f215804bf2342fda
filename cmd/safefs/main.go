// safefs is a command-line front end to the safefs library. Every
// subcommand is idempotent where the library is: ensure, write and append
// create missing parents, rm and unlink succeed on absent paths.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// errExit signals a non-zero exit after the command already reported its
// error.
var errExit = errors.New("exit")

// run executes the CLI and returns the exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCmd(stdin, stdout, stderr)
	if args == nil {
		args = []string{}
	}
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	if err := root.Execute(); err != nil {
		if !errors.Is(err, errExit) {
			fmt.Fprintf(stderr, "safefs: %v\n", err) //nolint:errcheck // best-effort stderr
		}
		return 1
	}
	return 0
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "safefs",
		Short:         "Idempotent filesystem operations over local, afero and MinIO backends",
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			fmt.Fprintf(stderr, "safefs: unknown command %q\n", args[0]) //nolint:errcheck // best-effort stderr
			return errExit
		},
	}
	addPersistentFlags(root.PersistentFlags())
	root.CompletionOptions.DisableDefaultCmd = true

	app := &app{stdin: stdin, stdout: stdout, stderr: stderr}
	root.AddCommand(
		newEnsureCmd(app),
		newWriteCmd(app, false),
		newWriteCmd(app, true),
		newCatCmd(app),
		newLsCmd(app),
		newRmCmd(app),
		newUnlinkCmd(app),
		newCopyCmd(app),
		newMoveCmd(app),
		newStrategyCmd(app),
		newVersionCmd(stdout),
	)
	return root
}
