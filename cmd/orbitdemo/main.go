package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"orbitdemo/internal/game"
	"orbitdemo/internal/logging"
	"orbitdemo/internal/settings"
)

type launcher func(cfg settings.Settings, log *zap.Logger) error

var errNoCommand = errors.New("missing command")

// runError is a failure after a command started, as opposed to bad usage.
type runError struct{ err error }

func (e *runError) Error() string { return e.err.Error() }
func (e *runError) Unwrap() error { return e.err }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, game.Run))
}

func newRootCmd(launch launcher) *cobra.Command {
	root := &cobra.Command{
		Use:           "orbitdemo",
		Short:         "Orbit camera demo",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errNoCommand
		},
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
	}

	root.AddCommand(&cobra.Command{
		Use:   "hello",
		Short: "Print a greeting and exit",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "Hello, world!")
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "rotate",
		Short: "Open the orbit camera demo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rotate(launch); err != nil {
				return &runError{err: err}
			}
			return nil
		},
	})

	return root
}

// run executes the command line and returns the process exit code: 0 on
// success, 1 when a command fails, 2 on bad usage.
func run(args []string, stdout, stderr io.Writer, launch launcher) int {
	// Android apps are started without arguments.
	if len(args) == 0 && runtime.GOOS == "android" {
		args = []string{"rotate"}
	}

	root := newRootCmd(launch)
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	var failed *runError
	if errors.As(err, &failed) {
		fmt.Fprintf(stderr, "orbitdemo: %v\n", failed.err)
		return 1
	}
	fmt.Fprintf(stderr, "orbitdemo: %v\n\n%s", err, root.UsageString())
	return 2
}

func rotate(launch launcher) error {
	cfg, err := settings.FromEnv()
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}
	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	if err := launch(cfg, log); err != nil {
		log.Error("orbitdemo exited", zap.Error(err))
		return err
	}
	return nil
}
