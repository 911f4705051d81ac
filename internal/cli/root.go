package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arloliu/healthplot/errs"
	"github.com/arloliu/healthplot/internal/logger"
)

// Exit codes.
const (
	exitError = 1
	exitUsage = 2
)

var logCleanup func() error

func Execute() {
	cmd := newRootCmd()
	err := cmd.Execute()
	if err != nil {
		logger.L().Error("command.failed", "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
	}
	_ = closeLogger()

	if err != nil {
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	if errors.Is(err, errs.ErrInvalidDimension) {
		return exitUsage
	}

	return exitError
}

func closeLogger() error {
	if logCleanup == nil {
		return nil
	}
	err := logCleanup()
	logCleanup = nil

	return err
}

func newRootCmd() *cobra.Command {
	var (
		debug   bool
		logFile string
	)

	cmd := &cobra.Command{
		Use:           "healthplot",
		Short:         "Scatter plots of state health survey data with an OLS overlay",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			cleanup, err := logger.Setup(logger.Config{
				Path:   logFile,
				Writer: c.ErrOrStderr(),
				Debug:  debug,
			})
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			logCleanup = cleanup

			return nil
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose JSON logging")
	cmd.PersistentFlags().StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")

	cmd.AddCommand(
		renderCmd(),
		fitCmd(),
		rangesCmd(),
		inspectCmd(),
		tuiCmd(),
		packCmd(),
		versionCmd(),
	)

	return cmd
}
