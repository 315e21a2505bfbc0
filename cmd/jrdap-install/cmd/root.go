package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/gbxyz/jrdap-install/internal/config"
	"github.com/gbxyz/jrdap-install/internal/installer"
	"github.com/gbxyz/jrdap-install/internal/version"
)

// NewRootCmd builds the installer command for target.
// Cobra prints a failure as "Error: <description>" on the command's stderr.
func NewRootCmd(target *config.Target, opts ...installer.Option) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "jrdap-install",
		Short:        "Download jrdap and install it as an executable",
		Long:         "Download the jrdap script from " + config.DefaultSourceURL + " and install it to " + config.DefaultDestination + " with mode 0755.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.Validate(target); err != nil {
				return err
			}

			stderr := cmd.ErrOrStderr()

			options := []installer.Option{installer.WithReportWriter(stderr)}
			if isTerminal(stderr) {
				options = append(options, installer.WithProgress(stderr))
			}

			return installer.Run(cmd.Context(), target, append(options, opts...)...)
		},
	}

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	version.AttachCobraVersionCommand(rootCmd)

	return rootCmd
}

// installTarget yields the target Execute installs.
//
//nolint:gochecknoglobals // Swapped by tests that run Execute in a child process.
var installTarget = config.Default

// Execute runs the jrdap-install CLI and exits with status 1 on error.
// Help, version and report lines all go to stderr; stdout stays empty.
func Execute() {
	// Setup graceful shutdown handling.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)

	rootCmd := NewRootCmd(installTarget())
	rootCmd.SetOut(os.Stderr)
	rootCmd.SetErr(os.Stderr)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether w is a terminal file descriptor.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
