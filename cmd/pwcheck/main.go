// Pwcheck is a terminal password strength checker.
//
// It sends passwords to a scoring service and shows a live strength
// meter, suggestions, generated passwords and clipboard shortcuts. The
// service does the scoring; pwcheck never stores or logs a password.
//
// Usage:
//
//	pwcheck [command] [flags]
//
// Running without arguments launches the interactive checker.
// See 'pwcheck --help' for available commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/rihenm13-code/password-checker/internal/config"
	"github.com/rihenm13-code/password-checker/internal/logging"
	"github.com/rihenm13-code/password-checker/internal/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	logging.Sync()
	if err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

// Global flags
var (
	configPath     string
	serverURL      string
	requestTimeout time.Duration
	logLevel       string
	logFile        string
	generateLength int
)

// cfg is the effective configuration, set by loadSettings before any
// command runs.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "pwcheck",
	Short: "Password strength checker",
	Long: `A terminal client for a password scoring service.

Type a password to see its strength, the label and suggestions update as
you type. Generate strong passwords and copy them to the clipboard.

If no command is specified, the interactive checker launches automatically.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	// Set here rather than in the literal to avoid an initialization cycle
	// (loadSettings -> logOutput -> rootCmd).
	rootCmd.PersistentPreRunE = loadSettings

	// Disable automatic completion command generation
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "Config file (default is the OS config dir)")
	flags.StringVar(&serverURL, "server", "", "Scoring service URL (env "+config.EnvServerURL+")")
	flags.DurationVar(&requestTimeout, "timeout", config.DefaultTimeout, "Request timeout")
	flags.StringVar(&logLevel, "log-level", "", "Log level: off, debug, info, warn, error (env "+logging.LogLevelEnvVar+")")
	flags.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stdout")
	flags.IntVar(&generateLength, "length", 0, "Generated password length, 8-32 (0 = service default)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// Works even with a broken config file
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pwcheck %s (commit: %s)\n", version.Version, version.Commit)
	},
}
