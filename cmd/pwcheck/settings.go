package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/rihenm13-code/password-checker/internal/config"
	"github.com/rihenm13-code/password-checker/internal/logging"
	"github.com/rihenm13-code/password-checker/internal/scoring"
)

// loadSettings builds the effective configuration:
// flags > environment > config file > defaults.
func loadSettings(cmd *cobra.Command, args []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	loaded.ApplyEnv(os.Getenv)
	applyFlags(loaded, cmd.Flags())

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg = loaded

	output, err := logOutput(cmd, path)
	if err != nil {
		return err
	}
	if err := logging.InitializeWithOutput(cfg.LogLevel, output); err != nil {
		return err
	}

	logging.Debug("Configuration loaded",
		zap.String("path", path),
		zap.String("server_url", cfg.ServerURL),
		zap.Duration("timeout", cfg.Timeout),
	)
	return nil
}

// logOutput picks where logs go. The interactive screen owns the
// terminal, so without --log-file it logs next to the config file.
func logOutput(cmd *cobra.Command, path string) (string, error) {
	if logFile != "" || cmd != rootCmd || cfg.LogLevel == "off" {
		return logFile, nil
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("failed to create log directory: %w", err)
	}
	return filepath.Join(dir, "pwcheck.log"), nil
}

func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.GetConfigPath()
}

// applyFlags copies explicitly set flags over the loaded values
func applyFlags(c *config.Config, flags *pflag.FlagSet) {
	if flags.Changed("server") {
		c.ServerURL = serverURL
	}
	if flags.Changed("timeout") {
		c.Timeout = requestTimeout
	}
	if flags.Changed("log-level") {
		c.LogLevel = logLevel
	}
	if flags.Changed("length") {
		c.GenerateLength = generateLength
	}
}

// newClient returns a scoring client for the effective configuration
func newClient() *scoring.Client {
	client := scoring.NewClient(cfg.ServerURL)
	client.SetTimeout(cfg.Timeout)
	client.GenerateLength = cfg.GenerateLength
	return client
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
