package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/nao1215/langreport/internal/config"
	"github.com/nao1215/langreport/internal/github"
	"github.com/nao1215/langreport/internal/log"
	"github.com/spf13/cobra"
)

// stringFlags maps string flag names to the config field they set.
// Flags not registered on a command are skipped.
func stringFlags(cfg *config.Config) map[string]*string {
	return map[string]*string{
		"repo":         &cfg.Repository,
		"file":         &cfg.DocumentPath,
		"start-marker": &cfg.StartMarker,
		"end-marker":   &cfg.EndMarker,
		"api-url":      &cfg.APIBaseURL,
		"proxy":        &cfg.ProxyAddress,
	}
}

// addConnectionFlags registers the flags shared by every command that
// talks to the API.
func addConnectionFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("repo", "r", "",
		"Repository as owner/name (default: $GITHUB_REPOSITORY)")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .langreport in current or home directory)")
	cmd.Flags().String("api-url", config.DefaultAPIBaseURL,
		"GitHub REST API base URL (default: $GITHUB_API_URL)")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Timeout for the API request")
	cmd.Flags().String("proxy", "",
		"SOCKS5 proxy address (e.g., 127.0.0.1:1080)")
	cmd.Flags().Bool("chart", false,
		"Append a mermaid pie chart below the table")
}

// buildConfig layers defaults, the configuration file, the environment and
// the command line flags, in that order.
func buildConfig(cmd *cobra.Command, lookup config.LookupFunc) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// An explicitly named file must exist; otherwise a missing file is fine.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(cf)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	cfg.ApplyEnv(lookup)

	if err := applyFlags(cmd, cfg); err != nil {
		return nil, err
	}
	cfg.APIBaseURL = strings.TrimRight(cfg.APIBaseURL, "/")
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// applyFlags copies every flag the user set explicitly onto the config.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	for name, field := range stringFlags(cfg) {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return err
		}
		*field = v
	}

	if flags.Changed("timeout") {
		v, err := flags.GetDuration("timeout")
		if err != nil {
			return err
		}
		cfg.Timeout = v
	}

	if flags.Changed("chart") {
		v, err := flags.GetBool("chart")
		if err != nil {
			return err
		}
		cfg.PieChart = v
	}

	if flags.Lookup("dry-run") != nil {
		v, err := flags.GetBool("dry-run")
		if err != nil {
			return err
		}
		cfg.DryRun = v
	}

	return nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates the secure logger for a command and installs it as default.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	logger := log.NewSecureLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)
	return logger
}

// signalContext returns the command context cancelled on SIGINT or SIGTERM.
func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
}

// withFetchHint appends a likely cause to fetch errors with a 404, 401 or 403
// status. Other errors are returned unchanged.
func withFetchHint(err error) error {
	var fetchErr *github.FetchError
	if !errors.As(err, &fetchErr) {
		return err
	}
	switch {
	case fetchErr.IsNotFound():
		return fmt.Errorf("%w\nhint: repository not visible with this token (private repositories need GITHUB_TOKEN)", err)
	case fetchErr.IsUnauthorized():
		return fmt.Errorf("%w\nhint: GITHUB_TOKEN was rejected or lacks read access (403 can also mean the rate limit was exceeded)", err)
	default:
		return err
	}
}
