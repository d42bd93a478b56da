package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/williampepple1/post-inspector/internal/config"
	"github.com/williampepple1/post-inspector/internal/logging"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:           "inspector",
	Short:         "inspector reads upload time and engagement counts from public Instagram posts and reels.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to configuration file (YAML)")
}

// exitError ends the process with a status code and no further output
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

// ExecuteContext runs the root command and exits non-zero on error
func ExecuteContext(ctx context.Context) {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return
	}

	var exit *exitError
	if errors.As(err, &exit) {
		os.Exit(exit.code)
	}
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// loadConfig builds the configuration from .env files, the optional YAML
// file and the process environment, in that order
func loadConfig() (*config.AppConfig, error) {
	if _, err := config.LoadEnvFiles(".env", ".env.local"); err != nil {
		return nil, err
	}

	appConfig := config.CreateDefault()
	if configFile != "" {
		var err error
		appConfig, err = config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load configuration: %w", err)
		}
	}

	if err := appConfig.ApplyEnv(); err != nil {
		return nil, err
	}
	return appConfig, nil
}

func newLogger(appConfig *config.AppConfig) (zerolog.Logger, error) {
	return logging.New(appConfig.Log, os.Stderr)
}
