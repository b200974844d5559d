package cmd

import (
	"fmt"
	"os"

	"github.com/SundayYogurt/social_user_service/config"
	"github.com/SundayYogurt/social_user_service/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var envFile string

// rootCmd is the base command. Subcommands live in serve.go, migrate.go
// and seed.go.
var rootCmd = &cobra.Command{
	Use:           "user-service",
	Short:         "User accounts, address book and friend graph over gRPC",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command. It should be invoked from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "env file loaded outside prod (default .env)")
}

func setup() (config.Config, *zap.Logger, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg := config.LoadConfig(files...)

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Dev: cfg.LogDev})
	if err != nil {
		return cfg, nil, fmt.Errorf("logger: %w", err)
	}
	return cfg, log.With(zap.String("service", "user-service")), nil
}
