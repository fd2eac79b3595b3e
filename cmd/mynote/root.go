package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mynote/internal/mynote/config"
	"mynote/pkg/logger"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "MYNOTE_LOGGER_MODE"
	EnvLoggerLevel = "MYNOTE_LOGGER_LEVEL"
	EnvConfigPath  = "MYNOTE_CONFIG_PATH"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// bootstrap - общее окружение команд.
type bootstrap struct {
	ctx context.Context
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "mynote",
		Short:         "Minimal multi-user note-taking web application",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRuntime(cmd.Context(), configPath, runServe)
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv(EnvConfigPath),
		"path to configuration file (env "+EnvConfigPath+")")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Apply migrations and start HTTP and gRPC health servers",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRuntime(cmd.Context(), configPath, runServe)
			},
		},
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations and exit",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withRuntime(cmd.Context(), configPath, runMigrate)
			},
		},
	)

	return root
}

// withRuntime настраивает логгер и конфигурацию и вызывает run.
func withRuntime(parent context.Context, configPath string, run func(rt *bootstrap) error) error {
	if parent == nil {
		parent = context.Background()
	}

	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitLogger, err)
	}
	logger.SetGlobalLogger(log)

	defer func() {
		syncLogger(logger.Log(parent))
	}()

	ctx := logger.NewRequestIDContext(parent, "")

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		log.Error(ctx, ErrLoadConfig, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrLoadConfig, err)
	}

	finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
	if err != nil {
		log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrInitLoggerWithConfig, err)
	}
	logger.SetGlobalLogger(finalLogger)

	finalLogger.Info(ctx, "mynote starting",
		zap.String("environment", string(cfg.Logging.GetEnvironment())),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("startup_time", time.Now().Format(time.RFC3339)))

	return run(&bootstrap{ctx: ctx, cfg: cfg, log: finalLogger})
}

func syncLogger(log *logger.Logger) {
	if err := log.Sync(); err != nil {
		errMsg := err.Error()
		if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
			return
		}
		if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
			panic(writeErr)
		}
	}
}
