package cli

import (
	"context"
	"fmt"
	"os"

	"rhplus/internal/app"
	"rhplus/internal/config"
	"rhplus/internal/shared/apperror"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "payrollctl",
	Short: "Operator commands for the payroll backend",
	Long: `payrollctl runs one-off payroll administration tasks against the
configured database: seeding the default payroll item catalog for a company
and closing a payroll period outside the HTTP API.`,
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type env struct {
	infra  *app.Infra
	logger *zap.Logger
}

func (e *env) close() {
	e.infra.Close()
	_ = e.logger.Sync()
}

func setup(ctx context.Context) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := cfg.Log.NewLogger()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(logger)
	apperror.Init()

	infra, err := app.NewInfra(ctx, cfg, logger, true)
	if err != nil {
		return nil, err
	}
	return &env{infra: infra, logger: logger}, nil
}

func requireFlag(cmd *cobra.Command, name string) (string, error) {
	value, _ := cmd.Flags().GetString(name)
	if value == "" {
		return "", fmt.Errorf("--%s is required", name)
	}
	return value, nil
}
