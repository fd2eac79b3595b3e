package main

import (
	"fmt"

	"go.uber.org/zap"

	"mynote/pkg/db/postgres"
)

func runMigrate(rt *bootstrap) error {
	ctx, cfg := rt.ctx, rt.cfg

	rt.log.Info(ctx, "applying migrations", zap.String("source", cfg.Postgres.GetMigrationsURL()))

	if err := postgres.MigrateDSN(ctx, cfg.Postgres.GetConnectionURL(), cfg.Postgres.GetMigrationsURL()); err != nil {
		return fmt.Errorf("%s: %w", ErrRunMigrations, err)
	}
	return nil
}
