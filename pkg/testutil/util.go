package testutil

import (
	"context"

	"github.com/zogakzip-lab/backend/config"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/pkg/logger"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// MockContext returns a context backed by a fresh in-memory database
// with all tables migrated, suitable for repository and domain tests.
func MockContext() context.Context {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	cfg := config.Configs{
		Env:      "test",
		LogLevel: "error",
		ApiServer: config.ServerConfigs{
			DefaultLimit: 8,
			MaxLimit:     50,
		},
		File: config.FileConfigs{
			MaxSize: 2 * 1024 * 1024,
		},
	}

	ctx := context.Background()
	ctx = xcontext.WithConfigs(ctx, cfg)
	ctx = xcontext.WithLogger(ctx, logger.NewLogger(logger.ParseLevel(cfg.LogLevel)))
	ctx = xcontext.WithDB(ctx, db)

	if err := entity.MigrateTable(db); err != nil {
		panic(err)
	}

	return ctx
}
