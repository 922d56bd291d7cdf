package main

import (
	"github.com/urfave/cli/v2"
	"github.com/zogakzip-lab/backend/internal/domain/badge"
	"github.com/zogakzip-lab/backend/internal/entity"
	"github.com/zogakzip-lab/backend/internal/repository"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

func (s *srv) startMigrate(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	if err := entity.MigrateTable(xcontext.DB(s.ctx)); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Migrated database tables")
	return nil
}

func (s *srv) startSeedBadges(*cli.Context) error {
	s.loadConfig()
	s.loadLogger()
	s.loadDatabase()

	if err := badge.SeedCatalog(s.ctx, repository.NewBadgeRepository()); err != nil {
		return err
	}

	xcontext.Logger(s.ctx).Infof("Seeded badge catalog")
	return nil
}
