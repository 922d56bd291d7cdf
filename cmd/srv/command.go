package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Action = cli.ShowAppHelp
	app.Name = "Zogakzip"
	app.Usage = ""
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start service api",
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action:      server.startMigrate,
			Name:        "migrate",
			Usage:       "Migrate database tables",
			Category:    "Database",
			Description: `Used to create or update all database tables.`,
		},
		{
			Action:      server.startSeedBadges,
			Name:        "seed-badges",
			Usage:       "Seed the badge catalog",
			Category:    "Database",
			Description: `Used to insert the badge catalog. Running it again is a no-op.`,
		},
	}

	s.app = app
}
