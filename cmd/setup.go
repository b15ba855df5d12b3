package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sounds-of-canada/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes the config template to --output.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("output")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.logger.Info("config file created", "path", path)

	r.writePlain("✓ Config written to %s\n", path)
	r.writePlainln("Next steps:")
	r.writePlain("1. Fill in [credentials.discogs] or set DISCOGS_* in .env\n")
	r.writePlain("2. Run 'soc serve' to start the gateway\n")
	return nil
}

// SetupDatabase initializes the database and runs migrations.
func (r *Runner) SetupDatabase(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Database
	if path := cmd.String("path"); path != "" {
		cfg.Path = path
	}
	if cfg.Path == "" {
		return fmt.Errorf("%w: pass --path or set database.path", shared.ErrMissingConfig)
	}

	r.logger.Info("initializing database", "path", cfg.Path)

	db, err := shared.OpenDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	r.logger.Infof("setup complete for database: %v", cfg.Path)
	r.writePlain("✓ Database ready at %s\n", cfg.Path)
	if cfg.Path != r.config.Database.Path {
		r.writePlain("Set database.path = %q in your config to keep favourites\n", cfg.Path)
	}
	return nil
}
