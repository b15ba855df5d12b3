package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/sounds-of-canada/internal/browse"
	"github.com/desertthunder/sounds-of-canada/internal/repositories"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
	"github.com/desertthunder/sounds-of-canada/internal/ui"
	"github.com/urfave/cli/v3"
)

// Browse launches the interactive album browser.
//
// Favourites persist when database.path is configured and live in memory otherwise.
func (r *Runner) Browse(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(r.config.Client.LogPath)
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	fileLogger.SetLevel(r.logger.GetLevel())
	r.SetLogger(fileLogger)

	var favourites *browse.Favourites
	if r.config.Database.Path != "" {
		var closeDB func() error
		favourites, closeDB, err = r.openFavourites(ctx)
		if err != nil {
			return err
		}
		defer closeDB()
	}

	model := ui.NewModel(ctx, r.api, favourites, r.logger)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}

// openFavourites loads favourites from the configured database. The caller closes it.
func (r *Runner) openFavourites(ctx context.Context) (*browse.Favourites, func() error, error) {
	if r.config.Database.Path == "" {
		return nil, nil, fmt.Errorf("%w: set database.path or SOC_DATABASE_PATH", shared.ErrMissingConfig)
	}

	db, err := shared.OpenDatabase(r.config.Database)
	if err != nil {
		return nil, nil, err
	}

	favourites, err := browse.LoadFavourites(ctx, repositories.NewFavouriteRepository(db))
	if err != nil {
		db.Close()
		return nil, nil, err
	}

	r.logger.Debug("favourites loaded", "path", r.config.Database.Path, "count", favourites.Len())
	return favourites, db.Close, nil
}
