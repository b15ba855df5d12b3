package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sounds-of-canada/internal/formatter"
	"github.com/urfave/cli/v3"
)

// FavouritesList prints saved favourites.
func (r *Runner) FavouritesList(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	favourites, closeDB, err := r.openFavourites(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	if favourites.Len() == 0 && format == formatter.FormatTable {
		return r.writePlain("No favourites saved\n")
	}
	if format == formatter.FormatTable {
		r.writePlainHeader(fmt.Sprintf("Favourites (%d)", favourites.Len()))
	}
	return formatter.Render(r.output, favourites.List(), format)
}

// FavouritesExport writes saved favourites to --output.
func (r *Runner) FavouritesExport(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	favourites, closeDB, err := r.openFavourites(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	return r.emit(favourites.List(), format, cmd.String("output"), cmd.String("title"), cmd.Bool("covers"))
}

// FavouritesRemove deletes one favourite by album ID.
func (r *Runner) FavouritesRemove(ctx context.Context, cmd *cli.Command) error {
	favourites, closeDB, err := r.openFavourites(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	id := int64(cmd.Int("id"))
	if err := favourites.Remove(ctx, id); err != nil {
		return fmt.Errorf("failed to remove favourite %d: %w", id, err)
	}
	return r.writePlain("✓ Removed favourite %d\n", id)
}

// FavouritesClear deletes every favourite.
func (r *Runner) FavouritesClear(ctx context.Context, cmd *cli.Command) error {
	favourites, closeDB, err := r.openFavourites(ctx)
	if err != nil {
		return err
	}
	defer closeDB()

	n := favourites.Len()
	if err := favourites.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear favourites: %w", err)
	}
	r.logger.Info("favourites cleared", "count", n)
	return r.writePlain("✓ Removed %d favourites\n", n)
}
