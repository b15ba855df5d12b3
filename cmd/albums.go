package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/sounds-of-canada/internal/formatter"
	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
	"github.com/urfave/cli/v3"
)

// Albums searches the gateway and prints the normalised results.
func (r *Runner) Albums(ctx context.Context, cmd *cli.Command) error {
	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	year := cmd.String("year")
	genres := cmd.StringSlice("genre")
	r.logger.Debug("searching albums", "year", year, "genres", genres, "page", cmd.Int("page"))

	albums, err := r.api.Albums(ctx, year, genres, cmd.Int("page"))
	if err != nil {
		return err
	}

	title := "Canadian Albums"
	if year != "" {
		title = fmt.Sprintf("Canadian Albums of %s", year)
	}
	return r.emit(albums, format, cmd.String("output"), title, false)
}

// ArtistAlbums prints the releases of the artist credited on --release.
func (r *Runner) ArtistAlbums(ctx context.Context, cmd *cli.Command) error {
	releaseID := int64(cmd.Int("release"))
	if releaseID <= 0 {
		return fmt.Errorf("%w: --release must be a positive ID", shared.ErrInvalidArgument)
	}

	format, err := formatter.ParseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	albums, err := r.api.ArtistAlbums(ctx, releaseID)
	if err != nil {
		return err
	}

	return r.emit(albums, format, cmd.String("output"), fmt.Sprintf("Releases by the artist of %d", releaseID), false)
}

// emit renders albums to stdout, or to output when set.
//
// Markdown output is a directory holding README.md and optional covers.
func (r *Runner) emit(albums []models.Album, format formatter.Format, output, title string, covers bool) error {
	if output == "" {
		return formatter.Render(r.output, albums, format)
	}

	if format == formatter.FormatMarkdown {
		result, err := formatter.WriteMarkdownExport(title, albums, output, covers)
		if err != nil {
			return err
		}
		r.logger.Info("markdown export written", "dir", result.Directory, "files", len(result.Files))
		r.writePlain("✓ Exported %d albums to %s\n", len(albums), result.Directory)
		if result.Covers > 0 {
			r.writePlain("  %d covers saved\n", result.Covers)
		}
		return nil
	}

	if err := formatter.WriteExport(albums, format, output); err != nil {
		return err
	}
	r.logger.Info("export written", "path", output, "format", format)
	return r.writePlain("✓ Exported %d albums to %s\n", len(albums), output)
}
