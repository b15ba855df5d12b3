package services

import (
	"context"
	"encoding/json"

	"github.com/desertthunder/sounds-of-canada/internal/models"
)

// Catalog is the upstream surface the gateway forwards to.
type Catalog interface {
	// Search runs a catalog database search with the fixed Canadian album parameters.
	Search(ctx context.Context, q SearchQuery) (json.RawMessage, error)
	// Release retrieves a release payload by ID.
	Release(ctx context.Context, id string) (json.RawMessage, error)
	// Artist retrieves an artist payload by ID.
	Artist(ctx context.Context, id string) (json.RawMessage, error)
	// ArtistReleases retrieves an artist's discography.
	ArtistReleases(ctx context.Context, id string, q ReleasesQuery) (json.RawMessage, error)
	// AlbumsForRelease resolves the first artist of a release and returns that artist's releases.
	AlbumsForRelease(ctx context.Context, releaseID string) (json.RawMessage, error)
}

// AlbumFetcher is the typed surface clients of the gateway use.
type AlbumFetcher interface {
	// Albums searches for albums by year and genres.
	Albums(ctx context.Context, year string, genres []string, page int) ([]models.Album, error)
	// ArtistAlbums lists the releases of the artist credited on the given release.
	ArtistAlbums(ctx context.Context, releaseID int64) ([]models.Album, error)
}

// SearchQuery holds the caller-controlled search parameters. Zero values take configured defaults.
type SearchQuery struct {
	Year   string
	Genres []string
	Page   int
}

// ReleasesQuery holds the optional sort for an artist's releases.
type ReleasesQuery struct {
	Sort      string
	SortOrder string
}

// ByYearDesc sorts an artist's releases newest first.
var ByYearDesc = ReleasesQuery{Sort: "year", SortOrder: "desc"}
