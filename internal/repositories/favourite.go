package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/desertthunder/sounds-of-canada/internal/browse"
	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
)

// FavouriteRepository persists favourite albums in insertion order.
type FavouriteRepository struct {
	db *sql.DB
}

// NewFavouriteRepository creates a new FavouriteRepository with the given database connection
func NewFavouriteRepository(db *sql.DB) *FavouriteRepository {
	return &FavouriteRepository{db: db}
}

// Add appends album. Adding an id that is already stored keeps its original position.
func (r *FavouriteRepository) Add(ctx context.Context, album models.Album) error {
	if album.ID == 0 {
		return fmt.Errorf("%w: favourite requires an album id", shared.ErrInvalidInput)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	position, err := NextSequence(ctx, tx, "favourites")
	if err != nil {
		return fmt.Errorf("failed to generate position: %w", err)
	}

	query := `
		INSERT INTO favourites (id, title, artist, image, position)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET title = excluded.title, artist = excluded.artist, image = excluded.image
	`
	if _, err := tx.ExecContext(ctx, query, album.ID, album.Title, album.Artist, album.Image, position); err != nil {
		return fmt.Errorf("failed to insert favourite: %w", err)
	}

	return tx.Commit()
}

// Get retrieves a favourite by album id
func (r *FavouriteRepository) Get(ctx context.Context, id int64) (models.Album, error) {
	var a models.Album
	err := r.db.QueryRowContext(ctx, "SELECT id, title, artist, image FROM favourites WHERE id = ?", id).
		Scan(&a.ID, &a.Title, &a.Artist, &a.Image)
	if err == sql.ErrNoRows {
		return a, fmt.Errorf("%w: %d", shared.ErrFavouriteNotFound, id)
	}
	if err != nil {
		return a, fmt.Errorf("failed to get favourite: %w", err)
	}
	return a, nil
}

// List returns every favourite ordered by position
func (r *FavouriteRepository) List(ctx context.Context) ([]models.Album, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT id, title, artist, image FROM favourites ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to query favourites: %w", err)
	}
	defer rows.Close()

	albums := []models.Album{}
	for rows.Next() {
		var a models.Album
		if err := rows.Scan(&a.ID, &a.Title, &a.Artist, &a.Image); err != nil {
			return nil, fmt.Errorf("failed to scan favourite: %w", err)
		}
		albums = append(albums, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favourites: %w", err)
	}
	return albums, nil
}

// Remove deletes the favourite with id. Removing an absent id is not an error.
func (r *FavouriteRepository) Remove(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM favourites WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete favourite: %w", err)
	}
	return nil
}

// Clear deletes every favourite
func (r *FavouriteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM favourites"); err != nil {
		return fmt.Errorf("failed to clear favourites: %w", err)
	}
	return nil
}

// Count returns the number of stored favourites
func (r *FavouriteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM favourites").Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count favourites: %w", err)
	}
	return n, nil
}

var _ browse.FavouriteStore = (*FavouriteRepository)(nil)
