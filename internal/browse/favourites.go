package browse

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
)

// FavouriteStore persists favourites in insertion order.
type FavouriteStore interface {
	List(ctx context.Context) ([]models.Album, error)
	Add(ctx context.Context, album models.Album) error
	Remove(ctx context.Context, id int64) error
	Clear(ctx context.Context) error
}

// Favourites is an insertion-ordered album list, unique by id.
type Favourites struct {
	mu    sync.RWMutex
	items []models.Album
	store FavouriteStore
}

// NewFavourites creates an empty in-memory list.
func NewFavourites() *Favourites {
	return &Favourites{}
}

// LoadFavourites creates a list seeded from store that writes every change through to it.
func LoadFavourites(ctx context.Context, store FavouriteStore) (*Favourites, error) {
	items, err := store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load favourites: %w", err)
	}
	return &Favourites{items: items, store: store}, nil
}

// Toggle removes album if an album with the same id is present, otherwise appends it.
//
// It reports whether album is a favourite afterwards. The in-memory list is left unchanged when the store fails.
func (f *Favourites) Toggle(ctx context.Context, album models.Album) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if i := f.index(album.ID); i >= 0 {
		if f.store != nil {
			if err := f.store.Remove(ctx, album.ID); err != nil {
				return true, err
			}
		}
		f.items = slices.Delete(f.items, i, i+1)
		return false, nil
	}

	if f.store != nil {
		if err := f.store.Add(ctx, album); err != nil {
			return false, err
		}
	}
	f.items = append(f.items, album)
	return true, nil
}

// Remove drops the favourite with id, returning [shared.ErrFavouriteNotFound] when absent.
func (f *Favourites) Remove(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := f.index(id)
	if i < 0 {
		return fmt.Errorf("%w: %d", shared.ErrFavouriteNotFound, id)
	}
	if f.store != nil {
		if err := f.store.Remove(ctx, id); err != nil {
			return err
		}
	}
	f.items = slices.Delete(f.items, i, i+1)
	return nil
}

// Clear removes every favourite.
func (f *Favourites) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.store != nil {
		if err := f.store.Clear(ctx); err != nil {
			return err
		}
	}
	f.items = nil
	return nil
}

// Contains reports whether id is a favourite.
func (f *Favourites) Contains(id int64) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.index(id) >= 0
}

// List returns a copy of the favourites in insertion order.
func (f *Favourites) List() []models.Album {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return slices.Clone(f.items)
}

func (f *Favourites) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.items)
}

func (f *Favourites) index(id int64) int {
	return slices.IndexFunc(f.items, func(a models.Album) bool { return a.ID == id })
}
