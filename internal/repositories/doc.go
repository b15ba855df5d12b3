// Package repositories implements SQLite persistence for favourites.
//
// [FavouriteRepository] stores the favourites list so it survives between terminal sessions. It satisfies
// browse.FavouriteStore.
//
// Positions come from a per-table sequence so insertion order is stable even after removals.
// The [NextSequence] function atomically increments the counter in the table's dedicated sequence table.
package repositories
