// Package browse holds the client-side state of the album browser, independent of any renderer.
//
// # Filters
//
// [Filters] has four facets. Selecting an artist replaces everything else; updating the year keeps
// only the newest value and clears the artist; genre and style updates are set unions that also clear the artist.
// Removal goes through [Filters.Clear].
//
// # Session
//
// [Session] owns the filters, the album list and the loading/error flags. Every transition returns exactly
// one [Request] stamped with a generation number; [Session.Complete] applies a [Result] only when
// its generation is the latest, so a slow response can never overwrite a newer one.
//
// # Favourites
//
// [Favourites] is an ordered list unique by album id. It lives in memory and may be mirrored to a
// [FavouriteStore].
//
// # Drafts
//
// [Draft] stages picks made inside a filter drawer until they are saved.
package browse
