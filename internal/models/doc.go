// Package models defines the album shapes exchanged between the catalog, the gateway and its clients.
//
// The catalog returns two result shapes:
//   - search results carry a combined "Artist - Title" string in title and a cover_image URL
//   - discography releases carry separate artist and title fields and a thumb URL
//
// [CatalogItem] decodes either shape and [CatalogItem.Album] normalises it into an [Album].
package models
