package models

import (
	"fmt"
	"strings"
)

// titleSeparator joins artist and title in search result titles.
const titleSeparator = " - "

// Album is the normalised album summary rendered by clients and kept as a favourite.
type Album struct {
	ID     int64  `json:"id" yaml:"id"`
	Title  string `json:"title" yaml:"title"`
	Artist string `json:"artist" yaml:"artist"`
	Image  string `json:"image,omitempty" yaml:"image,omitempty"`
}

func (a Album) String() string {
	if a.Artist == "" {
		return fmt.Sprintf("%q", a.Title)
	}
	return fmt.Sprintf("%q by %s", a.Title, a.Artist)
}

// CatalogItem is one row of a catalog search or artist-releases response.
type CatalogItem struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Artist     string `json:"artist,omitempty"`
	Thumb      string `json:"thumb,omitempty"`
	CoverImage string `json:"cover_image,omitempty"`
}

// Album normalises the item. Discography rows have an artist field; search rows are split on the first " - ".
func (c CatalogItem) Album() Album {
	if c.Artist != "" {
		return Album{ID: c.ID, Title: c.Title, Artist: c.Artist, Image: c.Thumb}
	}

	artist, title := SplitTitle(c.Title)
	return Album{ID: c.ID, Title: title, Artist: artist, Image: c.CoverImage}
}

// SplitTitle splits a combined "Artist - Title" string at the first separator.
//
// A string without a separator is treated as a bare title.
func SplitTitle(combined string) (artist, title string) {
	artist, title, ok := strings.Cut(combined, titleSeparator)
	if !ok {
		return "", strings.TrimSpace(combined)
	}
	return strings.TrimSpace(artist), strings.TrimSpace(title)
}

// SearchResponse is the subset of a catalog search payload clients read.
type SearchResponse struct {
	Pagination Pagination    `json:"pagination"`
	Results    []CatalogItem `json:"results"`
}

// ReleasesResponse is the subset of an artist-releases payload clients read.
type ReleasesResponse struct {
	Pagination Pagination    `json:"pagination"`
	Releases   []CatalogItem `json:"releases"`
}

// Pagination mirrors the catalog's pagination block.
type Pagination struct {
	Page    int `json:"page"`
	Pages   int `json:"pages"`
	PerPage int `json:"per_page"`
	Items   int `json:"items"`
}

// Release is the subset of a release payload the gateway needs to resolve its artist.
type Release struct {
	ID      int64        `json:"id"`
	Title   string       `json:"title"`
	Artists []ArtistLink `json:"artists"`
}

// ArtistLink is an artist reference embedded in a release.
type ArtistLink struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Albums normalises every item in order.
func Albums(items []CatalogItem) []Album {
	albums := make([]Album, len(items))
	for i, item := range items {
		albums[i] = item.Album()
	}
	return albums
}
