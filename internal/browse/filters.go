package browse

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/desertthunder/sounds-of-canada/internal/shared"
)

// Facet names one axis of [Filters].
type Facet string

const (
	FacetYear   Facet = "year"
	FacetGenre  Facet = "genre"
	FacetStyle  Facet = "style"
	FacetArtist Facet = "artist"
)

// DefaultYear is the year shown before the user picks one.
const DefaultYear = "2024"

// ParseFacet validates a facet name.
func ParseFacet(s string) (Facet, error) {
	switch f := Facet(s); f {
	case FacetYear, FacetGenre, FacetStyle, FacetArtist:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", shared.ErrUnknownFacet, s)
}

// ArtistRef identifies an artist through the release it was picked from.
type ArtistRef struct {
	ReleaseID int64
	Name      string
}

// Filters is the active filter record.
type Filters struct {
	Year   []string
	Genre  []string
	Style  []string // unused by any query
	Artist []ArtistRef
}

// DefaultFilters returns the filters of a fresh session.
func DefaultFilters() Filters {
	return Filters{Year: []string{DefaultYear}}
}

// SelectArtist returns filters holding only refs.
func (f Filters) SelectArtist(refs ...ArtistRef) Filters {
	return Filters{Artist: slices.Clone(refs)}
}

// Update applies values to a year, genre or style facet.
//
// Year keeps the last value only; an empty year update changes nothing. Genre and style append the values
// not already present. Every applied update clears the artist.
func (f Filters) Update(facet Facet, values ...string) (Filters, error) {
	next := f.Clone()

	switch facet {
	case FacetYear:
		if len(values) == 0 {
			return next, nil
		}
		next.Artist = nil
		next.Year = []string{values[len(values)-1]}
	case FacetGenre:
		next.Artist = nil
		next.Genre = union(next.Genre, values)
	case FacetStyle:
		next.Artist = nil
		next.Style = union(next.Style, values)
	default:
		return f, fmt.Errorf("%w: cannot update %q", shared.ErrUnknownFacet, facet)
	}
	return next, nil
}

// Clear removes values from facet, or empties it when no values are given.
//
// Artist values are matched against the release id in decimal form.
func (f Filters) Clear(facet Facet, values ...string) (Filters, error) {
	next := f.Clone()

	switch facet {
	case FacetYear:
		next.Year = without(next.Year, values)
	case FacetGenre:
		next.Genre = without(next.Genre, values)
	case FacetStyle:
		next.Style = without(next.Style, values)
	case FacetArtist:
		if len(values) == 0 {
			next.Artist = nil
			break
		}
		next.Artist = slices.DeleteFunc(next.Artist, func(a ArtistRef) bool {
			return slices.Contains(values, strconv.FormatInt(a.ReleaseID, 10))
		})
	default:
		return f, fmt.Errorf("%w: cannot clear %q", shared.ErrUnknownFacet, facet)
	}
	return next, nil
}

// IsEmpty reports whether no facet holds a value.
func (f Filters) IsEmpty() bool {
	return len(f.Year) == 0 && len(f.Genre) == 0 && len(f.Style) == 0 && len(f.Artist) == 0
}

// Clone returns a deep copy.
func (f Filters) Clone() Filters {
	return Filters{
		Year:   slices.Clone(f.Year),
		Genre:  slices.Clone(f.Genre),
		Style:  slices.Clone(f.Style),
		Artist: slices.Clone(f.Artist),
	}
}

// Chip is one active filter value, as shown in a header.
type Chip struct {
	Facet Facet
	Value string // value accepted by [Filters.Clear]
	Label string
}

// Chips lists the active values in display order: artist, year, genre, style.
func (f Filters) Chips() []Chip {
	var chips []Chip
	for _, a := range f.Artist {
		chips = append(chips, Chip{Facet: FacetArtist, Value: strconv.FormatInt(a.ReleaseID, 10), Label: a.Name})
	}
	for _, y := range f.Year {
		chips = append(chips, Chip{Facet: FacetYear, Value: y, Label: y})
	}
	for _, g := range f.Genre {
		chips = append(chips, Chip{Facet: FacetGenre, Value: g, Label: g})
	}
	for _, s := range f.Style {
		chips = append(chips, Chip{Facet: FacetStyle, Value: s, Label: s})
	}
	return chips
}

func union(dst, values []string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

func without(src, values []string) []string {
	if len(values) == 0 {
		return nil
	}
	return slices.DeleteFunc(src, func(v string) bool { return slices.Contains(values, v) })
}
