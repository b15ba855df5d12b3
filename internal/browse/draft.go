package browse

import (
	"slices"
	"strconv"
)

// Genres are the genre choices offered by the genre drawer.
var Genres = []string{
	"Pop",
	"Rock",
	"Hip-Hop",
	"Jazz",
	"Classical",
	"Electronic",
	"Reggae",
	"Country",
	"Blues",
	"R&B",
	"Soul",
	"Funk",
	"Metal",
}

const (
	newestYear = 2024
	oldestYear = 1930
)

// Years returns the year choices, newest first.
func Years() []string {
	years := make([]string, 0, newestYear-oldestYear+1)
	for y := newestYear; y >= oldestYear; y-- {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// Draft stages drawer picks for one facet until they are saved.
type Draft struct {
	facet  Facet
	values []string
}

// NewDraft starts a draft on the year drawer holding the default year.
func NewDraft() *Draft {
	return &Draft{facet: FacetYear, values: []string{DefaultYear}}
}

// Pick stages value. Picking in another facet discards the staged values first;
// a year pick replaces the draft and other picks toggle.
func (d *Draft) Pick(facet Facet, value string) {
	if d.facet != facet {
		d.facet = facet
		d.values = nil
	}

	if facet == FacetYear {
		d.values = []string{value}
		return
	}

	if i := slices.Index(d.values, value); i >= 0 {
		d.values = slices.Delete(d.values, i, i+1)
		return
	}
	d.values = append(d.values, value)
}

// Selected reports whether value is staged for facet.
func (d *Draft) Selected(facet Facet, value string) bool {
	return d.facet == facet && slices.Contains(d.values, value)
}

func (d *Draft) Facet() Facet { return d.facet }

// Values returns a copy of the staged values.
func (d *Draft) Values() []string { return slices.Clone(d.values) }

// Save commits the staged values to s.
func (d *Draft) Save(s *Session) (Request, error) {
	return s.UpdateFilter(d.facet, d.values...)
}
