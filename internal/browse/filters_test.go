package browse

import (
	"errors"
	"slices"
	"testing"

	"github.com/desertthunder/sounds-of-canada/internal/shared"
)

func TestFilters(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		f := DefaultFilters()
		if !slices.Equal(f.Year, []string{"2024"}) || len(f.Genre) != 0 || len(f.Artist) != 0 {
			t.Errorf("unexpected defaults %+v", f)
		}
	})

	t.Run("SelectArtist Replaces Everything", func(t *testing.T) {
		f := Filters{Year: []string{"2001"}, Genre: []string{"Rock"}, Style: []string{"Punk"}}
		got := f.SelectArtist(ArtistRef{ReleaseID: 9, Name: "Feist"})

		if len(got.Year) != 0 || len(got.Genre) != 0 || len(got.Style) != 0 {
			t.Errorf("expected other facets cleared, got %+v", got)
		}
		if len(got.Artist) != 1 || got.Artist[0].Name != "Feist" {
			t.Errorf("expected artist selected, got %+v", got.Artist)
		}
		if len(f.Year) != 1 {
			t.Error("expected receiver to be unchanged")
		}
	})

	t.Run("Update", func(t *testing.T) {
		t.Run("Year Is Last Write Wins", func(t *testing.T) {
			got, err := Filters{}.Update(FacetYear, "2001", "2010")
			if err != nil {
				t.Fatalf("unexpected error %v", err)
			}
			if !slices.Equal(got.Year, []string{"2010"}) {
				t.Errorf("expected [2010], got %v", got.Year)
			}
		})

		t.Run("Year Clears Artist And Keeps Genre", func(t *testing.T) {
			f := Filters{Genre: []string{"Jazz"}, Artist: []ArtistRef{{ReleaseID: 1}}}
			got, _ := f.Update(FacetYear, "1999")

			if len(got.Artist) != 0 {
				t.Error("expected artist cleared")
			}
			if !slices.Equal(got.Genre, []string{"Jazz"}) {
				t.Errorf("expected genre kept, got %v", got.Genre)
			}
		})

		t.Run("Empty Year Update Is A No-op", func(t *testing.T) {
			f := Filters{Year: []string{"2003"}, Artist: []ArtistRef{{ReleaseID: 1}}}
			got, _ := f.Update(FacetYear)

			if !slices.Equal(got.Year, []string{"2003"}) || len(got.Artist) != 1 {
				t.Errorf("expected no change, got %+v", got)
			}
		})

		t.Run("Genre Is Ordered Union", func(t *testing.T) {
			f := Filters{Genre: []string{"Rock"}, Artist: []ArtistRef{{ReleaseID: 1}}}
			got, _ := f.Update(FacetGenre, "Rock", "Jazz")

			if !slices.Equal(got.Genre, []string{"Rock", "Jazz"}) {
				t.Errorf("expected [Rock Jazz], got %v", got.Genre)
			}
			if len(got.Artist) != 0 {
				t.Error("expected artist cleared")
			}
		})

		t.Run("Style Is Ordered Union", func(t *testing.T) {
			got, _ := Filters{Style: []string{"Punk"}}.Update(FacetStyle, "Grunge", "Punk")
			if !slices.Equal(got.Style, []string{"Punk", "Grunge"}) {
				t.Errorf("unexpected style %v", got.Style)
			}
		})

		t.Run("Artist And Unknown Facets Rejected", func(t *testing.T) {
			for _, facet := range []Facet{FacetArtist, "mood"} {
				if _, err := (Filters{}).Update(facet, "x"); !errors.Is(err, shared.ErrUnknownFacet) {
					t.Errorf("%s: expected ErrUnknownFacet, got %v", facet, err)
				}
			}
		})
	})

	t.Run("Clear", func(t *testing.T) {
		t.Run("Removes Values", func(t *testing.T) {
			f := Filters{Genre: []string{"Rock", "Jazz", "Soul"}}
			got, _ := f.Clear(FacetGenre, "Jazz")

			if !slices.Equal(got.Genre, []string{"Rock", "Soul"}) {
				t.Errorf("unexpected genre %v", got.Genre)
			}
			if !slices.Equal(f.Genre, []string{"Rock", "Jazz", "Soul"}) {
				t.Error("expected receiver to be unchanged")
			}
		})

		t.Run("Empties Facet", func(t *testing.T) {
			got, _ := Filters{Year: []string{"2024"}}.Clear(FacetYear)
			if len(got.Year) != 0 {
				t.Errorf("expected empty year, got %v", got.Year)
			}
		})

		t.Run("Idempotent", func(t *testing.T) {
			f := Filters{Genre: []string{"Rock", "Jazz"}, Year: []string{"2020"}}
			once, _ := f.Clear(FacetGenre, "Rock")
			twice, _ := once.Clear(FacetGenre, "Rock")

			if !slices.Equal(once.Genre, twice.Genre) || !slices.Equal(once.Year, twice.Year) {
				t.Errorf("expected idempotent clear, got %v then %v", once, twice)
			}
		})

		t.Run("Artist By Release ID", func(t *testing.T) {
			f := Filters{Artist: []ArtistRef{{ReleaseID: 12, Name: "Drake"}}}
			got, _ := f.Clear(FacetArtist, "12")

			if len(got.Artist) != 0 {
				t.Errorf("expected artist removed, got %v", got.Artist)
			}
		})

		t.Run("Unknown Facet", func(t *testing.T) {
			if _, err := (Filters{}).Clear("mood"); !errors.Is(err, shared.ErrUnknownFacet) {
				t.Errorf("expected ErrUnknownFacet, got %v", err)
			}
		})
	})

	t.Run("ParseFacet", func(t *testing.T) {
		if f, err := ParseFacet("genre"); err != nil || f != FacetGenre {
			t.Errorf("expected genre, got %q %v", f, err)
		}
		if _, err := ParseFacet("decade"); !errors.Is(err, shared.ErrUnknownFacet) {
			t.Errorf("expected ErrUnknownFacet, got %v", err)
		}
	})

	t.Run("Chips", func(t *testing.T) {
		f := Filters{Year: []string{"2020"}, Genre: []string{"Rock"}, Artist: []ArtistRef{{ReleaseID: 3, Name: "Rush"}}}
		chips := f.Chips()

		if len(chips) != 3 {
			t.Fatalf("expected 3 chips, got %d", len(chips))
		}
		if chips[0].Facet != FacetArtist || chips[0].Value != "3" || chips[0].Label != "Rush" {
			t.Errorf("unexpected artist chip %+v", chips[0])
		}
		if (Filters{}).IsEmpty() != true || f.IsEmpty() {
			t.Error("unexpected IsEmpty result")
		}
	})
}
