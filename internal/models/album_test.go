package models

import (
	"encoding/json"
	"testing"
)

func TestCatalogItemAlbum(t *testing.T) {
	tc := []struct {
		name string
		item CatalogItem
		want Album
	}{
		{
			name: "search result splits combined title",
			item: CatalogItem{ID: 1, Title: "Feist - Multitudes", CoverImage: "cover.jpg", Thumb: "thumb.jpg"},
			want: Album{ID: 1, Title: "Multitudes", Artist: "Feist", Image: "cover.jpg"},
		},
		{
			name: "discography release keeps separate fields",
			item: CatalogItem{ID: 2, Title: "Funeral", Artist: "Arcade Fire", Thumb: "thumb.jpg", CoverImage: "cover.jpg"},
			want: Album{ID: 2, Title: "Funeral", Artist: "Arcade Fire", Image: "thumb.jpg"},
		},
		{
			name: "title containing the separator keeps its tail",
			item: CatalogItem{ID: 3, Title: "Broken Social Scene - You Forgot It In People - Remastered"},
			want: Album{ID: 3, Title: "You Forgot It In People - Remastered", Artist: "Broken Social Scene"},
		},
		{
			name: "title without separator",
			item: CatalogItem{ID: 4, Title: "Untitled"},
			want: Album{ID: 4, Title: "Untitled"},
		},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.item.Album()
			if got != tt.want {
				t.Errorf("Album() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestDecodeResponses(t *testing.T) {
	t.Run("SearchResponse", func(t *testing.T) {
		payload := `{"pagination":{"page":1,"pages":3,"per_page":50,"items":120},
			"results":[{"id":10,"title":"Drake - Views","cover_image":"c.jpg","year":"2016","genre":["Hip Hop"]}]}`

		var resp SearchResponse
		if err := json.Unmarshal([]byte(payload), &resp); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		albums := Albums(resp.Results)
		if len(albums) != 1 || albums[0].Artist != "Drake" || albums[0].Title != "Views" {
			t.Errorf("unexpected albums %+v", albums)
		}
		if resp.Pagination.Pages != 3 {
			t.Errorf("expected 3 pages, got %d", resp.Pagination.Pages)
		}
	})

	t.Run("ReleasesResponse", func(t *testing.T) {
		payload := `{"releases":[{"id":5,"title":"Blue","artist":"Joni Mitchell","thumb":"t.jpg","year":1971}]}`

		var resp ReleasesResponse
		if err := json.Unmarshal([]byte(payload), &resp); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		albums := Albums(resp.Releases)
		if len(albums) != 1 || albums[0].Image != "t.jpg" {
			t.Errorf("unexpected albums %+v", albums)
		}
	})
}

func TestAlbumString(t *testing.T) {
	a := Album{Title: "Harvest", Artist: "Neil Young"}
	if a.String() != `"Harvest" by Neil Young` {
		t.Errorf("unexpected string %s", a.String())
	}
	if (Album{Title: "Harvest"}).String() != `"Harvest"` {
		t.Errorf("unexpected string without artist")
	}
}
