package browse

import (
	"context"
	"slices"
	"sync"

	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/services"
)

// QueryKind selects which gateway endpoint a [Query] uses.
type QueryKind int

const (
	// QuerySearch searches by year and genres.
	QuerySearch QueryKind = iota
	// QueryArtist lists the releases of the artist credited on ReleaseID.
	QueryArtist
)

func (k QueryKind) String() string {
	if k == QueryArtist {
		return "artist"
	}
	return "search"
}

// Query is the fetch implied by a [Filters] value.
type Query struct {
	Kind      QueryKind
	Year      string
	Genres    []string
	Page      int
	ReleaseID int64
}

// QueryFor picks the artist path when an artist is selected, ignoring year and genre; otherwise
// it searches with the genres, the first year and page 1.
func QueryFor(f Filters) Query {
	if len(f.Artist) > 0 {
		return Query{Kind: QueryArtist, ReleaseID: f.Artist[0].ReleaseID}
	}

	q := Query{Kind: QuerySearch, Genres: slices.Clone(f.Genre), Page: 1}
	if len(f.Year) > 0 {
		q.Year = f.Year[0]
	}
	return q
}

// Request is a fetch the caller must run and report back through [Session.Complete].
type Request struct {
	Generation uint64
	Query      Query
}

// Result is the outcome of running a [Request].
type Result struct {
	Generation uint64
	Albums     []models.Album
	Err        error
}

// Fetch runs req against fetcher. Exactly one fetcher call is made.
func Fetch(ctx context.Context, fetcher services.AlbumFetcher, req Request) Result {
	var (
		albums []models.Album
		err    error
	)

	switch req.Query.Kind {
	case QueryArtist:
		albums, err = fetcher.ArtistAlbums(ctx, req.Query.ReleaseID)
	default:
		albums, err = fetcher.Albums(ctx, req.Query.Year, req.Query.Genres, req.Query.Page)
	}
	return Result{Generation: req.Generation, Albums: albums, Err: err}
}

// State is a snapshot of a [Session].
type State struct {
	Filters    Filters
	Albums     []models.Album
	Loading    bool
	Err        error
	Generation uint64
}

// Session is the filter and results state machine.
//
// Loading, error and populated results are mutually exclusive.
type Session struct {
	mu         sync.Mutex
	filters    Filters
	albums     []models.Album
	loading    bool
	err        error
	generation uint64
}

// NewSession starts at the default year with a fetch pending; call [Session.Refresh] to obtain it.
func NewSession() *Session {
	return &Session{filters: DefaultFilters(), loading: true}
}

// Refresh issues a request for the current filters.
func (s *Session) Refresh() Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.begin()
}

// UpdateFilter applies [Filters.Update] and issues a request.
func (s *Session) UpdateFilter(facet Facet, values ...string) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.filters.Update(facet, values...)
	if err != nil {
		return Request{}, err
	}
	s.filters = next
	return s.begin(), nil
}

// ClearFilter applies [Filters.Clear] and issues a request.
func (s *Session) ClearFilter(facet Facet, values ...string) (Request, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.filters.Clear(facet, values...)
	if err != nil {
		return Request{}, err
	}
	s.filters = next
	return s.begin(), nil
}

// ClearAll empties every facet and issues a request.
func (s *Session) ClearAll() Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = Filters{}
	return s.begin()
}

// SelectArtist applies [Filters.SelectArtist] and issues a request.
func (s *Session) SelectArtist(refs ...ArtistRef) Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.filters = s.filters.SelectArtist(refs...)
	return s.begin()
}

// Complete applies res if it answers the latest request and reports whether it did.
//
// Generation 0 is never issued, so a zero Result is always discarded.
func (s *Session) Complete(res Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if res.Generation == 0 || res.Generation != s.generation {
		return false
	}

	s.loading = false
	if res.Err != nil {
		s.err = res.Err
		s.albums = nil
		return true
	}
	s.err = nil
	s.albums = res.Albums
	return true
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return State{
		Filters:    s.filters.Clone(),
		Albums:     append([]models.Album(nil), s.albums...),
		Loading:    s.loading,
		Err:        s.err,
		Generation: s.generation,
	}
}

func (s *Session) begin() Request {
	s.generation++
	s.loading = true
	s.err = nil
	s.albums = nil
	return Request{Generation: s.generation, Query: QueryFor(s.filters)}
}
