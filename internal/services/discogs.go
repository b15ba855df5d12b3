// Discogs catalog implementation of [Catalog]
//
// Endpoints per https://www.discogs.com/developers/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultDiscogsBaseURL = "https://api.discogs.com"
	defaultMaxBodyBytes   = 8 << 20
)

// SearchDefaults are the search parameters callers cannot override, plus the fallback year.
type SearchDefaults struct {
	Year    string
	Country string
	Format  string
	Type    string
	PerPage int
}

// DiscogsOpts configures a [DiscogsService].
type DiscogsOpts struct {
	BaseURL    string
	Signer     *Signer
	HTTPClient *http.Client
	Limiter    *rate.Limiter
	Search     SearchDefaults
	// MaxBodyBytes caps how much of an upstream body is read. Defaults to 8 MiB.
	MaxBodyBytes int64
}

// DiscogsService implements [Catalog] against the Discogs REST API.
type DiscogsService struct {
	baseURL    string
	signer     *Signer
	httpClient *http.Client
	limiter    *rate.Limiter
	search     SearchDefaults
	maxBody    int64
}

var _ Catalog = (*DiscogsService)(nil)

// NewDiscogsService creates a catalog client, filling unset options with defaults.
func NewDiscogsService(opts DiscogsOpts) *DiscogsService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultDiscogsBaseURL
	}
	if opts.Signer == nil {
		opts.Signer = NewSigner(Credentials{}, "")
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}
	if opts.Limiter == nil {
		opts.Limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if opts.Search.Year == "" {
		opts.Search.Year = "2024"
	}
	if opts.Search.Country == "" {
		opts.Search.Country = "Canada"
	}
	if opts.Search.Format == "" {
		opts.Search.Format = "album"
	}
	if opts.Search.Type == "" {
		opts.Search.Type = "release"
	}
	if opts.Search.PerPage <= 0 {
		opts.Search.PerPage = 50
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = defaultMaxBodyBytes
	}

	return &DiscogsService{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		signer:     opts.Signer,
		httpClient: opts.HTTPClient,
		limiter:    opts.Limiter,
		search:     opts.Search,
		maxBody:    opts.MaxBodyBytes,
	}
}

// NewDiscogsServiceFromConfig wires a [DiscogsService] from application config.
func NewDiscogsServiceFromConfig(cfg *shared.Config) *DiscogsService {
	d := cfg.Credentials.Discogs
	signer := NewSigner(Credentials{
		ConsumerKey:      d.ConsumerKey,
		ConsumerSecret:   d.ConsumerSecret,
		OAuthToken:       d.OAuthToken,
		OAuthTokenSecret: d.OAuthTokenSecret,
	}, cfg.Catalog.UserAgent)

	limit := rate.Inf
	if cfg.Catalog.RateLimit > 0 {
		limit = rate.Limit(cfg.Catalog.RateLimit)
	}
	burst := cfg.Catalog.Burst
	if burst <= 0 {
		burst = 1
	}

	return NewDiscogsService(DiscogsOpts{
		BaseURL:    cfg.Catalog.BaseURL,
		Signer:     signer,
		HTTPClient: &http.Client{Timeout: cfg.Catalog.Timeout.Duration},
		Limiter:    rate.NewLimiter(limit, burst),
		Search: SearchDefaults{
			Year:    cfg.Search.DefaultYear,
			Country: cfg.Search.Country,
			Format:  cfg.Search.Format,
			Type:    cfg.Search.Type,
			PerPage: cfg.Search.PerPage,
		},
	})
}

// Search runs /database/search. Year and page fall back to the defaults; genres are joined with ", ".
func (d *DiscogsService) Search(ctx context.Context, q SearchQuery) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("format", d.search.Format)
	params.Set("country", d.search.Country)
	params.Set("type", d.search.Type)
	params.Set("per_page", strconv.Itoa(d.search.PerPage))

	year := q.Year
	if year == "" {
		year = d.search.Year
	}
	params.Set("year", year)

	if len(q.Genres) > 0 {
		params.Set("genre", strings.Join(q.Genres, ", "))
	}

	page := q.Page
	if page < 1 {
		page = 1
	}
	params.Set("page", strconv.Itoa(page))

	return d.get(ctx, "/database/search", params)
}

// Release retrieves /releases/{id}.
func (d *DiscogsService) Release(ctx context.Context, id string) (json.RawMessage, error) {
	return d.get(ctx, "/releases/"+url.PathEscape(id), nil)
}

// Artist retrieves /artists/{id}.
func (d *DiscogsService) Artist(ctx context.Context, id string) (json.RawMessage, error) {
	return d.get(ctx, "/artists/"+url.PathEscape(id), nil)
}

// ArtistReleases retrieves /artists/{id}/releases, sorted upstream when q is set.
func (d *DiscogsService) ArtistReleases(ctx context.Context, id string, q ReleasesQuery) (json.RawMessage, error) {
	var params url.Values
	if q.Sort != "" {
		params = url.Values{}
		params.Set("sort", q.Sort)
		if q.SortOrder != "" {
			params.Set("sort_order", q.SortOrder)
		}
	}
	return d.get(ctx, "/artists/"+url.PathEscape(id)+"/releases", params)
}

// ReleaseArtistID fetches a release and returns the ID of its first credited artist.
func (d *DiscogsService) ReleaseArtistID(ctx context.Context, releaseID string) (int64, error) {
	body, err := d.Release(ctx, releaseID)
	if err != nil {
		return 0, err
	}

	var release models.Release
	if err := json.Unmarshal(body, &release); err != nil {
		return 0, fmt.Errorf("%w: failed to decode release %s: %v", shared.ErrAPIRequest, releaseID, err)
	}

	if len(release.Artists) == 0 {
		return 0, fmt.Errorf("%w: release %s", shared.ErrNoArtists, releaseID)
	}

	return release.Artists[0].ID, nil
}

// AlbumsForRelease resolves the release's artist, then fetches that artist's releases.
//
// The calls are sequential since the second depends on the first.
func (d *DiscogsService) AlbumsForRelease(ctx context.Context, releaseID string) (json.RawMessage, error) {
	artistID, err := d.ReleaseArtistID(ctx, releaseID)
	if err != nil {
		return nil, err
	}

	return d.ArtistReleases(ctx, strconv.FormatInt(artistID, 10), ReleasesQuery{})
}

// get performs a signed, throttled GET and returns the body when it is a 2xx JSON document.
func (d *DiscogsService) get(ctx context.Context, endpoint string, params url.Values) (json.RawMessage, error) {
	apiURL := d.baseURL + endpoint
	if len(params) > 0 {
		apiURL += "?" + params.Encode()
	}

	if err := d.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", shared.ErrAPIRequest, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", shared.ErrAPIRequest, err)
	}
	d.signer.Sign(req)

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, d.maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrAPIRequest, err)
	}
	if int64(len(body)) > d.maxBody {
		return nil, fmt.Errorf("%w: discogs response exceeds %d bytes", shared.ErrAPIRequest, d.maxBody)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
			return nil, fmt.Errorf("%w: discogs status %d: %s", shared.ErrAPIRequest, resp.StatusCode, errResp.Message)
		}
		return nil, fmt.Errorf("%w: discogs status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: discogs returned malformed JSON", shared.ErrAPIRequest)
	}

	return json.RawMessage(body), nil
}
