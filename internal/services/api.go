// API service for making requests to a running gateway
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

	"github.com/desertthunder/sounds-of-canada/internal/models"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
)

const defaultAPIBaseURL = "http://localhost:3001"

// APIService provides raw and typed GET requests against the gateway.
type APIService struct {
	baseURL    string
	httpClient *http.Client
}

var _ AlbumFetcher = (*APIService)(nil)

// NewAPIService creates a new gateway client.
func NewAPIService(baseURL string, client *http.Client) *APIService {
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &APIService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: client,
	}
}

// APIResponse represents a raw API response with status and body.
type APIResponse struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	IsJSON     bool
	JSONData   any
}

// OK reports whether the status is 2xx.
func (r *APIResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// ErrorMessage returns the gateway's {"error": ...} message, if any.
func (r *APIResponse) ErrorMessage() string {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(r.Body, &body); err != nil {
		return ""
	}
	return body.Error
}

// Get performs a GET request to the specified path and returns the raw response.
func (a *APIService) Get(ctx context.Context, path string) (*APIResponse, error) {
	fullURL := a.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	apiResp := &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Header,
		Body:       body,
	}

	var jsonData any
	if err := json.Unmarshal(body, &jsonData); err == nil {
		apiResp.IsJSON = true
		apiResp.JSONData = jsonData
	}

	return apiResp, nil
}

// Health calls /health and reports an error unless the gateway answers 2xx.
func (a *APIService) Health(ctx context.Context) error {
	resp, err := a.Get(ctx, "/health")
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	if !resp.OK() {
		return fmt.Errorf("%w: status %d", shared.ErrServiceUnavailable, resp.StatusCode)
	}
	return nil
}

// Albums searches the gateway's /albums route and normalises the results.
//
// Empty year and genres are omitted so the gateway applies its defaults.
func (a *APIService) Albums(ctx context.Context, year string, genres []string, page int) ([]models.Album, error) {
	params := url.Values{}
	if year != "" {
		params.Set("year", year)
	}
	for _, g := range genres {
		params.Add("genre", g)
	}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}

	path := "/albums"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp models.SearchResponse
	if err := a.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	return models.Albums(resp.Results), nil
}

// ArtistAlbums calls the composite /{id}/artists/albums route and normalises the releases.
func (a *APIService) ArtistAlbums(ctx context.Context, releaseID int64) ([]models.Album, error) {
	path := "/" + strconv.FormatInt(releaseID, 10) + "/artists/albums"

	var resp models.ReleasesResponse
	if err := a.getJSON(ctx, path, &resp); err != nil {
		return nil, err
	}

	return models.Albums(resp.Releases), nil
}

// getJSON decodes a 2xx body into out, surfacing the gateway's error message otherwise.
func (a *APIService) getJSON(ctx context.Context, path string, out any) error {
	resp, err := a.Get(ctx, path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}

	if !resp.OK() {
		if msg := resp.ErrorMessage(); msg != "" {
			return fmt.Errorf("%w: status %d: %s", shared.ErrAPIRequest, resp.StatusCode, msg)
		}
		return fmt.Errorf("%w: status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	return nil
}
