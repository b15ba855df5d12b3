package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/sounds-of-canada/internal/services"
	"github.com/desertthunder/sounds-of-canada/internal/shared"
)

// Gateway proxies catalog requests for browser and terminal clients.
type Gateway struct {
	catalog services.Catalog
	logger  *log.Logger
}

// NewGateway creates a [Gateway] over catalog.
func NewGateway(catalog services.Catalog, logger *log.Logger) *Gateway {
	return &Gateway{catalog: catalog, logger: logger}
}

// Register mounts every gateway route on r.
func (g *Gateway) Register(r Router) {
	r.Handler(HealthHandler{})
	r.Handle(http.MethodGet, "/albums", http.HandlerFunc(g.albums))
	r.Handle(http.MethodGet, "/releases/{id}", http.HandlerFunc(g.release))
	r.Handle(http.MethodGet, "/artists/{id}", http.HandlerFunc(g.artist))
	r.Handle(http.MethodGet, "/artists/{id}/releases", http.HandlerFunc(g.artistReleases))
	r.Handle(http.MethodGet, "/{id}/artists/albums", http.HandlerFunc(g.albumsForRelease))
}

// NewHandler builds the full gateway handler: middleware, routes and CORS around the router.
//
// Only preflights for a routed method and path are answered by CORS.
func NewHandler(g *Gateway, origin string) http.Handler {
	router := NewBasicRouter()
	router.Use(Stack(g.logger)...)
	g.Register(router)

	withCORS := CORS(origin)(router)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// preflights for unrouted paths get the router's 404 or 405
		if IsPreflight(r) && !router.Matches(r.Header.Get("Access-Control-Request-Method"), r) {
			router.ServeHTTP(w, r)
			return
		}
		withCORS.ServeHTTP(w, r)
	})
}

func (g *Gateway) albums(w http.ResponseWriter, r *http.Request) {
	body, err := g.catalog.Search(r.Context(), ParseSearchQuery(r))
	g.relay(w, r, body, err, "Failed to fetch albums")
}

func (g *Gateway) release(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	body, err := g.catalog.Release(r.Context(), id)
	g.relay(w, r, body, err, "Failed to fetch releases "+id, "id", id)
}

func (g *Gateway) artist(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	body, err := g.catalog.Artist(r.Context(), id)
	g.relay(w, r, body, err, "Failed to fetch artist "+id, "id", id)
}

func (g *Gateway) artistReleases(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	body, err := g.catalog.ArtistReleases(r.Context(), id, services.ByYearDesc)
	g.relay(w, r, body, err, "Failed to fetch artist "+id, "id", id)
}

func (g *Gateway) albumsForRelease(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	body, err := g.catalog.AlbumsForRelease(r.Context(), id)
	g.relay(w, r, body, err, "Failed to fetch albums for release "+id, "id", id)
}

// relay writes exactly one response: the upstream body on success, the fixed failure message otherwise.
func (g *Gateway) relay(w http.ResponseWriter, r *http.Request, body json.RawMessage, err error, failure string, kv ...any) {
	if err != nil {
		logger := shared.WithLogger(g.logger, "route", r.Pattern, "request_id", RequestIDFrom(r.Context()))
		logger.Error(failure, append([]any{"err", err}, kv...)...)
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: failure})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, werr := w.Write(body); werr != nil && !isCanceled(r.Context()) {
		shared.WithLogger(g.logger, "route", r.Pattern).Warn("failed to write response", "err", werr)
	}
}

// ErrorResponse is the body of every gateway failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ParseSearchQuery reads year, genre (repeated or genre[]) and page from the query string.
//
// A missing or unparsable page is left at zero so the catalog applies page 1.
func ParseSearchQuery(r *http.Request) services.SearchQuery {
	q := r.URL.Query()

	var genres []string
	for _, key := range []string{"genre", "genre[]"} {
		for _, v := range q[key] {
			if v = strings.TrimSpace(v); v != "" {
				genres = append(genres, v)
			}
		}
	}

	page, _ := strconv.Atoi(q.Get("page"))

	return services.SearchQuery{
		Year:   strings.TrimSpace(q.Get("year")),
		Genres: genres,
		Page:   page,
	}
}

// HealthHandler answers GET /health.
type HealthHandler struct{}

func (HealthHandler) Routes() []string { return []string{"GET /health"} }

func (HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func isCanceled(ctx context.Context) bool {
	return ctx.Err() != nil
}
