// Package server provides HTTP routing, middleware, and the catalog proxy gateway.
//
// # Router Infrastructure
//
// The [Router] interface defines HTTP routing with middleware support.
//
// [Middleware] wraps handlers in reverse order (last added executes first), following the standard Go pattern.
//
// The [BasicRouter] implementation uses [http.ServeMux] internally and registers method-qualified patterns,
// so path parameters are read with [http.Request.PathValue].
//
// # Gateway
//
// [Gateway] forwards browser requests to a [services.Catalog] and relays the upstream body unchanged.
// Every route finishes through a single finaliser: either the raw upstream JSON with status 200,
// or a fixed `{"error": "..."}` body with status 500. Upstream errors are logged, never returned.
//
// Routes:
//   - GET /albums?year=&genre=&page=
//   - GET /releases/{id}
//   - GET /artists/{id}
//   - GET /artists/{id}/releases
//   - GET /{id}/artists/albums
//   - GET /health
//
// # Middleware
//
// [RequestID], [RequestLogger] and [CORS] are provided here; real-IP resolution and panic recovery come from
// chi's middleware package.
//
// # Handler Interface
//
// Custom handlers implement the [Handler] interface, which wraps the stdlib handler interface and adds routes,
// allowing handlers to register multiple routes to encapsulate route definitions within the implementation.
package server
