// Package services implements the HTTP clients on either side of the gateway.
//
// # Discogs Catalog
//
// [DiscogsService] is the upstream client used by the gateway. It signs every request with a
// fresh OAuth 1.0a PLAINTEXT header built by [Signer], throttles calls with a shared
// [rate.Limiter] and returns response bodies unmodified as [json.RawMessage].
//
// Every failure (transport error, non-2xx status, body that is not JSON) is reported as an error
// wrapping [shared.ErrAPIRequest]. A release with no artists yields [shared.ErrNoArtists].
//
// # Gateway Client
//
// [APIService] talks to a running gateway. It exposes raw GETs for the `soc api` commands and
// typed album lookups that normalise both catalog result shapes into [models.Album].
package services
