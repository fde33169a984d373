// Package catalog implements the streaming-catalog feature: search and
// browse endpoints backed by the upstream catalog API.
//
// The upstream API is not stable: the same logical entity arrives in at
// least four structurally different shapes depending on endpoint version,
// JSON:API sideloading, or legacy flat encoding. This feature's job is to
// reconcile whatever shape arrives into canonical Track, Album, Artist, and
// Playlist records without losing data and without failing on any variant.
//
// # Components
//
//   - Client: the HTTP boundary to the upstream catalog. Absent payloads
//     mean "no results", never an error.
//   - Service: per-request reconciliation over core/payload extraction and
//     the reconcile field mappers. Pure over already-fetched payloads.
//   - Handler: exposes the HTTP surface. Only a total failure (every
//     fallback source raised) maps to a server error; an empty result is a
//     normal success.
//
// # HTTP Endpoints
//
//   - GET /api/search/tracks?q=     : Search tracks.
//   - GET /api/search/albums?q=     : Search albums.
//   - GET /api/search/artists?q=    : Search artists.
//   - GET /api/search/playlists?q=  : Search playlists.
//   - GET /api/album/:id/tracks     : Album track listing.
//   - GET /api/playlist/:id         : Playlist identity plus tracks.
//   - GET /api/artist/:id           : {artist, tracks, albums} aggregate.
package catalog
