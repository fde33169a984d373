// Package library implements the local music library feature.
//
// The organized collection lives in the object-storage bucket under
// Artist/Album/Track paths. Scanning walks the bucket listing once, derives
// the artist and album index from the object layout, and persists it through
// the relational database so repeat lookups never re-list the bucket.
//
// # HTTP Endpoints
//
//   - GET /api/library/scan?force=  : Rebuild the index from the bucket.
//   - GET /api/library/artists      : All indexed artists.
//   - GET /api/library/artist/:name : One artist with albums, 404 when absent.
//   - GET /api/library/cover?path=  : Stream a cover object from the bucket.
//
// The feature is optional: without a database connection it stays unloaded
// and the catalog endpoints keep working.
package library
