// Package storage provides the object-storage client used for the organized
// music collection. It wraps the MinIO SDK behind a narrow interface so
// features can be tested against mocks without a live bucket.
package storage
