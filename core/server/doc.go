// Package server holds the HTTP server configuration: listen port and the
// Basic Auth credentials protecting the API surface.
package server
