// Package utils provides common utility functions for the tunebridge application.
// It includes helper functions for tolerant type conversion of decoded JSON
// scalars and other shared logic that doesn't fit into domain-specific packages.
package utils
