package library

// Config holds configuration for the library feature.
type Config struct {
	// Prefix is the object-key prefix the organized collection lives under,
	// with a trailing slash when non-empty (e.g. "music/").
	Prefix string `mapstructure:"prefix" default:""`
}
