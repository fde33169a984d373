package catalog

// Config holds configuration for the upstream catalog API client.
type Config struct {
	// BaseURL is the catalog API root, without a trailing slash.
	BaseURL string `mapstructure:"base_url" default:"https://api.tidal.com/v1"`
	// Token is the API token sent with every request.
	Token string `mapstructure:"token" default:""`
	// CountryCode scopes catalog results to a storefront.
	CountryCode string `mapstructure:"country_code" default:"US"`
	// Limit is the page size requested from search endpoints.
	Limit int `mapstructure:"limit" default:"50"`
	// TimeoutSeconds is the per-request timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
