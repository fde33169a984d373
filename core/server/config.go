package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// AuthUsername is the HTTP Basic Auth username protecting the API.
	AuthUsername string `mapstructure:"auth_username" default:""`
	// AuthPassword is the HTTP Basic Auth password protecting the API.
	AuthPassword string `mapstructure:"auth_password" default:""`
}

// AuthConfigured reports whether both Basic Auth credentials are set. The
// API is served unprotected when they are not.
func (c Config) AuthConfigured() bool {
	return c.AuthUsername != "" && c.AuthPassword != ""
}
