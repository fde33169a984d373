// Package config aggregates the application configuration. Each subsystem
// owns its partial Config struct; this package binds them together, loads a
// local .env file when present, and maps environment variables onto the
// nested keys via viper.
package config
