// Package logger provides structured logging for the tunebridge application,
// built on zap. It supports json output for production and a colored console
// encoding for local development, plus a helper that binds the per-request
// ray id into request-scoped loggers.
package logger
