// Package server holds the HTTP server configuration.
//
// While the start command handles the server startup, this package defines the settings it
// reads: the listen port, the API key checked by the auth middleware, and the request body
// limit applied to submitted restaurant trees.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings
// and by the start command to configure Fiber.
package server
