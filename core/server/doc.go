// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration:
// listen port, API key, body limit and read timeout.
package server
