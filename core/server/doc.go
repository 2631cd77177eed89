// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application from this configuration:
// listening port, body size limit for large sync payloads, read timeout and
// the API key shared with the upstream ERP sender.
package server
