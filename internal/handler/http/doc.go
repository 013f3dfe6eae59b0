// Package http implements the HTTP transport layer of the profile service.
// It provides the chi router, route handlers, credential extraction, and
// the error-to-status translation applied before responses leave the server.
// Logging and trace-id propagation are handled here as middleware; all
// domain decisions stay in the service layer.
package http
