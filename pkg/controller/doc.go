// Package controller holds the HTTP middlewares shared by every route of the
// API server:
//   - WithCORS answers preflight requests and sets CORS headers for the configured origins.
//   - WithLogger assigns the request ID, scopes the logger to it and writes the access log.
//   - WithMetrics records request counts and latencies per chi route pattern.
package controller
