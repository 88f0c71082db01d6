// Package server exposes the password meter over a small JSON HTTP API.
//
// Routes:
//
//	POST /api/analyze  analyze {"password": "..."}
//	GET  /api/health   liveness probe
//	GET  /api/docs     endpoint description
//	GET  /metrics      Prometheus metrics
//
// Every response carries an X-Request-ID and no-store caching headers.
// Request bodies are limited in size and never logged.
package server
