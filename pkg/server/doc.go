// Package server serves the repository card page over HTTP.
//
// The catalog is loaded once before the server starts; requests only filter
// it. Routes:
//
//	GET /               HTML card page (?lang=Go&q=cli)
//	GET /api/repos      the same view as JSON
//	GET /api/languages  the language filter index
//	GET /healthz        liveness
//
// Every request gets an X-Request-ID and one access log line.
package server
