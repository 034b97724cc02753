// Package server exposes one lookup service over HTTP.
//
// Routes:
//
//	GET /                          liveness: service, status, version
//	GET /health                    health: status, service, db_records, endpoints
//	GET {prefix}/{resource}/{key}  lookup: the record (200) or a not-found record (404)
//
// {prefix} is ROUTE_PREFIX (empty by default, /v1 or /api for the gateway deployments).
// Any other route answers with a JSON error body.
//
// The server does not authenticate callers. It is meant to be reachable only through
// the API gateway, which authenticates the caller and forwards the identity headers.
package server
