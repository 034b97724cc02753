// Package integration contains end-to-end tests for the lookup services.
//
// Each test starts a service in-process on a free port, configured through environment
// variables exactly as in a deployment, and talks to it over HTTP.
//
// These tests assume the catalog and lookup packages are working correctly (tested separately).
// If bugs are introduced in lower-level packages, there will be cascading failures here -
// fix the low-level problems first.
package integration
