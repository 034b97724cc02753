// Package handlers adapts the lookup services to HTTP: path parameters and
// identity headers in, JSON responses out.
//
// The handlers take their dependencies as arguments and hold no state of their own.
package handlers
