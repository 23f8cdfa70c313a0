// Package server wires the HTTP server together: router, database
// handle, configuration, authentication middleware, audit logger and
// the storage backends the endpoints depend on.
package server
