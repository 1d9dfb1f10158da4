// Package server wires and runs the application's transport servers.
//
// It binds the HTTP API and the optional gRPC health endpoint, runs them
// until the caller's context is cancelled and then shuts both down
// gracefully.
package server
