// Package http implements the HTTP transport layer of the clinic API.
//
// It exposes route wiring, request handlers, and middleware. Request tracing,
// access logging, metrics and token verification are handled in this package
// before requests are delegated to the service layer.
package http
