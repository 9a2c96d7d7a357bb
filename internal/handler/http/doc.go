// Package http exposes the account directory over a REST API.
//
// Routes are served by chi. Every request gets a trace id and an access log
// line; account routes additionally require a bearer JWT whose subject names
// the directory owner the request acts on.
package http
