// Package client talks to the MindMate auth endpoint.
//
// The Client interface is transport-agnostic; HTTPClient implements it by
// POSTing {email, password} as JSON to <base>/api/<collection>. Any JSON
// body is handed back to the caller whatever the HTTP status, since the
// presence of a user object is the only success signal.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable and undecodable bodies wrap
// ErrMalformedResponse; match them with errors.Is.
package client
