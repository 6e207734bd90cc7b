// Package http implements the REST transport of the music library.
//
// It wires routes, request handlers and middleware. Authentication, request
// tracing, access logging and response compression are handled here before
// requests are delegated to the service layer. Multipart uploads are stored
// through the media service as they are parsed; files that end up unused are
// discarded when the request finishes.
package http
