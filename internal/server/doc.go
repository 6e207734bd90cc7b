// Package server runs the HTTP server of the music library.
//
// It handles startup, waits for SIGTERM, SIGINT or SIGQUIT and shuts the
// server down gracefully, letting in-flight uploads and streams finish
// within the shutdown timeout.
package server
