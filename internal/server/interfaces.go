package server

// Server runs the music library API until a stop signal arrives.
type Server interface {
	// RunServer serves the REST API and blocks until SIGTERM, SIGINT or
	// SIGQUIT triggers a graceful shutdown.
	RunServer()

	// Shutdown stops accepting requests and waits for in-flight uploads and
	// streams up to the shutdown timeout.
	Shutdown()
}
