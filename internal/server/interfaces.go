package server

// Server is the lifecycle contract for the transport servers this package
// manages. RunServer blocks until shutdown completes.
type Server interface {
	RunServer()
	Shutdown()
}
