package server

// Server defines the lifecycle contract for the listeners managed by this
// package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until a stop signal
	// arrives or a listener fails. A bind failure is returned immediately.
	RunServer() error

	// Shutdown gracefully stops every listener and frees associated resources.
	Shutdown()
}
