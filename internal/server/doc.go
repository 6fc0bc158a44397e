// Package server wires and runs the application's HTTP listeners.
//
// It owns the lookup server bound to the address from the projects
// configuration and the optional metrics listener, including startup,
// signal handling, and graceful shutdown of both.
package server
