// Package cli provides the interactive MindMate terminal client.
//
// It wires configuration, the local Persisted Store, the Auth Endpoint
// client and the state controllers, then runs a read-eval-print loop over
// them. Every command calls a controller operation and prints plain text.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
