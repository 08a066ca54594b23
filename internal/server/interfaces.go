// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is a runnable transport server.
type Server interface {
	// RunServer serves requests until the process receives a termination
	// signal, then shuts down gracefully.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests.
	Shutdown()
}
