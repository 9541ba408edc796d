// Package service wires protocol transport to the cafe ordering domain.
//
// It assembles the MCP server, registers the domain tools and resources,
// and runs the protocol over stdio. Business meaning lives in the domain
// package; this layer only knows how to host it.
package service
