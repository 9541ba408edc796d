// Package domain translates MCP tool and resource calls into cafe
// ordering operations.
//
// Each tool pairs a schema constructor with a handler factory bound to the
// shared ordering system, so the service layer registers them without
// knowing what they do. Resources expose read-only text renderings of the
// menu and the order board.
package domain
