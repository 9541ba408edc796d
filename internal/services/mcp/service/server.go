package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies the MCP server to clients.
	serverName = "cafe-cursor"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the cafe MCP tools and resources over a transport.
type Server struct {
	mcpServer *mcp.Server
}

// New assembles the MCP server against a shared ordering system.
func New(system *ordering.System) (*Server, error) {
	if system == nil {
		return nil, fmt.Errorf("ordering system is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	mcp.AddTool(mcpServer, domain.MenuGetTool(), domain.MenuGetHandler(system))
	mcp.AddTool(mcpServer, domain.OrderPlaceTool(), domain.OrderPlaceHandler(system))
	mcp.AddTool(mcpServer, domain.OrderStatusTool(), domain.OrderStatusHandler(system))
	mcp.AddTool(mcpServer, domain.OrderListTool(), domain.OrderListHandler(system))
	mcp.AddTool(mcpServer, domain.OrderMarkReadyTool(), domain.OrderMarkReadyHandler(system))
	mcp.AddTool(mcpServer, domain.MenuItemAddTool(), domain.MenuItemAddHandler(system))
	mcp.AddTool(mcpServer, domain.MenuItemRemoveTool(), domain.MenuItemRemoveHandler(system))

	mcpServer.AddResource(domain.MenuResource(), domain.MenuResourceHandler(system))
	mcpServer.AddResource(domain.OrdersResource(), domain.OrdersResourceHandler(system))

	return &Server{mcpServer: mcpServer}, nil
}

// Serve runs the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.ServeTransport(ctx, &mcp.StdioTransport{})
}

// ServeTransport runs the MCP server on the provided transport. Context
// cancellation is a clean shutdown, not an error.
func (s *Server) ServeTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}

	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	return err
}
