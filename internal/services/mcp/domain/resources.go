package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MenuResource defines the readable menu resource.
func MenuResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "cafe_menu",
		Title:       "Cafe Menu",
		Description: "The current menu with all available items",
		MIMEType:    "text/plain",
		URI:         "cafe://menu",
	}
}

// OrdersResource defines the readable order board resource.
func OrdersResource() *mcp.Resource {
	return &mcp.Resource{
		Name:        "cafe_orders",
		Title:       "All Orders",
		Description: "List of all orders in the system",
		MIMEType:    "text/plain",
		URI:         "cafe://orders",
	}
}

// MenuResourceHandler renders the menu as plain text.
func MenuResourceHandler(system *ordering.System) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if system == nil {
			return nil, fmt.Errorf("ordering system is not configured")
		}
		return textResourceResult(req, MenuResource().URI, renderMenu(system)), nil
	}
}

// OrdersResourceHandler renders the order board as plain text.
func OrdersResourceHandler(system *ordering.System) mcp.ResourceHandler {
	return func(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
		if system == nil {
			return nil, fmt.Errorf("ordering system is not configured")
		}
		text, err := renderOrders(ctx, system)
		if err != nil {
			return nil, err
		}
		return textResourceResult(req, OrdersResource().URI, text), nil
	}
}

func textResourceResult(req *mcp.ReadResourceRequest, uri, text string) *mcp.ReadResourceResult {
	if req != nil && req.Params != nil && req.Params.URI != "" {
		uri = req.Params.URI
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: "text/plain",
				Text:     text,
			},
		},
	}
}

func renderMenu(system *ordering.System) string {
	items := system.MenuItems()
	if len(items) == 0 {
		return "No menu items available."
	}

	lines := []string{"Cafe Cursor Menu:\n"}
	for _, item := range items {
		lines = append(lines, fmt.Sprintf("  %2d. %s", item.ID, item.Name))
	}
	return strings.Join(lines, "\n")
}

func renderOrders(ctx context.Context, system *ordering.System) (string, error) {
	orders, err := system.ListOrders(ctx)
	if err != nil {
		return "", fmt.Errorf("list orders: %w", err)
	}
	if len(orders) == 0 {
		return "No orders found.", nil
	}

	lines := []string{"Current Orders:\n"}
	for _, order := range orders {
		state, readyAt := "PREP", "-"
		if order.ReadyAt != nil {
			state = "READY"
			readyAt = order.ReadyAt.Format(timeLayout)
		}
		lines = append(lines, fmt.Sprintf("  #%d [%s] placed %s ready %s", order.ID, state, order.PlacedAt.Format(timeLayout), readyAt))
		lines = append(lines, fmt.Sprintf("    %s", system.Summary(order.Items)))
	}
	return strings.Join(lines, "\n"), nil
}
