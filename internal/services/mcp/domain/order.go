package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// OrderPlaceInput represents the MCP tool input for placing an order.
// Item ids arrive as JSON object keys, which are always strings on the wire.
type OrderPlaceInput struct {
	Items map[string]int64 `json:"items" jsonschema:"object mapping menu item ids to quantities (e.g. {\"1\": 2, \"3\": 1})"`
}

// OrderPlaceResult represents the MCP tool output for placing an order.
type OrderPlaceResult struct {
	OrderID int64  `json:"order_id" jsonschema:"identifier of the created order"`
	Items   string `json:"items" jsonschema:"human-readable order summary"`
	Status  string `json:"status" jsonschema:"progress message for the order"`
}

// OrderStatusInput represents the MCP tool input for reading one order.
type OrderStatusInput struct {
	OrderID int64 `json:"order_id" jsonschema:"the order id to check"`
}

// OrderStatusResult represents the MCP tool output for reading one order.
type OrderStatusResult struct {
	OrderID  int64  `json:"order_id" jsonschema:"order identifier"`
	Status   string `json:"status" jsonschema:"progress message for the order"`
	PlacedAt string `json:"placed_at" jsonschema:"when the order was placed"`
	ReadyAt  string `json:"ready_at" jsonschema:"when the order became ready, or 'Not ready yet'"`
	Items    string `json:"items" jsonschema:"human-readable order summary"`
}

// OrderListInput represents the MCP tool input for listing all orders.
type OrderListInput struct{}

// OrderListEntry represents one order in the listing output.
type OrderListEntry struct {
	OrderID  int64  `json:"order_id" jsonschema:"order identifier"`
	State    string `json:"state" jsonschema:"PREP or READY"`
	PlacedAt string `json:"placed_at" jsonschema:"when the order was placed"`
	ReadyAt  string `json:"ready_at" jsonschema:"when the order became ready, or '-'"`
	Items    string `json:"items" jsonschema:"human-readable order summary"`
}

// OrderListResult represents the MCP tool output for listing all orders.
type OrderListResult struct {
	Orders []OrderListEntry `json:"orders" jsonschema:"all orders, oldest first"`
}

// OrderMarkReadyInput represents the MCP tool input for marking an order ready.
type OrderMarkReadyInput struct {
	OrderID int64 `json:"order_id" jsonschema:"the order id to mark as ready"`
}

// OrderMarkReadyResult represents the MCP tool output for marking an order ready.
type OrderMarkReadyResult struct {
	OrderID int64  `json:"order_id" jsonschema:"order identifier"`
	ReadyAt string `json:"ready_at" jsonschema:"when the order was marked ready"`
}

// OrderPlaceTool defines the MCP tool schema for placing orders.
func OrderPlaceTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "place_order",
		Description: "Place an order with specified menu items. Provide a dictionary mapping item IDs to quantities.",
	}
}

// OrderStatusTool defines the MCP tool schema for order status lookups.
func OrderStatusTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_order_status",
		Description: "Get the status of a specific order by its ID",
	}
}

// OrderListTool defines the MCP tool schema for listing orders.
func OrderListTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_orders",
		Description: "List all orders with their status, timestamps, and items (backend operation)",
	}
}

// OrderMarkReadyTool defines the MCP tool schema for marking orders ready.
func OrderMarkReadyTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "mark_order_ready",
		Description: "Mark an order as ready for pickup (backend operation)",
	}
}
