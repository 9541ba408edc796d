package domain

import "github.com/modelcontextprotocol/go-sdk/mcp"

// MenuGetInput represents the MCP tool input for reading the menu.
type MenuGetInput struct{}

// MenuEntry represents one menu item in tool output.
type MenuEntry struct {
	ID   int64  `json:"id" jsonschema:"menu item identifier"`
	Name string `json:"name" jsonschema:"menu item name"`
}

// MenuGetResult represents the MCP tool output for reading the menu.
type MenuGetResult struct {
	Items []MenuEntry `json:"items" jsonschema:"menu items ordered by id"`
}

// MenuItemAddInput represents the MCP tool input for adding a menu item.
type MenuItemAddInput struct {
	ItemID int64  `json:"item_id" jsonschema:"unique id for the menu item"`
	Name   string `json:"name" jsonschema:"name of the menu item"`
}

// MenuItemRemoveInput represents the MCP tool input for removing a menu item.
type MenuItemRemoveInput struct {
	ItemID int64 `json:"item_id" jsonschema:"id of the menu item to remove"`
}

// MenuItemResult represents the MCP tool output for menu mutations.
type MenuItemResult struct {
	ItemID  int64  `json:"item_id" jsonschema:"menu item identifier"`
	Name    string `json:"name" jsonschema:"menu item name"`
	Message string `json:"message" jsonschema:"human-readable outcome"`
}

// MenuGetTool defines the MCP tool schema for reading the menu.
func MenuGetTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_menu",
		Description: "Get the current menu with all available items and their IDs",
	}
}

// MenuItemAddTool defines the MCP tool schema for adding a menu item.
func MenuItemAddTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "add_menu_item",
		Description: "Add a new item to the menu (backend operation)",
	}
}

// MenuItemRemoveTool defines the MCP tool schema for removing a menu item.
func MenuItemRemoveTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "remove_menu_item",
		Description: "Remove an item from the menu (backend operation)",
	}
}
