package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// MenuGetHandler returns the full menu ordered by item id.
func MenuGetHandler(system *ordering.System) mcp.ToolHandlerFor[MenuGetInput, MenuGetResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ MenuGetInput) (*mcp.CallToolResult, MenuGetResult, error) {
		if system == nil {
			return nil, MenuGetResult{}, fmt.Errorf("ordering system is not configured")
		}

		items := system.MenuItems()
		result := MenuGetResult{Items: make([]MenuEntry, 0, len(items))}
		for _, item := range items {
			result.Items = append(result.Items, MenuEntry{ID: item.ID, Name: item.Name})
		}
		return nil, result, nil
	}
}

// MenuItemAddHandler adds a catalog entry under a caller-chosen id.
func MenuItemAddHandler(system *ordering.System) mcp.ToolHandlerFor[MenuItemAddInput, MenuItemResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MenuItemAddInput) (*mcp.CallToolResult, MenuItemResult, error) {
		if system == nil {
			return nil, MenuItemResult{}, fmt.Errorf("ordering system is not configured")
		}

		if err := system.AddMenuItem(ctx, input.ItemID, input.Name); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return nil, MenuItemResult{}, fmt.Errorf("failed to add menu item: item id %d may already exist", input.ItemID)
			}
			return nil, MenuItemResult{}, fmt.Errorf("add menu item: %w", err)
		}

		return nil, MenuItemResult{
			ItemID:  input.ItemID,
			Name:    input.Name,
			Message: fmt.Sprintf("Menu item %d '%s' added successfully.", input.ItemID, input.Name),
		}, nil
	}
}

// MenuItemRemoveHandler deletes a catalog entry. Existing orders keep their
// item snapshots and are unaffected.
func MenuItemRemoveHandler(system *ordering.System) mcp.ToolHandlerFor[MenuItemRemoveInput, MenuItemResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input MenuItemRemoveInput) (*mcp.CallToolResult, MenuItemResult, error) {
		if system == nil {
			return nil, MenuItemResult{}, fmt.Errorf("ordering system is not configured")
		}

		item, ok := system.LookupMenuItem(input.ItemID)
		if !ok {
			return nil, MenuItemResult{}, fmt.Errorf("menu item %d not found", input.ItemID)
		}
		if err := system.RemoveMenuItem(ctx, input.ItemID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, MenuItemResult{}, fmt.Errorf("menu item %d not found", input.ItemID)
			}
			return nil, MenuItemResult{}, fmt.Errorf("remove menu item: %w", err)
		}

		return nil, MenuItemResult{
			ItemID:  input.ItemID,
			Name:    item.Name,
			Message: fmt.Sprintf("Menu item %d '%s' removed successfully.", input.ItemID, item.Name),
		}, nil
	}
}
