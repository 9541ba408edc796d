package domain

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const timeLayout = "2006-01-02 15:04:05"

// OrderPlaceHandler validates item ids against the menu and creates an order.
func OrderPlaceHandler(system *ordering.System) mcp.ToolHandlerFor[OrderPlaceInput, OrderPlaceResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderPlaceInput) (*mcp.CallToolResult, OrderPlaceResult, error) {
		if system == nil {
			return nil, OrderPlaceResult{}, fmt.Errorf("ordering system is not configured")
		}
		if len(input.Items) == 0 {
			return nil, OrderPlaceResult{}, fmt.Errorf("items parameter is required")
		}

		items := make(map[int64]int64, len(input.Items))
		for key, quantity := range input.Items {
			id, err := strconv.ParseInt(key, 10, 64)
			if err != nil {
				return nil, OrderPlaceResult{}, fmt.Errorf("menu item id %q is not numeric", key)
			}
			if _, ok := system.LookupMenuItem(id); !ok {
				return nil, OrderPlaceResult{}, fmt.Errorf("menu item %d does not exist", id)
			}
			items[id] = quantity
		}

		order, err := system.CreateOrder(ctx, items)
		if err != nil {
			return nil, OrderPlaceResult{}, fmt.Errorf("place order: %w", err)
		}

		return nil, OrderPlaceResult{
			OrderID: order.ID,
			Items:   system.Summary(order.Items),
			Status:  ordering.Status(order, time.Now().UTC()),
		}, nil
	}
}

// OrderStatusHandler reads one order with its progress message.
func OrderStatusHandler(system *ordering.System) mcp.ToolHandlerFor[OrderStatusInput, OrderStatusResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderStatusInput) (*mcp.CallToolResult, OrderStatusResult, error) {
		if system == nil {
			return nil, OrderStatusResult{}, fmt.Errorf("ordering system is not configured")
		}

		order, err := system.GetOrder(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, OrderStatusResult{}, fmt.Errorf("order %d not found", input.OrderID)
			}
			return nil, OrderStatusResult{}, fmt.Errorf("get order: %w", err)
		}

		readyAt := "Not ready yet"
		if order.ReadyAt != nil {
			readyAt = order.ReadyAt.Format(timeLayout)
		}
		return nil, OrderStatusResult{
			OrderID:  order.ID,
			Status:   ordering.Status(order, time.Now().UTC()),
			PlacedAt: order.PlacedAt.Format(timeLayout),
			ReadyAt:  readyAt,
			Items:    system.Summary(order.Items),
		}, nil
	}
}

// OrderListHandler lists every order, oldest first.
func OrderListHandler(system *ordering.System) mcp.ToolHandlerFor[OrderListInput, OrderListResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ OrderListInput) (*mcp.CallToolResult, OrderListResult, error) {
		if system == nil {
			return nil, OrderListResult{}, fmt.Errorf("ordering system is not configured")
		}

		orders, err := system.ListOrders(ctx)
		if err != nil {
			return nil, OrderListResult{}, fmt.Errorf("list orders: %w", err)
		}

		result := OrderListResult{Orders: make([]OrderListEntry, 0, len(orders))}
		for _, order := range orders {
			state, readyAt := "PREP", "-"
			if order.ReadyAt != nil {
				state = "READY"
				readyAt = order.ReadyAt.Format(timeLayout)
			}
			result.Orders = append(result.Orders, OrderListEntry{
				OrderID:  order.ID,
				State:    state,
				PlacedAt: order.PlacedAt.Format(timeLayout),
				ReadyAt:  readyAt,
				Items:    system.Summary(order.Items),
			})
		}
		return nil, result, nil
	}
}

// OrderMarkReadyHandler stamps an order ready for pickup.
func OrderMarkReadyHandler(system *ordering.System) mcp.ToolHandlerFor[OrderMarkReadyInput, OrderMarkReadyResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input OrderMarkReadyInput) (*mcp.CallToolResult, OrderMarkReadyResult, error) {
		if system == nil {
			return nil, OrderMarkReadyResult{}, fmt.Errorf("ordering system is not configured")
		}

		order, err := system.MarkReady(ctx, input.OrderID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, OrderMarkReadyResult{}, fmt.Errorf("order %d not found", input.OrderID)
			}
			return nil, OrderMarkReadyResult{}, fmt.Errorf("mark order ready: %w", err)
		}

		readyAt := "unknown"
		if order.ReadyAt != nil {
			readyAt = order.ReadyAt.Format(timeLayout)
		}
		return nil, OrderMarkReadyResult{OrderID: order.ID, ReadyAt: readyAt}, nil
	}
}
