package session

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
)

// dispatchStaff executes one staff command. The returned bool reports
// session termination; the error is transport-only.
func (h *Handler) dispatchStaff(ctx context.Context, word string, args []string) (bool, error) {
	switch parseStaffCommand(word) {
	case staffList:
		return false, h.handleStaffList(ctx)
	case staffStatus:
		return false, h.handleStaffStatus(ctx, args)
	case staffReady:
		return false, h.handleStaffReady(ctx, args)
	case staffMenuList:
		return false, h.handleStaffMenuList()
	case staffMenuAdd:
		return false, h.handleStaffMenuAdd(ctx, args)
	case staffMenuRemove:
		return false, h.handleStaffMenuRemove(ctx, args)
	case staffHelp:
		return false, h.writeStaffHelp()
	case staffExit:
		return true, h.io.WriteLine("See you next time. ☕")
	case staffUnknown:
		return false, h.io.WriteLine("Unknown backend command. Type `help` for options.")
	}
	return false, nil
}

func formatReadyAt(order storage.Order) string {
	if order.ReadyAt == nil {
		return "-"
	}
	return order.ReadyAt.Format(displayLayout)
}

func (h *Handler) handleStaffList(ctx context.Context) error {
	orders, err := h.system.ListOrders(ctx)
	if err != nil {
		log.Printf("staff session: list orders: %v", err)
		return h.io.WriteLine("Could not list orders. Please try again.")
	}
	if len(orders) == 0 {
		return h.io.WriteLine("\nNo orders found.")
	}

	if err := h.io.WriteLine("\nCurrent Orders:"); err != nil {
		return err
	}
	for _, order := range orders {
		state := "PREP"
		if order.ReadyAt != nil {
			state = "READY"
		}
		if err := h.writef("- %d [%s] placed %s ready %s",
			order.ID, state, order.PlacedAt.Format(displayLayout), formatReadyAt(order)); err != nil {
			return err
		}
		if err := h.writef("    %s", h.system.Summary(order.Items)); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) handleStaffStatus(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return h.io.WriteLine("Usage: status <order id>")
	}
	orderID, ok := parseInt64(args[0])
	if !ok {
		return h.io.WriteLine("Order id must be an integer.")
	}

	order, err := h.system.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return h.writef("No order found with id %d.", orderID)
		}
		log.Printf("staff session: get order %d: %v", orderID, err)
		return h.io.WriteLine("Could not look up the order. Please try again.")
	}

	return h.writeLines(
		itoa(orderID)+": "+ordering.Status(order, time.Now().UTC()),
		"  Placed: "+order.PlacedAt.Format(displayLayout),
		"  Ready:  "+formatReadyAt(order),
		"  Items:  "+h.system.Summary(order.Items),
	)
}

func (h *Handler) handleStaffReady(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return h.io.WriteLine("Usage: ready <order id>")
	}
	orderID, ok := parseInt64(args[0])
	if !ok {
		return h.io.WriteLine("Order id must be an integer.")
	}

	order, err := h.system.MarkReady(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return h.writef("No order found with id %d.", orderID)
		}
		log.Printf("staff session: mark order %d ready: %v", orderID, err)
		return h.io.WriteLine("Could not mark the order ready. Please try again.")
	}
	return h.writef("Order %d marked ready at %s.", orderID, formatReadyAt(order))
}

func (h *Handler) handleStaffMenuList() error {
	items := h.system.MenuItems()
	if len(items) == 0 {
		return h.io.WriteLine("\nNo menu items found.")
	}

	if err := h.io.WriteLine("\nMenu Items:"); err != nil {
		return err
	}
	for _, item := range items {
		if err := h.writef("  %2d. %s", item.ID, item.Name); err != nil {
			return err
		}
	}
	return nil
}

func (h *Handler) handleStaffMenuAdd(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return h.writeLines(
			"Usage: menu-add <item id> <name>",
			"Example: menu-add 14 'New Coffee'",
		)
	}
	itemID, ok := parseInt64(args[0])
	if !ok {
		return h.io.WriteLine("Item id must be an integer.")
	}

	name := joinName(args[1:])
	if err := h.system.AddMenuItem(ctx, itemID, name); err != nil {
		if errors.Is(err, storage.ErrAlreadyExists) {
			return h.writef("Failed to add menu item. Item id %d may already exist.", itemID)
		}
		log.Printf("staff session: add menu item %d: %v", itemID, err)
		return h.io.WriteLine("Could not add the menu item. Please try again.")
	}
	return h.writef("Menu item %d '%s' added successfully.", itemID, name)
}

func (h *Handler) handleStaffMenuRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return h.io.WriteLine("Usage: menu-remove <item id>")
	}
	itemID, ok := parseInt64(args[0])
	if !ok {
		return h.io.WriteLine("Item id must be an integer.")
	}

	item, found := h.system.LookupMenuItem(itemID)
	if !found {
		return h.writef("Menu item %d not found.", itemID)
	}

	if err := h.system.RemoveMenuItem(ctx, itemID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return h.writef("Menu item %d not found.", itemID)
		}
		log.Printf("staff session: remove menu item %d: %v", itemID, err)
		return h.writef("Failed to remove menu item %d.", itemID)
	}
	return h.writef("Menu item %d '%s' removed successfully.", itemID, item.Name)
}

func (h *Handler) writeStaffHelp() error {
	return h.writeLines(
		"Backend Commands:",
		"  list                    Show all orders and status",
		"  status <order id>       Show details for one order",
		"  ready <order id>        Mark order as ready",
		"  menu-list               Show all menu items",
		"  menu-add <id> <name>    Add a new menu item",
		"  menu-remove <id>        Remove a menu item",
		"  help                    Show this message",
		"  exit                    Quit the console",
	)
}
