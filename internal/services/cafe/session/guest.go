package session

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
)

// dispatchGuest executes one guest command. The returned bool reports
// session termination; the error is transport-only.
func (h *Handler) dispatchGuest(ctx context.Context, word string, args []string) (bool, error) {
	switch parseGuestCommand(word) {
	case guestMenu:
		return false, h.writeMenu()
	case guestAdd:
		return false, h.handleGuestAdd(args)
	case guestCart:
		return false, h.writeCart()
	case guestOrder:
		return false, h.handleGuestOrder(ctx)
	case guestStatus:
		return false, h.handleGuestStatus(ctx, args)
	case guestHelp:
		return false, h.writeGuestHelp()
	case guestExit:
		return true, h.io.WriteLine("See you next time. ☕")
	case guestUnknown:
		return false, h.io.WriteLine("Unknown command. Type `help` for options.")
	}
	return false, nil
}

func (h *Handler) writeMenu() error {
	divider := strings.Repeat("=", 48)
	if err := h.writeLines("\n"+divider, "            CAFE CURSOR MENU", divider); err != nil {
		return err
	}
	for _, item := range h.system.MenuItems() {
		if err := h.writef("  %2d. %s", item.ID, item.Name); err != nil {
			return err
		}
	}
	return h.writeLines("\nUse `add <item #>` to place things in your cart.", divider)
}

func (h *Handler) handleGuestAdd(args []string) error {
	if len(args) == 0 {
		return h.io.WriteLine("Usage: add <item #> [quantity]")
	}

	itemID, ok := parseInt64(args[0])
	if !ok {
		return h.io.WriteLine("Item number must be numeric.")
	}
	item, found := h.system.LookupMenuItem(itemID)
	if !found {
		return h.writef("Item #%d is not on the menu.", itemID)
	}

	quantity := int64(1)
	if len(args) >= 2 {
		quantity, ok = parseInt64(args[1])
		if !ok {
			return h.io.WriteLine("Quantity must be numeric.")
		}
	}

	if err := h.cart.Add(itemID, quantity); err != nil {
		return h.io.WriteLine("Quantity must be positive.")
	}

	plural := ""
	if quantity > 1 {
		plural = "s"
	}
	return h.writef("Added %d %s%s to cart.", quantity, item.Name, plural)
}

func (h *Handler) writeCart() error {
	if h.cart.IsEmpty() {
		return h.io.WriteLine("\nCart is empty. Use `add <item #>` to begin.")
	}

	if err := h.io.WriteLine("\n--- Cart ---"); err != nil {
		return err
	}
	snapshot := h.cart.Snapshot()
	for _, item := range h.system.MenuItems() {
		quantity, ok := snapshot[item.ID]
		if !ok {
			continue
		}
		delete(snapshot, item.ID)
		if err := h.writef("%s x%d", item.Name, quantity); err != nil {
			return err
		}
	}
	// Items dropped from the menu since they were carted.
	for id, quantity := range snapshot {
		if err := h.writef("Item %d x%d", id, quantity); err != nil {
			return err
		}
	}
	return h.io.WriteLine("------------")
}

func (h *Handler) handleGuestOrder(ctx context.Context) error {
	if h.cart.IsEmpty() {
		return h.io.WriteLine("Cart is empty. Add items first via `add <item #>`.")
	}

	order, err := h.system.CreateOrder(ctx, h.cart.Snapshot())
	if err != nil {
		log.Printf("guest session: create order: %v", err)
		return h.io.WriteLine("Could not place the order. Please try again.")
	}
	h.cart.Clear()

	divider := strings.Repeat("=", 48)
	return h.writeLines(
		"\n"+divider,
		"ORDER CONFIRMED",
		"Order ID: "+itoa(order.ID),
		"Use `status "+itoa(order.ID)+"` anytime to check progress.",
		"We'll ping you when everything is ready!",
		divider,
	)
}

func (h *Handler) handleGuestStatus(ctx context.Context, args []string) error {
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
		log.Printf("guest session: get order %d: %v", orderID, err)
		return h.io.WriteLine("Could not look up the order. Please try again.")
	}
	return h.writef("%d: %s", orderID, ordering.Status(order, time.Now().UTC()))
}

func (h *Handler) writeGuestHelp() error {
	return h.writeLines(
		"Commands:",
		"  menu                    Show Cafe Cursor offerings",
		"  add <item #> [qty]      Add menu item to cart",
		"  cart                    Review current cart",
		"  order                   Place the current cart",
		"  status <order id>       Check order status (integers only)",
		"  help                    Show this message",
		"  exit                    Quit the app",
	)
}
