package session

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage/sqlite"
)

// scriptIO feeds a canned input script and captures every written line.
type scriptIO struct {
	script  []string
	written []string
}

func (s *scriptIO) ReadLine(prompt string) (string, error) {
	if len(s.script) == 0 {
		return "", io.EOF
	}
	line := s.script[0]
	s.script = s.script[1:]
	return line, nil
}

func (s *scriptIO) WriteLine(line string) error {
	s.written = append(s.written, line)
	return nil
}

func (s *scriptIO) output() string {
	return strings.Join(s.written, "\n")
}

func newTestSystem(t *testing.T) *ordering.System {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "cafe.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	system, err := ordering.New(context.Background(), store)
	if err != nil {
		t.Fatalf("new system: %v", err)
	}
	return system
}

func runScript(t *testing.T, role Role, system *ordering.System, script ...string) *scriptIO {
	t.Helper()
	io := &scriptIO{script: script}
	handler := NewHandler(role, system, io)
	if err := handler.Run(context.Background()); err != nil {
		t.Fatalf("run session: %v", err)
	}
	return io
}

func TestGuestSessionPlacesOrder(t *testing.T) {
	t.Parallel()

	system := newTestSystem(t)
	io := runScript(t, RoleGuest, system,
		"menu",
		"add 1 2",
		"cart",
		"order",
		"status 1",
		"exit",
	)

	out := io.output()
	for _, want := range []string{
		"Welcome to Cafe Cursor!",
		"CAFE CURSOR MENU",
		"Added 2 Black (Hot)s to cart.",
		"--- Cart ---",
		"Black (Hot) x2",
		"ORDER CONFIRMED",
		"Order ID: 1",
		"1: " + ordering.StatusReceived,
		"See you next time. ☕",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	orders, err := system.ListOrders(context.Background())
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].Items[1] != 2 {
		t.Fatalf("persisted orders = %+v, want one order with item 1 x2", orders)
	}
}

func TestGuestSessionInputErrors(t *testing.T) {
	t.Parallel()

	system := newTestSystem(t)
	io := runScript(t, RoleGuest, system,
		"add",
		"add abc",
		"add 999",
		"add 1 xyz",
		"add 1 0",
		"order",
		"status",
		"status abc",
		"status 404",
		"frobnicate",
		"",
		"   ",
		"exit",
	)

	out := io.output()
	for _, want := range []string{
		"Usage: add <item #> [quantity]",
		"Item number must be numeric.",
		"Item #999 is not on the menu.",
		"Quantity must be numeric.",
		"Quantity must be positive.",
		"Cart is empty. Add items first via `add <item #>`.",
		"Usage: status <order id>",
		"Order id must be an integer.",
		"No order found with id 404.",
		"Unknown command. Type `help` for options.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGuestCartClearedAfterOrder(t *testing.T) {
	t.Parallel()

	system := newTestSystem(t)
	io := runScript(t, RoleGuest, system,
		"add 2",
		"order",
		"cart",
		"exit",
	)

	if !strings.Contains(io.output(), "Cart is empty. Use `add <item #>` to begin.") {
		t.Fatalf("cart not cleared after order:\n%s", io.output())
	}
}

func TestGuestCommandsRejectedForStaffRole(t *testing.T) {
	t.Parallel()

	system := newTestSystem(t)
	io := runScript(t, RoleStaff, system, "add 1", "exit")

	if !strings.Contains(io.output(), "Unknown backend command.") {
		t.Fatalf("staff session accepted a guest command:\n%s", io.output())
	}
}

func TestStaffSessionManagesOrdersAndMenu(t *testing.T) {
	t.Parallel()

	system := newTestSystem(t)
	order, err := system.CreateOrder(context.Background(), map[int64]int64{1: 1, 12: 2})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	io := runScript(t, RoleStaff, system,
		"list",
		"status "+itoa(order.ID),
		"ready "+itoa(order.ID),
		"list",
		"menu-list",
		"menu-add 14 Matcha Latte",
		"menu-add 14 Matcha Latte",
		"menu-remove 14",
		"menu-remove 14",
		"ready 999",
		"exit",
	)

	out := io.output()
	for _, want := range []string{
		"Cafe Cursor Backend Console",
		"Current Orders:",
		"[PREP]",
		"Black (Hot) x1, Chocolate Cookies x2",
		"Items:  Black (Hot) x1, Chocolate Cookies x2",
		"Order " + itoa(order.ID) + " marked ready at",
		"[READY]",
		"Menu Items:",
		"Menu item 14 'Matcha Latte' added successfully.",
		"Failed to add menu item. Item id 14 may already exist.",
		"Menu item 14 'Matcha Latte' removed successfully.",
		"Menu item 14 not found.",
		"No order found with id 999.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestStaffSessionUsageLines(t *testing.T) {
	t.Parallel()

	system := newTestSystem(t)
	io := runScript(t, RoleStaff, system,
		"status",
		"ready",
		"ready abc",
		"menu-add",
		"menu-add abc Latte",
		"menu-remove",
		"menu-remove abc",
		"exit",
	)

	out := io.output()
	for _, want := range []string{
		"Usage: status <order id>",
		"Usage: ready <order id>",
		"Usage: menu-add <item id> <name>",
		"Usage: menu-remove <item id>",
		"Order id must be an integer.",
		"Item id must be an integer.",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestSessionEndsWithFarewellOnEOF(t *testing.T) {
	t.Parallel()

	system := newTestSystem(t)
	io := runScript(t, RoleGuest, system)

	if !strings.Contains(io.output(), "Goodbye!") {
		t.Fatalf("EOF teardown missing farewell:\n%s", io.output())
	}
}
