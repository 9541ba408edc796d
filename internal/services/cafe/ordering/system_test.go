package ordering_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/louisbranch/cafecursor/internal/services/cafe/ordering"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage/sqlite"
)

func openTempSystem(t *testing.T) (*ordering.System, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cafe.db")
	return openSystemAt(t, path), path
}

func openSystemAt(t *testing.T, path string) *ordering.System {
	t.Helper()
	store, err := sqlite.Open(path)
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

func TestNewWarmsMenuCache(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	items := system.MenuItems()
	if len(items) != 13 {
		t.Fatalf("menu cache size = %d, want 13", len(items))
	}
	if item, ok := system.LookupMenuItem(9); !ok || item.Name != "Espresso Tonic" {
		t.Fatalf("item 9 = %+v ok=%v, want Espresso Tonic", item, ok)
	}
}

func TestCreateOrderWritesThroughCacheAndStore(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	ctx := context.Background()

	order, err := system.CreateOrder(ctx, map[int64]int64{1: 2, 3: 1})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	got, err := system.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Items[1] != 2 || got.Items[3] != 1 {
		t.Fatalf("items = %v, want map[1:2 3:1]", got.Items)
	}
}

func TestGetOrderMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	_, err := system.GetOrder(context.Background(), 404)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestListOrdersRefreshesAcrossSystems(t *testing.T) {
	t.Parallel()

	first, path := openTempSystem(t)
	second := openSystemAt(t, path)
	ctx := context.Background()

	created, err := first.CreateOrder(ctx, map[int64]int64{2: 1})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	// The second system never saw the write; listing must pick it up from
	// the store rather than trusting its cache.
	orders, err := second.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != created.ID {
		t.Fatalf("orders = %+v, want the order created elsewhere", orders)
	}
}

func TestListOrdersSortedByID(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := system.CreateOrder(ctx, map[int64]int64{1: 1}); err != nil {
			t.Fatalf("create order %d: %v", i, err)
		}
	}

	orders, err := system.ListOrders(ctx)
	if err != nil {
		t.Fatalf("list orders: %v", err)
	}
	for i := 1; i < len(orders); i++ {
		if orders[i].ID <= orders[i-1].ID {
			t.Fatalf("orders not sorted by id: %d after %d", orders[i].ID, orders[i-1].ID)
		}
	}
}

func TestMarkReadyStampsAndCaches(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	ctx := context.Background()

	order, err := system.CreateOrder(ctx, map[int64]int64{1: 1})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}

	marked, err := system.MarkReady(ctx, order.ID)
	if err != nil {
		t.Fatalf("mark ready: %v", err)
	}
	if marked.ReadyAt == nil {
		t.Fatal("returned order missing ready timestamp")
	}

	got, err := system.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.ReadyAt == nil {
		t.Fatal("persisted order missing ready timestamp")
	}
}

func TestMarkReadyMissingReturnsNotFound(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	_, err := system.MarkReady(context.Background(), 31337)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestMenuMutationsReloadCache(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	ctx := context.Background()

	if err := system.AddMenuItem(ctx, 14, "Matcha Latte"); err != nil {
		t.Fatalf("add menu item: %v", err)
	}
	if item, ok := system.LookupMenuItem(14); !ok || item.Name != "Matcha Latte" {
		t.Fatalf("item 14 = %+v ok=%v after add", item, ok)
	}

	err := system.AddMenuItem(ctx, 14, "Matcha Latte")
	if !errors.Is(err, storage.ErrAlreadyExists) {
		t.Fatalf("duplicate add err = %v, want %v", err, storage.ErrAlreadyExists)
	}

	if err := system.RemoveMenuItem(ctx, 14); err != nil {
		t.Fatalf("remove menu item: %v", err)
	}
	if _, ok := system.LookupMenuItem(14); ok {
		t.Fatal("item 14 still cached after removal")
	}

	err = system.RemoveMenuItem(ctx, 14)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("remove missing err = %v, want %v", err, storage.ErrNotFound)
	}
}

func TestMenuAdditionVisibleToOtherSystemAfterReload(t *testing.T) {
	t.Parallel()

	staff, path := openTempSystem(t)
	ctx := context.Background()

	if err := staff.AddMenuItem(ctx, 20, "Cortado"); err != nil {
		t.Fatalf("add menu item: %v", err)
	}

	// A system opened over the same file sees the staff addition.
	guest := openSystemAt(t, path)
	if item, ok := guest.LookupMenuItem(20); !ok || item.Name != "Cortado" {
		t.Fatalf("item 20 = %+v ok=%v in fresh system", item, ok)
	}
}

func TestSummaryFallsBackAfterMenuRemoval(t *testing.T) {
	t.Parallel()

	system, _ := openTempSystem(t)
	ctx := context.Background()

	order, err := system.CreateOrder(ctx, map[int64]int64{13: 1})
	if err != nil {
		t.Fatalf("create order: %v", err)
	}
	if err := system.RemoveMenuItem(ctx, 13); err != nil {
		t.Fatalf("remove menu item: %v", err)
	}

	got, err := system.GetOrder(ctx, order.ID)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	if got.Items[13] != 1 {
		t.Fatalf("items mutated by menu removal: %v", got.Items)
	}
	if summary := system.Summary(got.Items); summary != "Item 13 x1" {
		t.Fatalf("summary = %q, want %q", summary, "Item 13 x1")
	}
}
