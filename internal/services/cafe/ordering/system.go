// Package ordering composes the menu and order stores behind one facade
// shared by every session.
package ordering

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
)

// Store is the persistence surface the facade drives.
type Store interface {
	storage.MenuStore
	storage.OrderStore
}

// System is the shared read/write API session handlers talk to. It owns
// in-process caches of the menu and placed orders; the caches accelerate
// repeated lookups but are never treated as authoritative — listings and
// point reads always go back to the store.
type System struct {
	store Store

	mu     sync.RWMutex
	menu   map[int64]storage.MenuItem
	orders map[int64]storage.Order
}

// New builds a System over the store and warms both caches.
func New(ctx context.Context, store Store) (*System, error) {
	if store == nil {
		return nil, fmt.Errorf("store is required")
	}
	s := &System{
		store:  store,
		menu:   make(map[int64]storage.MenuItem),
		orders: make(map[int64]storage.Order),
	}
	if err := s.reloadMenu(ctx); err != nil {
		return nil, err
	}
	orders, err := store.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}
	s.orders = orders
	return s, nil
}

// MenuItems returns the cached catalog sorted by id.
func (s *System) MenuItems() []storage.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]storage.MenuItem, 0, len(s.menu))
	for _, item := range s.menu {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

// LookupMenuItem returns the cached item for an id.
func (s *System) LookupMenuItem(id int64) (storage.MenuItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.menu[id]
	return item, ok
}

// Summary renders order items against the current menu cache.
func (s *System) Summary(items map[int64]int64) string {
	return Summarize(items, s.LookupMenuItem)
}

// AddMenuItem adds a catalog entry and, on success, reloads the menu cache so
// the change is visible to every connected session on its next menu read.
func (s *System) AddMenuItem(ctx context.Context, id int64, name string) error {
	if err := s.store.AddMenuItem(ctx, id, name); err != nil {
		return err
	}
	return s.reloadMenu(ctx)
}

// RemoveMenuItem removes a catalog entry and, on success, reloads the menu
// cache. Past orders keep referencing the removed id; their summaries fall
// back to "Item <id>".
func (s *System) RemoveMenuItem(ctx context.Context, id int64) error {
	if err := s.store.RemoveMenuItem(ctx, id); err != nil {
		return err
	}
	return s.reloadMenu(ctx)
}

// CreateOrder persists an order from a cart snapshot and caches the result.
func (s *System) CreateOrder(ctx context.Context, snapshot map[int64]int64) (storage.Order, error) {
	order, err := s.store.CreateOrder(ctx, snapshot)
	if err != nil {
		return storage.Order{}, err
	}

	s.mu.Lock()
	s.orders[order.ID] = order
	s.mu.Unlock()
	return order, nil
}

// GetOrder reads an order through to the store, refreshing the cached copy.
func (s *System) GetOrder(ctx context.Context, id int64) (storage.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return storage.Order{}, err
	}

	s.mu.Lock()
	s.orders[id] = order
	s.mu.Unlock()
	return order, nil
}

// ListOrders refreshes the order cache from the store and returns all orders
// sorted by id, so every listing reflects the latest persisted state across
// sessions.
func (s *System) ListOrders(ctx context.Context) ([]storage.Order, error) {
	orders, err := s.store.ListOrders(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = orders
	s.mu.Unlock()

	sorted := make([]storage.Order, 0, len(orders))
	for _, order := range orders {
		sorted = append(sorted, order)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })
	return sorted, nil
}

// MarkReady stamps the current time on an order's ready field. The write is
// last-writer-wins; concurrent calls both succeed and the later timestamp
// lands.
func (s *System) MarkReady(ctx context.Context, id int64) (storage.Order, error) {
	order, err := s.store.GetOrder(ctx, id)
	if err != nil {
		return storage.Order{}, err
	}

	readyAt := time.Now().UTC().Truncate(time.Second)
	if _, err := s.store.MarkOrderReady(ctx, id, readyAt); err != nil {
		return storage.Order{}, err
	}
	order.ReadyAt = &readyAt

	s.mu.Lock()
	s.orders[id] = order
	s.mu.Unlock()
	return order, nil
}

func (s *System) reloadMenu(ctx context.Context) error {
	items, err := s.store.ListMenuItems(ctx)
	if err != nil {
		return fmt.Errorf("load menu items: %w", err)
	}
	menu := make(map[int64]storage.MenuItem, len(items))
	for _, item := range items {
		menu[item.ID] = item
	}

	s.mu.Lock()
	s.menu = menu
	s.mu.Unlock()
	return nil
}
