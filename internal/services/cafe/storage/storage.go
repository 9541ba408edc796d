// Package storage defines persistence contracts for cafe ordering state.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a requested record is missing.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness-constrained record already exists.
	ErrAlreadyExists = errors.New("record already exists")
)

// MenuItem stores one orderable catalog entry. The identifier is unique and
// immutable once created; renames go through remove and re-add.
type MenuItem struct {
	ID   int64
	Name string
}

// Order stores one placed order. Items maps menu item ids to positive
// quantities and is frozen at creation. ReadyAt is nil until staff marks the
// order ready.
type Order struct {
	ID       int64
	Items    map[int64]int64
	PlacedAt time.Time
	ReadyAt  *time.Time
}

// MenuStore persists the menu catalog.
type MenuStore interface {
	// ListMenuItems returns the full catalog ordered by id.
	ListMenuItems(ctx context.Context) ([]MenuItem, error)
	// AddMenuItem inserts one item. A duplicate id surfaces as ErrAlreadyExists.
	AddMenuItem(ctx context.Context, id int64, name string) error
	// RemoveMenuItem deletes one item. A missing id surfaces as ErrNotFound.
	RemoveMenuItem(ctx context.Context, id int64) error
}

// OrderStore persists placed orders.
type OrderStore interface {
	// CreateOrder assigns a new monotonic id, stamps the current time and
	// persists the order as a single write.
	CreateOrder(ctx context.Context, items map[int64]int64) (Order, error)
	// GetOrder returns the authoritative persisted order, or ErrNotFound.
	GetOrder(ctx context.Context, id int64) (Order, error)
	// ListOrders returns all persisted orders keyed by id.
	ListOrders(ctx context.Context) (map[int64]Order, error)
	// MarkOrderReady sets the ready timestamp and reports rows affected;
	// zero rows means the id is absent.
	MarkOrderReady(ctx context.Context, id int64, readyAt time.Time) (int64, error)
}
