package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
)

// CreateOrder persists a new order and returns it with the assigned id.
// The insert and the id readback run under a single lock so concurrent
// creators never observe or produce duplicate ids.
func (s *Store) CreateOrder(ctx context.Context, items map[int64]int64) (storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return storage.Order{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Order{}, fmt.Errorf("storage is not configured")
	}
	if len(items) == 0 {
		return storage.Order{}, fmt.Errorf("order items are required")
	}
	for id, qty := range items {
		if qty <= 0 {
			return storage.Order{}, fmt.Errorf("order item %d quantity must be positive", id)
		}
	}

	snapshot := make(map[int64]int64, len(items))
	for id, qty := range items {
		snapshot[id] = qty
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return storage.Order{}, fmt.Errorf("encode order items: %w", err)
	}
	placedAt := time.Now().UTC().Truncate(time.Second)

	s.createMu.Lock()
	defer s.createMu.Unlock()

	result, err := s.sqlDB.ExecContext(
		ctx,
		"INSERT INTO orders (items, placed_at, ready_at) VALUES (?, ?, NULL)",
		string(payload),
		placedAt.Format(timeLayout),
	)
	if err != nil {
		return storage.Order{}, fmt.Errorf("create order: %w", err)
	}
	orderID, err := result.LastInsertId()
	if err != nil {
		return storage.Order{}, fmt.Errorf("read order id: %w", err)
	}

	return storage.Order{ID: orderID, Items: snapshot, PlacedAt: placedAt}, nil
}

// GetOrder returns one persisted order by id.
func (s *Store) GetOrder(ctx context.Context, id int64) (storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return storage.Order{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Order{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		"SELECT id, items, placed_at, ready_at FROM orders WHERE id = ?",
		id,
	)
	order, err := scanOrder(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Order{}, storage.ErrNotFound
		}
		return storage.Order{}, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ListOrders returns all persisted orders keyed by id.
func (s *Store) ListOrders(ctx context.Context) (map[int64]storage.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, items, placed_at, ready_at FROM orders ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make(map[int64]storage.Order)
	for rows.Next() {
		order, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list orders: %w", err)
		}
		orders[order.ID] = order
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// MarkOrderReady stamps the ready timestamp on one order. The update is
// last-writer-wins; concurrent calls both succeed and the final timestamp is
// whichever write lands last.
func (s *Store) MarkOrderReady(ctx context.Context, id int64, readyAt time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		"UPDATE orders SET ready_at = ? WHERE id = ?",
		readyAt.UTC().Truncate(time.Second).Format(timeLayout),
		id,
	)
	if err != nil {
		return 0, fmt.Errorf("mark order ready: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark order ready: %w", err)
	}
	return affected, nil
}

func scanOrder(scan func(...any) error) (storage.Order, error) {
	var order storage.Order
	var itemsBlob string
	var placedAt string
	var readyAt sql.NullString
	if err := scan(&order.ID, &itemsBlob, &placedAt, &readyAt); err != nil {
		return storage.Order{}, err
	}

	items := make(map[int64]int64)
	if err := json.Unmarshal([]byte(itemsBlob), &items); err != nil {
		return storage.Order{}, fmt.Errorf("decode order items: %w", err)
	}
	order.Items = items

	placed, err := time.Parse(timeLayout, placedAt)
	if err != nil {
		return storage.Order{}, fmt.Errorf("parse placed_at: %w", err)
	}
	order.PlacedAt = placed.UTC()

	if readyAt.Valid && readyAt.String != "" {
		ready, err := time.Parse(timeLayout, readyAt.String)
		if err != nil {
			return storage.Order{}, fmt.Errorf("parse ready_at: %w", err)
		}
		readyUTC := ready.UTC()
		order.ReadyAt = &readyUTC
	}
	return order, nil
}

var _ storage.OrderStore = (*Store)(nil)
