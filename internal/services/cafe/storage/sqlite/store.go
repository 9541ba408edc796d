// Package sqlite provides a SQLite-backed cafe storage implementation.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/cafecursor/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage"
	"github.com/louisbranch/cafecursor/internal/services/cafe/storage/sqlite/migrations"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// timeLayout is the persisted timestamp format. Second precision is the
// round-trip guarantee; anything finer is dropped at write time.
const timeLayout = time.RFC3339

// Store persists the menu catalog and placed orders in SQLite.
type Store struct {
	sqlDB *sql.DB

	// createMu serializes order id assignment with the associated insert.
	// SQLite serializes writers internally, but the id readback must stay
	// paired with its own insert.
	createMu sync.Mutex
}

// defaultMenuItems is the catalog seeded into an empty store on first open.
var defaultMenuItems = []storage.MenuItem{
	{ID: 1, Name: "Black (Hot)"},
	{ID: 2, Name: "Black (Cold)"},
	{ID: 3, Name: "White (Hot)"},
	{ID: 4, Name: "White (Cold)"},
	{ID: 5, Name: "Mocha (Hot)"},
	{ID: 6, Name: "Mocha (Cold)"},
	{ID: 7, Name: "Hot Chocolate"},
	{ID: 8, Name: "Cold Chocolate"},
	{ID: 9, Name: "Espresso Tonic"},
	{ID: 10, Name: "Strawberry Latte"},
	{ID: 11, Name: "Vanilla Latte"},
	{ID: 12, Name: "Chocolate Cookies"},
	{ID: 13, Name: "Strawberry Cookies"},
}

// Open opens a SQLite cafe store, applies embedded migrations and seeds the
// default menu when the catalog is empty.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	if err := seedDefaultMenu(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("seed default menu: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// seedDefaultMenu populates the catalog exactly once, the first time the
// store is opened with zero menu rows. Later opens never re-seed, even after
// staff empties the menu again within the same process lifetime of the file.
func seedDefaultMenu(sqlDB *sql.DB) error {
	tx, err := sqlDB.BeginTx(context.Background(), nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}

	var count int64
	if err := tx.QueryRow("SELECT COUNT(*) FROM menu_items").Scan(&count); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("count menu items: %w", err)
	}
	if count > 0 {
		return tx.Rollback()
	}

	var seeded int64
	if err := tx.QueryRow("SELECT COUNT(*) FROM schema_migrations WHERE name = ?", seedMarker).Scan(&seeded); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("check seed marker: %w", err)
	}
	if seeded > 0 {
		return tx.Rollback()
	}

	for _, item := range defaultMenuItems {
		if _, err := tx.Exec("INSERT INTO menu_items (id, name) VALUES (?, ?)", item.ID, item.Name); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("insert default item %d: %w", item.ID, err)
		}
	}
	if _, err := tx.Exec(
		"INSERT INTO schema_migrations (name, applied_at) VALUES (?, ?)",
		seedMarker,
		time.Now().UTC().UnixMilli(),
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("record seed marker: %w", err)
	}
	return tx.Commit()
}

// seedMarker records the one-time default catalog seed alongside migrations.
const seedMarker = "seed_default_menu"

// ListMenuItems returns the full catalog ordered by id.
func (s *Store) ListMenuItems(ctx context.Context) ([]storage.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, "SELECT id, name FROM menu_items ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	defer rows.Close()

	var items []storage.MenuItem
	for rows.Next() {
		var item storage.MenuItem
		if err := rows.Scan(&item.ID, &item.Name); err != nil {
			return nil, fmt.Errorf("list menu items: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

// AddMenuItem inserts one catalog entry. Uniqueness is enforced by the
// primary key constraint alone so there is no check-then-insert race window.
func (s *Store) AddMenuItem(ctx context.Context, id int64, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("menu item name is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, "INSERT INTO menu_items (id, name) VALUES (?, ?)", id, name)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("add menu item: %w", err)
	}
	return nil
}

// RemoveMenuItem deletes one catalog entry.
func (s *Store) RemoveMenuItem(ctx context.Context, id int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM menu_items WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("remove menu item: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("remove menu item: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ storage.MenuStore = (*Store)(nil)
