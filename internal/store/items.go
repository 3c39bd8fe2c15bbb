package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mwhitten/apiforge/internal/metrics"
)

// Item represents a row in the items table.
type Item struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Visibility  string    `db:"visibility"`
	CreatedAt   time.Time `db:"created_at"`
}

// ItemStore is the sqlx-backed implementation of ItemStoreIface.
type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

// Create inserts a new item. Name uniqueness is enforced by the unique
// index; a collision surfaces as ErrNameTaken.
func (s *ItemStore) Create(ctx context.Context, name, description, visibility string) (*Item, error) {
	id := uuid.New().String()
	now := time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO items (id, name, description, visibility, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, name, description, visibility, now)
	if err != nil {
		if isUniqueConstraintError(err) {
			return nil, ErrNameTaken
		}
		return nil, err
	}

	metrics.ItemWritesTotal.WithLabelValues("create").Inc()
	return &Item{ID: id, Name: name, Description: description, Visibility: visibility, CreatedAt: now}, nil
}

// GetByID fetches a single item by its ID.
func (s *ItemStore) GetByID(ctx context.Context, id string) (*Item, error) {
	var item Item
	err := s.db.GetContext(ctx, &item, `SELECT * FROM items WHERE id = ?`, id)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// List returns all items ordered by name.
func (s *ItemStore) List(ctx context.Context) ([]*Item, error) {
	var items []*Item
	err := s.db.SelectContext(ctx, &items, `SELECT * FROM items ORDER BY name`)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// ListByVisibility returns items with the given visibility, ordered by name.
func (s *ItemStore) ListByVisibility(ctx context.Context, visibility string) ([]*Item, error) {
	var items []*Item
	err := s.db.SelectContext(ctx, &items, `
		SELECT * FROM items WHERE visibility = ? ORDER BY name
	`, visibility)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes an item by ID. Deleting a missing item returns ErrNotFound.
func (s *ItemStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	metrics.ItemWritesTotal.WithLabelValues("delete").Inc()
	return nil
}

// isUniqueConstraintError checks whether err indicates a unique constraint
// violation. Works across SQLite, PostgreSQL, and MySQL.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || // SQLite & PostgreSQL
		strings.Contains(msg, "duplicate entry") // MySQL
}
