// Package store holds the sqlx-backed data stores. No handler queries the
// database directly; all access goes through a store.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNameTaken is returned when an item name already exists.
	ErrNameTaken = errors.New("item name is already taken")
)

// ItemStoreIface exposes all item data operations.
type ItemStoreIface interface {
	Create(ctx context.Context, name, description, visibility string) (*Item, error)
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context) ([]*Item, error)
	ListByVisibility(ctx context.Context, visibility string) ([]*Item, error)
	Delete(ctx context.Context, id string) error
}
