package storage

import (
	"context"
	"errors"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
)

var (
	// ErrNotFound is returned when no row matches the requested key.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a unique constraint rejects an insert.
	ErrDuplicate = errors.New("record already exists")

	// ErrTableMissing is returned when the statement referenced a table that does not exist yet.
	// The postgres adapter maps SQLSTATE 42P01 (and the matching driver message) to this error.
	ErrTableMissing = errors.New("table does not exist")
)

// ProductStore persists catalog rows in the shop_products table.
type ProductStore interface {
	// EnsureProductSchema creates the table and its category index when missing.
	EnsureProductSchema(ctx context.Context) error
	CountProducts(ctx context.Context) (int64, error)

	// SeedProducts inserts the given rows in one statement, and only while the table is empty.
	// Returns the number of inserted rows.
	SeedProducts(ctx context.Context, products []v1.NewProduct) (int64, error)

	// ListProducts returns every row ordered by category ASC, created_at DESC.
	ListProducts(ctx context.Context) ([]*v1.Product, error)
	CreateProduct(ctx context.Context, product *v1.NewProduct) (*v1.Product, error)

	// UpdateProduct applies a non-empty patch and refreshes updated_at.
	// Returns ErrNotFound when id does not exist.
	UpdateProduct(ctx context.Context, id int64, patch v1.ProductPatch) (*v1.Product, error)

	// DeleteProduct removes the row and returns it. Returns ErrNotFound when id does not exist.
	DeleteProduct(ctx context.Context, id int64) (*v1.Product, error)
}

// UserStore persists accounts in the users table.
type UserStore interface {
	// CreateUser returns ErrDuplicate when the email is already registered.
	CreateUser(ctx context.Context, user *v1.NewUser) (*v1.User, error)
	GetUserByEmail(ctx context.Context, email string) (*v1.User, error)
	GetUserByID(ctx context.Context, id int64) (*v1.User, error)
}
