package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
)

// ProductAdapter implements storage.ProductStore for PostgreSQL.
//
// Statements are not prepared up front: shop_products may not exist until the catalog
// bootstrapper creates it, and preparing against a missing table fails.
type ProductAdapter struct {
	db *sql.DB
}

// NewProductAdapter creates a catalog adapter over an existing pool.
func NewProductAdapter(db *sql.DB) *ProductAdapter {
	return &ProductAdapter{db: db}
}

// EnsureProductSchema creates shop_products and its category index if absent. Idempotent.
func (a *ProductAdapter) EnsureProductSchema(ctx context.Context) error {
	if _, err := a.db.ExecContext(ctx, queryCreateProductsTable); err != nil {
		return fmt.Errorf("failed to create shop_products table: %w", classifyError(err))
	}
	if _, err := a.db.ExecContext(ctx, queryCreateProductsCategoryIndex); err != nil {
		return fmt.Errorf("failed to create shop_products category index: %w", classifyError(err))
	}
	return nil
}

func (a *ProductAdapter) CountProducts(ctx context.Context) (int64, error) {
	var count int64
	if err := a.db.QueryRowContext(ctx, queryCountProducts).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", classifyError(err))
	}
	return count, nil
}

// SeedProducts inserts all rows in a single statement guarded by NOT EXISTS,
// so a concurrent seeder on another instance inserts nothing.
func (a *ProductAdapter) SeedProducts(ctx context.Context, products []v1.NewProduct) (int64, error) {
	if len(products) == 0 {
		return 0, nil
	}

	query, args := buildSeedQuery(products)
	res, err := a.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to seed products: %w", classifyError(err))
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read seeded row count: %w", err)
	}

	slog.Info("[Postgres] Seeded catalog", "rows", inserted)
	return inserted, nil
}

func (a *ProductAdapter) ListProducts(ctx context.Context) ([]*v1.Product, error) {
	rows, err := a.db.QueryContext(ctx, queryListProducts)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", classifyError(err))
	}
	defer rows.Close()

	products := make([]*v1.Product, 0)
	for rows.Next() {
		product, err := scanProductRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", classifyError(err))
	}

	return products, nil
}

func (a *ProductAdapter) CreateProduct(ctx context.Context, product *v1.NewProduct) (*v1.Product, error) {
	var createdBy sql.NullInt64
	if product.CreatedBy != nil {
		createdBy = sql.NullInt64{Int64: *product.CreatedBy, Valid: true}
	}

	row := a.db.QueryRowContext(ctx, queryInsertProduct,
		product.Name,
		string(product.Category),
		product.ImageURL,
		product.LinkURL,
		createdBy,
	)

	created, err := scanProductRow(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", classifyError(err))
	}

	slog.Debug("[Postgres] Created product", "product_id", created.ID, "category", created.Category)
	return created, nil
}

// UpdateProduct writes only the patched columns. The caller rejects empty patches.
func (a *ProductAdapter) UpdateProduct(ctx context.Context, id int64, patch v1.ProductPatch) (*v1.Product, error) {
	query, args := buildUpdateQuery(id, patch)

	updated, err := scanProductRow(a.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", classifyError(err))
	}
	return updated, nil
}

func (a *ProductAdapter) DeleteProduct(ctx context.Context, id int64) (*v1.Product, error) {
	deleted, err := scanProductRow(a.db.QueryRowContext(ctx, queryDeleteProduct, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", classifyError(err))
	}
	return deleted, nil
}
