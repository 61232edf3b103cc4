package catalog

import (
	"context"
	"errors"
	"log/slog"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
)

// Service exposes catalog CRUD. Every operation passes the bootstrap gate first.
type Service struct {
	store storage.ProductStore
	boot  *Bootstrapper
}

func NewService(store storage.ProductStore, autoBootstrap bool, seeds []v1.NewProduct) *Service {
	return &Service{
		store: store,
		boot:  NewBootstrapper(store, autoBootstrap, seeds),
	}
}

// Status reports the bootstrap state for health checks.
func (s *Service) Status() string {
	if !s.boot.AutoBootstrap() {
		return "migrations"
	}
	return s.boot.State().String()
}

// EnsureReady exposes the bootstrap gate, e.g. for warming up at startup.
func (s *Service) EnsureReady(ctx context.Context) error {
	return s.boot.EnsureReady(ctx)
}

// ListProducts returns all products ordered by category, newest first within a category.
func (s *Service) ListProducts(ctx context.Context) ([]*v1.Product, error) {
	if err := s.boot.EnsureReady(ctx); err != nil {
		return nil, err
	}

	products, err := s.store.ListProducts(ctx)
	if err != nil {
		return nil, s.classify(err)
	}
	return products, nil
}

func (s *Service) CreateProduct(ctx context.Context, product *v1.NewProduct) (*v1.Product, error) {
	if err := s.boot.EnsureReady(ctx); err != nil {
		return nil, err
	}

	created, err := s.store.CreateProduct(ctx, product)
	if err != nil {
		return nil, s.classify(err)
	}

	slog.Info("[Catalog] Product created", "product_id", created.ID, "name", created.Name)
	return created, nil
}

// UpdateProduct applies patch to the product. Returns ErrNoUpdates for an empty patch
// without touching storage, and storage.ErrNotFound when id does not exist.
func (s *Service) UpdateProduct(ctx context.Context, id int64, patch v1.ProductPatch) (*v1.Product, error) {
	if patch.Empty() {
		return nil, ErrNoUpdates
	}
	if err := s.boot.EnsureReady(ctx); err != nil {
		return nil, err
	}

	updated, err := s.store.UpdateProduct(ctx, id, patch)
	if err != nil {
		return nil, s.classify(err)
	}

	slog.Info("[Catalog] Product updated", "product_id", updated.ID)
	return updated, nil
}

// DeleteProduct removes the product. Returns storage.ErrNotFound when id does not exist.
func (s *Service) DeleteProduct(ctx context.Context, id int64) (*v1.Product, error) {
	if err := s.boot.EnsureReady(ctx); err != nil {
		return nil, err
	}

	removed, err := s.store.DeleteProduct(ctx, id)
	if err != nil {
		return nil, s.classify(err)
	}

	slog.Info("[Catalog] Product removed", "product_id", removed.ID, "name", removed.Name)
	return removed, nil
}

// classify maps a missing table to *NotReadyError. Other errors are returned unchanged.
func (s *Service) classify(err error) error {
	classified := classify(s.boot.AutoBootstrap(), err)
	if errors.Is(classified, ErrNotReady) {
		// The table vanished after a successful bootstrap; let the next call rebuild it.
		s.boot.Reset()
	}
	return classified
}
