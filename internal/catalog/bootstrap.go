package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
	"github.com/acquisitions-lab/acquisitions/internal/core/storage"
	"golang.org/x/sync/singleflight"
)

// State is the bootstrapper lifecycle: NotChecked -> Initializing -> Ready,
// falling back to NotChecked when a run fails so the next call retries.
type State int32

const (
	StateNotChecked State = iota
	StateInitializing
	StateReady
)

func (s State) String() string {
	switch s {
	case StateNotChecked:
		return "not_checked"
	case StateInitializing:
		return "initializing"
	case StateReady:
		return "ready"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

const (
	bootstrapKey = "shop_products"

	// bootstrapTimeout bounds a run that no caller is waiting on anymore.
	bootstrapTimeout = 30 * time.Second
)

// Bootstrapper creates and seeds the catalog table on first use.
//
// Concurrent callers share one in-flight run via singleflight, so within a process the
// table is created once and seeded at most once. Across processes the seed statement's
// NOT EXISTS guard keeps a second instance from inserting duplicates.
type Bootstrapper struct {
	store         storage.ProductStore
	autoBootstrap bool
	seeds         []v1.NewProduct

	state atomic.Int32
	group singleflight.Group
}

// NewBootstrapper returns a bootstrapper that seeds the given rows. With autoBootstrap
// off, EnsureReady is a no-op and the table must come from migrations.
func NewBootstrapper(store storage.ProductStore, autoBootstrap bool, seeds []v1.NewProduct) *Bootstrapper {
	if seeds == nil {
		seeds = DefaultProducts()
	}
	return &Bootstrapper{
		store:         store,
		autoBootstrap: autoBootstrap,
		seeds:         seeds,
	}
}

func (b *Bootstrapper) State() State {
	return State(b.state.Load())
}

func (b *Bootstrapper) AutoBootstrap() bool {
	return b.autoBootstrap
}

// Reset forgets a previous successful run, e.g. after the table was dropped underneath us.
func (b *Bootstrapper) Reset() {
	b.state.CompareAndSwap(int32(StateReady), int32(StateNotChecked))
}

// EnsureReady makes sure the catalog table exists and holds at least the seed rows.
//
// The run itself is detached from ctx: a caller that gives up does not abort the
// bootstrap other callers are waiting on. The caller still returns early with ctx.Err().
func (b *Bootstrapper) EnsureReady(ctx context.Context) error {
	if !b.autoBootstrap || b.State() == StateReady {
		return nil
	}

	runCtx := context.WithoutCancel(ctx)
	ch := b.group.DoChan(bootstrapKey, func() (interface{}, error) {
		// Double-check after joining the flight; a run may have just finished.
		if b.State() == StateReady {
			return nil, nil
		}
		return nil, b.run(runCtx)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return notReady(true, res.Err)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bootstrapper) run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, bootstrapTimeout)
	defer cancel()

	b.state.Store(int32(StateInitializing))
	slog.Info("[Catalog] Bootstrapping shop_products table")

	if err := b.bootstrap(ctx); err != nil {
		b.state.Store(int32(StateNotChecked))
		slog.Error("[Catalog] Bootstrap failed", "error", err)
		return err
	}

	b.state.Store(int32(StateReady))
	slog.Info("[Catalog] Catalog ready")
	return nil
}

func (b *Bootstrapper) bootstrap(ctx context.Context) error {
	if err := b.store.EnsureProductSchema(ctx); err != nil {
		return err
	}

	count, err := b.store.CountProducts(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		slog.Debug("[Catalog] Table already populated, skipping seed", "rows", count)
		return nil
	}

	inserted, err := b.store.SeedProducts(ctx, b.seeds)
	if err != nil {
		return err
	}
	slog.Info("[Catalog] Seeded default products", "rows", inserted)
	return nil
}
