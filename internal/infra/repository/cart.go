package repository

import (
	"context"
	"sync"

	"storefront-sim/internal/domain/cart"
	"storefront-sim/internal/infra"
	"storefront-sim/internal/pkg/errs"

	"github.com/google/uuid"
)

// CartRepository keeps cart ledgers in process memory, in creation order.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*cart.Ledger
	order []uuid.UUID
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[uuid.UUID]*cart.Ledger),
	}
}

func (r *CartRepository) Save(_ context.Context, ledger *cart.Ledger) error {
	if ledger == nil || ledger.ID() == uuid.Nil {
		return infra.WrapRepoErr("cart has no id", nil, infra.KindInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.carts[ledger.ID()]; ok && existing != ledger {
		return infra.WrapRepoErr("cart id already taken", nil, infra.KindDuplicateKey)
	}
	if _, ok := r.carts[ledger.ID()]; !ok {
		r.order = append(r.order, ledger.ID())
	}
	r.carts[ledger.ID()] = ledger
	return nil
}

func (r *CartRepository) FindByID(_ context.Context, id uuid.UUID) (*cart.Ledger, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ledger, ok := r.carts[id]
	if !ok {
		return nil, infra.WrapRepoErr("cart "+id.String(), errs.ErrCartNotFound, infra.KindNotFound)
	}
	return ledger, nil
}

// Delete drops the cart without touching stock; callers clear it first if units should return.
func (r *CartRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.carts[id]; !ok {
		return infra.WrapRepoErr("cart "+id.String(), errs.ErrCartNotFound, infra.KindNotFound)
	}
	delete(r.carts, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *CartRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}

// List returns every cart in creation order.
func (r *CartRepository) List(_ context.Context) []*cart.Ledger {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*cart.Ledger, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.carts[id])
	}
	return out
}
