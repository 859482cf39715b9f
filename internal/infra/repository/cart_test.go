//go:build unit

package repository

import (
	"context"
	"sync"
	"testing"

	"storefront-sim/internal/domain/cart"
	"storefront-sim/internal/infra"
	"storefront-sim/internal/pkg/errs"
	"storefront-sim/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository(t *testing.T) {
	ctx := context.Background()
	catalog := builder.NewCatalogBuilder().MustBuild(t)

	t.Run("save and find", func(t *testing.T) {
		repo := NewCartRepository()
		ledger := builder.NewCartBuilder(catalog).MustBuild(t)

		require.NoError(t, repo.Save(ctx, ledger))
		require.NoError(t, repo.Save(ctx, ledger))

		found, err := repo.FindByID(ctx, ledger.ID())
		require.NoError(t, err)
		assert.Same(t, ledger, found)
		assert.Equal(t, 1, repo.Count(ctx))
	})

	t.Run("missing cart", func(t *testing.T) {
		repo := NewCartRepository()

		_, err := repo.FindByID(ctx, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrCartNotFound))
		assert.True(t, infra.IsKind(err, infra.KindNotFound))

		err = repo.Delete(ctx, uuid.New())
		assert.True(t, errs.Is(err, errs.ErrCartNotFound))
	})

	t.Run("a different ledger under a taken id is rejected", func(t *testing.T) {
		repo := NewCartRepository()
		id := uuid.New()
		first := builder.NewCartBuilder(catalog)
		first.ID = id
		second := builder.NewCartBuilder(catalog)
		second.ID = id

		require.NoError(t, repo.Save(ctx, first.MustBuild(t)))
		err := repo.Save(ctx, second.MustBuild(t))
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("nil ledger", func(t *testing.T) {
		repo := NewCartRepository()
		err := repo.Save(ctx, nil)
		assert.True(t, infra.IsKind(err, infra.KindInvalidInput))
	})

	t.Run("delete keeps creation order of the rest", func(t *testing.T) {
		repo := NewCartRepository()
		ledgers := make([]*cart.Ledger, 3)
		for i := range ledgers {
			ledgers[i] = builder.NewCartBuilder(catalog).MustBuild(t)
			require.NoError(t, repo.Save(ctx, ledgers[i]))
		}

		require.NoError(t, repo.Delete(ctx, ledgers[1].ID()))

		assert.Equal(t, []*cart.Ledger{ledgers[0], ledgers[2]}, repo.List(ctx))
		assert.Equal(t, 2, repo.Count(ctx))
	})

	t.Run("concurrent saves", func(t *testing.T) {
		repo := NewCartRepository()
		var wg sync.WaitGroup
		for i := 0; i < 20; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = repo.Save(ctx, cart.NewLedger(uuid.New(), catalog, nil))
			}()
		}
		wg.Wait()

		assert.Equal(t, 20, repo.Count(ctx))
	})
}
