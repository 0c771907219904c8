package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"craveconnect/internal/domain/model"
	repo "craveconnect/internal/repository"

	"golang.org/x/sync/errgroup"
)

const catalogParallelism = 8

// CatalogLookup resolves food ids to current unit prices.
type CatalogLookup struct {
	foods   repo.FoodRepository
	timeout time.Duration
}

func NewCatalogLookup(foods repo.FoodRepository, timeout time.Duration) *CatalogLookup {
	return &CatalogLookup{foods: foods, timeout: timeout}
}

// ResolvePrice reports exists=false for unknown or deleted foods.
func (c *CatalogLookup) ResolvePrice(ctx context.Context, foodID int64) (int64, bool, error) {
	f, err := c.foods.FindByID(ctx, foodID)
	if errors.Is(err, repo.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return f.Price, true, nil
}

// ResolvePrices looks up every distinct id concurrently under one deadline.
// Any missing food fails the whole batch with NotFound.
func (c *CatalogLookup) ResolvePrices(ctx context.Context, ids []int64) (model.PriceBook, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var (
		mu     sync.Mutex
		prices = make(model.PriceBook, len(ids))
		seen   = make(map[int64]struct{}, len(ids))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(catalogParallelism)
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			price, ok, err := c.ResolvePrice(gctx, id)
			if err != nil {
				return err
			}
			if !ok {
				return NotFound(fmt.Sprintf("food %d not found", id))
			}
			mu.Lock()
			prices[id] = price
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if _, ok := AsHTTPError(err); ok {
			return nil, err
		}
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, Timeout("catalog lookup timed out")
		}
		return nil, Unavailable("catalog unavailable")
	}
	return prices, nil
}
