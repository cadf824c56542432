package order

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// Cache is the slice of the cache client the repository needs.
// A miss surfaces as redis.Nil.
type Cache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
}

// CachedRepository wraps a Repository with a read-through cache on the
// per-user order list. Creating an order invalidates the owner's entry.
type CachedRepository struct {
	next   Repository
	cache  Cache
	logger *log.Logger
}

func NewCachedRepository(next Repository, c Cache, logger *log.Logger) *CachedRepository {
	return &CachedRepository{next: next, cache: c, logger: logger}
}

func userOrdersKey(userID string) string {
	return fmt.Sprintf("orders:user:%s", userID)
}

func (r *CachedRepository) Create(ctx context.Context, o *Order) error {
	if err := r.next.Create(ctx, o); err != nil {
		return err
	}

	if err := r.cache.Delete(ctx, userOrdersKey(o.UserID)); err != nil {
		r.logger.Printf("invalidate orders cache for %s: %v", o.UserID, err)
	}
	return nil
}

func (r *CachedRepository) ListByUser(ctx context.Context, userID string) ([]Order, error) {
	key := userOrdersKey(userID)

	var orders []Order
	err := r.cache.Get(ctx, key, &orders)
	if err == nil {
		return orders, nil
	}
	if err != redis.Nil {
		r.logger.Printf("orders cache read for %s: %v", userID, err)
	}

	orders, err = r.next.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Set(ctx, key, orders); err != nil {
		r.logger.Printf("orders cache write for %s: %v", userID, err)
	}
	return orders, nil
}
