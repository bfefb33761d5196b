// Package rediscache decorates the case repository with a read-through
// cache. Postgres stays the single source of truth: cache entries expire
// after a TTL and every successful mutation invalidates the affected keys,
// so a stale mirror can never outlive a write. Cache failures degrade to
// the inner repository and are only logged.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mcallister/ro-casework/internal/domain"
	"github.com/mcallister/ro-casework/internal/repository"
)

type CaseRepository struct {
	inner  repository.CaseRepository
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewCaseRepository(inner repository.CaseRepository, rdb *redis.Client, ttl time.Duration, logger *zap.Logger) *CaseRepository {
	return &CaseRepository{
		inner:  inner,
		rdb:    rdb,
		ttl:    ttl,
		logger: logger,
	}
}

func caseKey(ownerID, id string) string {
	return fmt.Sprintf("case:%s:%s", ownerID, id)
}

func listKey(ownerID string) string {
	return fmt.Sprintf("cases:%s", ownerID)
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) error {
	if err := r.inner.Create(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.OwnerID, c.ID)
	return nil
}

func (r *CaseRepository) GetByID(ctx context.Context, ownerID, id string) (*domain.Case, error) {
	key := caseKey(ownerID, id)

	if cached, err := r.rdb.Get(ctx, key).Result(); err == nil {
		c := &domain.Case{}
		if err := json.Unmarshal([]byte(cached), c); err == nil {
			return c, nil
		}
		r.logger.Warn("dropping undecodable cache entry", zap.String("key", key))
		r.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed, falling back to database", zap.Error(err))
	}

	c, err := r.inner.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, c)
	return c, nil
}

func (r *CaseRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Case, error) {
	key := listKey(ownerID)

	if cached, err := r.rdb.Get(ctx, key).Result(); err == nil {
		var cases []*domain.Case
		if err := json.Unmarshal([]byte(cached), &cases); err == nil {
			return cases, nil
		}
		r.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.logger.Warn("cache read failed, falling back to database", zap.Error(err))
	}

	cases, err := r.inner.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	r.store(ctx, key, cases)
	return cases, nil
}

func (r *CaseRepository) Update(ctx context.Context, c *domain.Case) error {
	if err := r.inner.Update(ctx, c); err != nil {
		return err
	}
	r.invalidate(ctx, c.OwnerID, c.ID)
	return nil
}

func (r *CaseRepository) Delete(ctx context.Context, ownerID, id string) error {
	if err := r.inner.Delete(ctx, ownerID, id); err != nil {
		return err
	}
	r.invalidate(ctx, ownerID, id)
	return nil
}

func (r *CaseRepository) store(ctx context.Context, key string, v any) {
	encoded, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := r.rdb.Set(ctx, key, encoded, r.ttl).Err(); err != nil {
		r.logger.Warn("cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *CaseRepository) invalidate(ctx context.Context, ownerID, id string) {
	if err := r.rdb.Del(ctx, caseKey(ownerID, id), listKey(ownerID)).Err(); err != nil {
		r.logger.Warn("cache invalidation failed", zap.Error(err))
	}
}
