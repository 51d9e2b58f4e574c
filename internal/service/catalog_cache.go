package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	testCacheVersionKey = "catalog:tests:ver"
	testCacheKeyPrefix  = "catalog:tests:v"
	testCacheTTL        = 5 * time.Minute
)

// CatalogCache keeps serialized test listings in Redis. Invalidation bumps
// a version counter so stale keys simply age out via TTL instead of being
// scanned and deleted.
type CatalogCache struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewCatalogCache(redisClient *redis.Client, log *logrus.Logger) *CatalogCache {
	return &CatalogCache{redisClient: redisClient, log: log}
}

// GetTests loads a cached listing into dest. Returns false on miss or any
// Redis failure; the caller falls through to the database either way.
func (c *CatalogCache) GetTests(ctx context.Context, querySignature string, dest interface{}) bool {
	key, err := c.testKey(ctx, querySignature)
	if err != nil {
		return false
	}

	payload, err := c.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Catalog cache read failed (non-fatal): %+v", err)
		}
		return false
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		c.log.Warnf("Catalog cache payload corrupt, ignoring: %+v", err)
		return false
	}
	return true
}

// SetTests stores a listing under the current cache version
func (c *CatalogCache) SetTests(ctx context.Context, querySignature string, value interface{}) {
	key, err := c.testKey(ctx, querySignature)
	if err != nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warnf("Catalog cache marshal failed (non-fatal): %+v", err)
		return
	}

	if err := c.redisClient.Set(ctx, key, payload, testCacheTTL).Err(); err != nil {
		c.log.Warnf("Catalog cache write failed (non-fatal): %+v", err)
	}
}

// InvalidateTests bumps the version counter after an admin catalog write
func (c *CatalogCache) InvalidateTests(ctx context.Context) {
	if err := c.redisClient.Incr(ctx, testCacheVersionKey).Err(); err != nil {
		c.log.Warnf("Catalog cache invalidation failed (non-fatal): %+v", err)
	}
}

func (c *CatalogCache) testKey(ctx context.Context, querySignature string) (string, error) {
	version, err := c.redisClient.Get(ctx, testCacheVersionKey).Int64()
	if err != nil && err != redis.Nil {
		c.log.Warnf("Catalog cache version read failed (non-fatal): %+v", err)
		return "", err
	}
	return fmt.Sprintf("%s%d:%s", testCacheKeyPrefix, version, querySignature), nil
}
