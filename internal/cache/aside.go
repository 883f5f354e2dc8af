package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit, dest is populated from
// the cached JSON value; on a miss, load fills dest and the result is cached
// with the given TTL. When Redis is unavailable, load runs directly.
func Aside(ctx context.Context, key string, dest interface{}, ttl time.Duration, load func() error) error {
	if client == nil {
		return load()
	}

	val, err := client.Get(ctx, key).Result()
	if err == nil {
		if unmarshalErr := json.Unmarshal([]byte(val), dest); unmarshalErr == nil {
			return nil
		}
		// Corrupt entry: fall through to the loader and overwrite.
	} else if !errors.Is(err, redis.Nil) {
		// Redis error other than a miss: serve from the database.
		return load()
	}

	if err := load(); err != nil {
		return err
	}

	if data, marshalErr := json.Marshal(dest); marshalErr == nil {
		client.Set(ctx, key, data, ttl)
	}
	return nil
}

// Invalidate removes the given keys from the cache. A nil client is a no-op.
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	client.Del(ctx, keys...)
}

// InvalidateUser removes the cached entry for the given user.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidatePost removes the cached entry for the given post.
func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

// InvalidateProduct removes the cached entry for the given product.
func InvalidateProduct(ctx context.Context, productID uint) {
	Invalidate(ctx, ProductKey(productID))
}
