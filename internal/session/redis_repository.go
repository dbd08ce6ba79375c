package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository implements Repository using Redis as the backing store.
// Each session is a hash under key "<prefix><sid>" with the fixed fields
// user, token and refreshToken, expiring with the session TTL.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository creates a Redis-based session repository. Prefix may be empty.
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "session:"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(sid string) string {
	return r.prefix + sid
}

func (r *RedisRepository) Save(ctx context.Context, sid string, rec *Record, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = time.Second
	}
	key := r.key(sid)
	pipe := r.client.TxPipeline()
	pipe.HSet(ctx, key,
		"user", rec.UserJSON,
		"token", rec.Token,
		"refreshToken", rec.RefreshToken,
	)
	pipe.Expire(ctx, key, ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *RedisRepository) Load(ctx context.Context, sid string) (*Record, error) {
	vals, err := r.client.HGetAll(ctx, r.key(sid)).Result()
	if err != nil {
		return nil, err
	}
	if len(vals) == 0 {
		return nil, nil
	}
	return &Record{
		UserJSON:     vals["user"],
		Token:        vals["token"],
		RefreshToken: vals["refreshToken"],
	}, nil
}

func (r *RedisRepository) Delete(ctx context.Context, sid string) error {
	return r.client.Del(ctx, r.key(sid)).Err()
}
