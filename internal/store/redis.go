package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shortloop/shortloop/internal/shortener"
)

// incrClicksScript increments the click counter only when the link still
// exists, so a concurrently expired key is reported as missing instead of
// being recreated by HINCRBY.
var incrClicksScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	redis.call("HINCRBY", KEYS[1], "clicks", 1)
	return 1
end
return 0
`)

// saveLinkScript writes the whole record and its TTL in one step, so a
// partially written hash can never claim a code.
var saveLinkScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1],
	"code", ARGV[1],
	"original_url", ARGV[2],
	"category", ARGV[3],
	"clicks", ARGV[4],
	"created_at", ARGV[5])
if ARGV[6] ~= "" then
	redis.call("HSET", KEYS[1], "expires_at", ARGV[6])
	redis.call("PEXPIREAT", KEYS[1], ARGV[7])
end
return 1
`)

// RedisStore is a Redis implementation of shortener.Repository. Each link is
// a hash under "link:{code}". Expiry relies on Redis key TTL (PEXPIREAT set
// at save time), so the background sweep has nothing left to remove.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a new Redis-backed link store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "link:",
	}
}

func (r *RedisStore) key(code shortener.Code) string {
	return r.prefix + string(code)
}

func (r *RedisStore) Save(ctx context.Context, link *shortener.Link) error {
	var expiresNanos, expiresMillis string

	if link.ExpiresAt != nil {
		expiresNanos = strconv.FormatInt(link.ExpiresAt.UnixNano(), 10)
		expiresMillis = strconv.FormatInt(link.ExpiresAt.UnixMilli(), 10)
	}

	created, err := saveLinkScript.Run(ctx, r.client, []string{r.key(link.Code)},
		string(link.Code),
		link.OriginalURL,
		link.Category,
		link.Clicks,
		link.CreatedAt.UnixNano(),
		expiresNanos,
		expiresMillis,
	).Int()
	if err != nil {
		return err
	}

	if created == 0 {
		return shortener.ErrConflict
	}

	return nil
}

func (r *RedisStore) GetByCode(ctx context.Context, code shortener.Code) (*shortener.Link, error) {
	result, err := r.client.HGetAll(ctx, r.key(code)).Result()
	if err != nil {
		return nil, err
	}

	if len(result) == 0 {
		return nil, shortener.ErrNotFound
	}

	link := &shortener.Link{
		Code:        code,
		OriginalURL: result["original_url"],
		Category:    result["category"],
	}

	if clicks, err := strconv.ParseInt(result["clicks"], 10, 64); err == nil {
		link.Clicks = clicks
	}

	if nanos, err := strconv.ParseInt(result["created_at"], 10, 64); err == nil {
		link.CreatedAt = time.Unix(0, nanos).UTC()
	}

	if raw, ok := result["expires_at"]; ok {
		if nanos, err := strconv.ParseInt(raw, 10, 64); err == nil {
			t := time.Unix(0, nanos).UTC()
			link.ExpiresAt = &t
		}
	}

	return link, nil
}

func (r *RedisStore) IncrementClicks(ctx context.Context, code shortener.Code) error {
	found, err := incrClicksScript.Run(ctx, r.client, []string{r.key(code)}).Int()
	if err != nil {
		return err
	}

	if found == 0 {
		return shortener.ErrNotFound
	}

	return nil
}

func (r *RedisStore) Delete(ctx context.Context, code shortener.Code) error {
	return r.client.Del(ctx, r.key(code)).Err()
}

func (r *RedisStore) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	// Redis removes expired keys itself via EXPIREAT set on Save.
	return 0, nil
}

// Compile-time check.
var _ shortener.Repository = (*RedisStore)(nil)
