package interview

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/deerk/mock-interviewer/internal/config"
)

const questionTTL = time.Hour

// QuestionCache stores generated question sets keyed by job description.
// Implemented by a Redis cache (prod) and a memory cache (tests).
type QuestionCache interface {
	Get(ctx context.Context, key string) ([]string, bool, error)
	Set(ctx context.Context, key string, questions []string, ttl time.Duration) error
}

// CacheKey is "questions:" plus the hex sha256 of title + description.
func CacheKey(jd JobDescription) string {
	sum := sha256.Sum256([]byte(jd.Title + jd.Description))
	return "questions:" + hex.EncodeToString(sum[:])
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) QuestionCache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	// Cached values are strict JSON string lists; anything else is treated
	// as a miss so a bad row gets regenerated instead of served or executed.
	var questions []string
	if err := json.Unmarshal([]byte(val), &questions); err != nil {
		config.WithContext(ctx).WithError(err).Warnf("Discarding corrupt cache entry %s", key)
		return nil, false, nil
	}
	return questions, true, nil
}

func (c *redisCache) Set(ctx context.Context, key string, questions []string, ttl time.Duration) error {
	payload, err := json.Marshal(questions)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, payload, ttl).Err()
}

type memoryEntry struct {
	questions []string
	expiresAt time.Time
}

type memoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

func NewMemoryCache() QuestionCache {
	return &memoryCache{entries: make(map[string]memoryEntry)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]string, bool, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, key)
		c.mu.Unlock()
		return nil, false, nil
	}

	questions := make([]string, len(entry.questions))
	copy(questions, entry.questions)
	return questions, true, nil
}

func (c *memoryCache) Set(_ context.Context, key string, questions []string, ttl time.Duration) error {
	stored := make([]string, len(questions))
	copy(stored, questions)

	c.mu.Lock()
	c.entries[key] = memoryEntry{questions: stored, expiresAt: time.Now().Add(ttl)}
	c.mu.Unlock()
	return nil
}
