package middleware

import (
	"sync"
	"time"

	"github.com/allenkiakshay/vessify/pkg/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CounterStore counts hits per key within a fixed window. Implementations may be
// shared between server instances or swapped out under test.
type CounterStore interface {
	Incr(key string, window time.Duration) (int, error)
}

type windowCounter struct {
	count   int
	resetAt time.Time
}

// MemoryCounterStore is an in-process CounterStore with per-key expiry.
type MemoryCounterStore struct {
	mu       sync.Mutex
	counters map[string]*windowCounter
}

func NewMemoryCounterStore() *MemoryCounterStore {
	return &MemoryCounterStore{
		counters: make(map[string]*windowCounter),
	}
}

func (s *MemoryCounterStore) Incr(key string, window time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	c, ok := s.counters[key]
	if !ok || now.After(c.resetAt) {
		c = &windowCounter{resetAt: now.Add(window)}
		s.counters[key] = c
	}
	c.count++
	return c.count, nil
}

// RateLimitMiddleware limits requests per authenticated user (falling back to
// client IP) within a fixed window.
func RateLimitMiddleware(store CounterStore, cfg *config.RateLimitConfig, logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key, _ := c.Locals("userID").(string)
		if key == "" {
			key = c.IP()
		}

		count, err := store.Incr(key, cfg.Window)
		if err != nil {
			// A broken counter store should not take the API down
			logger.Error("Rate limit store failure", zap.Error(err))
			return c.Next()
		}

		if count > cfg.Requests {
			logger.Warn("Rate limit exceeded", zap.String("key", key), zap.Int("count", count))
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests",
			})
		}

		return c.Next()
	}
}
