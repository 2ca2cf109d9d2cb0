package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/pixel-portfolio/utils/cache"
	"github.com/sahilchouksey/pixel-portfolio/utils/response"
)

// LoginAttemptWindow is how long failed attempts are remembered
const LoginAttemptWindow = 15 * time.Minute

// BruteForceProtection applies progressive lockouts to the admin login.
// A nil cache disables it.
type BruteForceProtection struct {
	redisCache *cache.RedisCache
}

// NewBruteForceProtection creates a new brute force protection instance
func NewBruteForceProtection(redisCache *cache.RedisCache) *BruteForceProtection {
	return &BruteForceProtection{
		redisCache: redisCache,
	}
}

// LockoutFor maps a failed-attempt count to a lockout duration
func LockoutFor(attempts int64) time.Duration {
	switch {
	case attempts >= 25:
		return 24 * time.Hour
	case attempts >= 10:
		return time.Hour
	case attempts >= 5:
		return 2 * time.Minute
	default:
		return 0
	}
}

func attemptKey(ip string) string { return "admin_login:attempts:" + ip }
func lockKey(ip string) string    { return "admin_login:lock:" + ip }

// CheckAndRecordAttempt rejects requests from locked out clients
func (b *BruteForceProtection) CheckAndRecordAttempt() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if b == nil || b.redisCache == nil {
			return c.Next()
		}

		key := lockKey(c.IP())
		locked, err := b.redisCache.Exists(c.UserContext(), key)
		if err != nil {
			// Redis unavailable, fall through to the global limiter
			return c.Next()
		}

		if locked {
			ttl, _ := b.redisCache.TTL(c.UserContext(), key)
			retryAfter := int(ttl.Seconds())
			if retryAfter < 0 {
				retryAfter = 60
			}

			c.Set(fiber.HeaderRetryAfter, fmt.Sprintf("%d", retryAfter))
			return response.TooManyRequests(c, fmt.Sprintf("Too many failed attempts. Try again in %d seconds", retryAfter))
		}

		return c.Next()
	}
}

// RecordFailedAttempt counts a failed login and locks the client out once
// the count crosses a threshold
func (b *BruteForceProtection) RecordFailedAttempt(c *fiber.Ctx, username string) {
	if b == nil || b.redisCache == nil {
		return
	}
	ctx := c.UserContext()
	ip := c.IP()

	attempts, err := b.redisCache.Increment(ctx, attemptKey(ip))
	if err != nil {
		return
	}
	if attempts == 1 {
		_ = b.redisCache.Expire(ctx, attemptKey(ip), LoginAttemptWindow)
	}

	lockDuration := LockoutFor(attempts)
	if lockDuration == 0 {
		return
	}

	_ = b.redisCache.Set(ctx, lockKey(ip), strings.ToLower(username), lockDuration)
}

// RecordSuccessfulAttempt clears failed attempts on successful login
func (b *BruteForceProtection) RecordSuccessfulAttempt(c *fiber.Ctx) {
	if b == nil || b.redisCache == nil {
		return
	}
	_ = b.redisCache.Delete(c.UserContext(), attemptKey(c.IP()), lockKey(c.IP()))
}
