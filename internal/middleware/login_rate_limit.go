package middleware

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/Roosterfan/trailhub/internal/identity"
)

const (
	loginLimitPrefix  = "trailhub:login:"
	loginLimitWindow  = time.Minute
	defaultLoginLimit = 10
)

// LoginRateLimit caps login attempts within a one-minute window. Attempts are
// keyed by the account they target, using the same email normalisation as the
// user directory, or by client IP when the body names no account. It is a
// no-op without Redis and fails open when Redis errors.
func LoginRateLimit(cache *redis.Client, maxPerWindow int) fiber.Handler {
	if maxPerWindow <= 0 {
		maxPerWindow = defaultLoginLimit
	}
	return func(c *fiber.Ctx) error {
		if cache == nil {
			return c.Next()
		}

		var body struct {
			Email string `json:"email"`
		}
		_ = c.BodyParser(&body)
		subject := identity.NormalizeEmail(body.Email)
		if subject == "" {
			subject = "ip:" + c.IP()
		}

		ctx := c.UserContext()
		key := loginLimitPrefix + subject
		pipe := cache.TxPipeline()
		attempts := pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, loginLimitWindow)
		if _, err := pipe.Exec(ctx); err != nil {
			return c.Next()
		}
		if attempts.Val() > int64(maxPerWindow) {
			c.Set(fiber.HeaderRetryAfter, "60")
			return fiber.NewError(http.StatusTooManyRequests, "too many login attempts, try again later")
		}
		return c.Next()
	}
}
