package middleware

import (
	"net"
	"net/http"
	"strconv"
	"time"

	"matrimony-service/pkg/cache"
	"matrimony-service/pkg/response"

	"go.uber.org/zap"
)

// KeyFunc names the caller a request is counted against.
type KeyFunc func(r *http.Request) string

// ByIP counts per remote address. Behind a trusted proxy, mount
// chi's RealIP first so RemoteAddr is the client's address.
func ByIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}

// ByUser counts per authenticated user and falls back to ByIP. It only sees
// a user when mounted after Optional or RequireRoles.
func ByUser(r *http.Request) string {
	if uid, ok := GetUserID(r.Context()); ok {
		return "uid:" + uid
	}
	return ByIP(r)
}

// RateLimiter counts requests per key in redis and blocks a key for
// blockDuration once limit is exceeded within window. Redis failures let the
// request through.
func RateLimiter(c *cache.Cache, limit int, window, blockDuration time.Duration, namespace string, keyFn KeyFunc, logger *zap.Logger) func(http.Handler) http.Handler {
	blockedNS := namespace + ":blocked"

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := keyFn(r)

			if blocked, _ := c.Get(ctx, blockedNS, key); blocked == "1" {
				ttl, _ := c.GetTTL(ctx, blockedNS, key)
				w.Header().Set("Retry-After", strconv.Itoa(int(ttl.Seconds())))
				response.Error(w, http.StatusTooManyRequests, "Too Many Requests. Try again in "+ttl.String())
				return
			}

			count, err := c.IncrWithExpire(ctx, namespace, key, window)
			if err != nil {
				logger.Warn("rate limiter unavailable", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			if count > int64(limit) {
				if err := c.Set(ctx, blockedNS, key, "1", blockDuration); err != nil {
					logger.Warn("rate limit block not stored", zap.Error(err))
				}
				logger.Warn("rate limit exceeded",
					zap.String("namespace", namespace),
					zap.String("key", key),
					zap.Int64("count", count),
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(blockDuration.Seconds())))
				response.Error(w, http.StatusTooManyRequests, "Too Many Requests. Blocked for "+blockDuration.String())
				return
			}

			ttl, _ := c.GetTTL(ctx, namespace, key)
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-int(count)))
			w.Header().Set("X-RateLimit-Reset", strconv.Itoa(int(ttl.Seconds())))

			next.ServeHTTP(w, r)
		})
	}
}
