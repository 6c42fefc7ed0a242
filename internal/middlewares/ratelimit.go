package middlewares

//go:generate mockgen -source=ratelimit.go -destination=mock_ratelimit.go -package=middlewares

import (
	"context"
	"math"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/gw-contacts/internal/logger"
)

// Limiter counts hits per key in fixed windows.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, time.Duration, error)
}

// RateLimitMiddleware allows limit requests per window for each caller of a
// route group. Authenticated callers are keyed by user id, anonymous ones by
// client IP. When the limiter is unavailable requests are let through.
func RateLimitMiddleware(limiter Limiter, scope string, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			key := scope + ":" + callerKey(r)

			allowed, retryAfter, err := limiter.Allow(ctx, key, limit, window)
			if err != nil {
				logger.FromContext(ctx).Errorw("rate limiter unavailable", "key", key, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				seconds := int(math.Ceil(retryAfter.Seconds()))
				if seconds < 1 {
					seconds = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(seconds))
				writeError(w, http.StatusTooManyRequests, "too many requests")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func callerKey(r *http.Request) string {
	if user := UserFromContext(r.Context()); user != nil {
		return "user:" + strconv.FormatInt(user.ID, 10)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return "ip:" + host
}
