package middleware

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Dorian-Reyes18/user-recolector/internal/api/metrics"
)

// WindowCounter abstracts the fixed-window store (Redis).
type WindowCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (count int64, remaining time.Duration, err error)
}

// RateLimit applies a global per-IP request ceiling over a fixed window.
// When the store is unreachable the request is allowed through; availability
// wins over strict limiting for this endpoint class.
func RateLimit(counter WindowCounter, limit int64, window time.Duration, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			count, remaining, err := counter.Incr(c.Request().Context(), ip, window)
			if err != nil {
				log.Warn().Err(err).Str("ip", ip).Msg("rate limit check failed, allowing request")
				return next(c)
			}

			if count > limit {
				metrics.RateLimitedTotal.Inc()
				c.Response().Header().Set("Retry-After", strconv.Itoa(int(remaining.Seconds())))
				return c.JSON(http.StatusTooManyRequests, map[string]string{
					"message": "too many requests from this IP, please try again later",
				})
			}

			return next(c)
		}
	}
}
