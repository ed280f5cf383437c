package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"controle_financeiro/pkg"

	"github.com/gin-gonic/gin"
)

// Limiter decides whether the client identified by key may proceed.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

var errTooManyRequests = pkg.NewDomainErrorSimple("RATE_LIMITED", "Muitas requisições, tente novamente em instantes", http.StatusTooManyRequests)

// RateLimit rejects clients over their budget with 429 and a Retry-After
// header. Clients are keyed by remote address, or by the first
// X-Forwarded-For entry when trustXFF is set.
func RateLimit(l Limiter, trustXFF bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := clientKey(c.Request, trustXFF)

		allowed, retryAfter := l.Allow(key)
		if !allowed {
			loggerFrom(c).Warn().Str("component", "[ratelimit]").Str("key", key).Msg("request rejected")
			c.Header("Retry-After", strconv.Itoa(int(retryAfter.Round(time.Second).Seconds())))
			c.AbortWithStatusJSON(errTooManyRequests.HTTPStatus, errTooManyRequests.ToHTTPError())
			return
		}
		c.Next()
	}
}

func clientKey(r *http.Request, trustXFF bool) string {
	if trustXFF {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
