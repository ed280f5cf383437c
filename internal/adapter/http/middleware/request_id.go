package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const HeaderRequestID = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID tags every request with an id (the caller's X-Request-ID when it
// sends one) and stores a child logger carrying it in the request context,
// where zerolog.Ctx finds it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(requestIDKey, id)
		c.Writer.Header().Set(HeaderRequestID, id)

		logger := log.Logger.With().Str(requestIDKey, id).Logger()
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	}
}

// getRequestID returns the id assigned by RequestID, or "".
func getRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

func loggerFrom(c *gin.Context) *zerolog.Logger {
	return zerolog.Ctx(c.Request.Context())
}
