package middleware

import (
	"context"
	"time"

	"controle_financeiro/internal/infrastructure/stats"

	"github.com/gin-gonic/gin"
)

const statsRecordTimeout = 500 * time.Millisecond

type StatsRecorder interface {
	Record(ctx context.Context, ev stats.Event) error
}

// RequestStats counts every finished request. A failing recorder is logged
// and otherwise ignored.
func RequestStats(rec StatsRecorder) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		ev := stats.Event{
			Method: c.Request.Method,
			Route:  c.FullPath(),
			Status: c.Writer.Status(),
			At:     time.Now(),
		}

		ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request.Context()), statsRecordTimeout)
		defer cancel()
		if err := rec.Record(ctx, ev); err != nil {
			loggerFrom(c).Warn().Err(err).Str("component", "[stats]").Msg("record failed")
		}
	}
}
