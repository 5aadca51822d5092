package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fakenews-api/internal/models"
	"fakenews-api/internal/repository"
)

// UsageRecorder creates a Gin middleware that records one usage row per
// API invocation. The row is opened before any handler work and
// finalized exactly once with the real status and latency, on every
// path out of the request including panics. Recording failures are
// logged and never fail the request itself.
func UsageRecorder(repo repository.APIUsageRepository, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		usage := &models.APIUsage{
			Endpoint:       c.FullPath(),
			Method:         c.Request.Method,
			IPAddress:      c.ClientIP(),
			ResponseStatus: http.StatusInternalServerError, // Placeholder until Finish
		}
		if ua := c.Request.UserAgent(); ua != "" {
			usage.UserAgent = &ua
		}
		if usage.Endpoint == "" {
			usage.Endpoint = c.Request.URL.Path
		}

		if err := repo.Begin(usage); err != nil {
			logger.Error("Failed to record API usage", zap.Error(err))
			c.Next()
			return
		}

		defer func() {
			status := c.Writer.Status()
			recovered := recover()
			if recovered != nil {
				// An aborted in-flight request still reaches Finish.
				status = http.StatusInternalServerError
			}

			elapsed := float64(time.Since(start)) / float64(time.Millisecond)
			if err := repo.Finish(usage.ID, status, elapsed); err != nil {
				logger.Error("Failed to finalize API usage record",
					zap.Int64("usage_id", usage.ID),
					zap.Error(err))
			}

			if recovered != nil {
				panic(recovered)
			}
		}()

		c.Next()
	}
}
