package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/zogakzip-lab/backend/pkg/metric"
	"github.com/zogakzip-lab/backend/pkg/xcontext"
)

// Logger logs every request with its status and latency and records the
// request metrics.
func Logger(ctx context.Context) gin.HandlerFunc {
	return func(ginCtx *gin.Context) {
		begin := time.Now()
		ginCtx.Next()

		method := ginCtx.Request.Method
		path := ginCtx.FullPath()
		if path == "" {
			path = ginCtx.Request.URL.Path
		}

		elapsed := time.Since(begin)
		metric.PromCounters[metric.HTTPRequestTotal].
			WithLabelValues(method, path).Inc()
		metric.PromHistograms[metric.HTTPRequestDurationSeconds].
			WithLabelValues(method, path).Observe(elapsed.Seconds())

		xcontext.Logger(ctx).Infof("%s %s | %d | %s",
			method, path, ginCtx.Writer.Status(), elapsed)
	}
}
