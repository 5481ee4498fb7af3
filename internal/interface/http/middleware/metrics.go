package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/storefront/pkg/metrics"
)

// Metrics HTTP指标采集中间件
// 采集维度：
// 1. 请求总数(方法、路径、状态码)
// 2. 请求耗时分布
// 3. 当前处理中的请求数
// 注意：使用c.FullPath()而非c.Request.URL.Path,避免路径参数把标签打散
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		if metrics.HTTPRequestsInProgress != nil {
			metrics.HTTPRequestsInProgress.Inc()
		}

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown" // 未匹配到路由(404)
		}
		status := strconv.Itoa(c.Writer.Status())

		if metrics.HTTPRequestsTotal != nil {
			metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		}
		if metrics.HTTPRequestDuration != nil {
			metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).
				Observe(time.Since(start).Seconds())
		}
		if metrics.HTTPRequestsInProgress != nil {
			metrics.HTTPRequestsInProgress.Dec()
		}
	}
}
