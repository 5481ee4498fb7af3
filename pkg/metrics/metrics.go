// Package metrics 提供基于Prometheus的指标收集
//
// 核心概念：
// - **Counter（计数器）**：只增不减的累计值（如HTTP请求总数、购物车操作总数）
// - **Gauge（仪表盘）**：可增可减的瞬时值（如正在处理的HTTP请求数）
// - **Histogram（直方图）**：观测值的分布（如HTTP请求耗时，自动计算P50/P90/P99）
//
// 使用方式：
//
//	metrics.InitMetrics()
//	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// initialized 标记是否已初始化（防止重复注册）
	initialized bool

	// HTTP请求相关指标

	// HTTPRequestsTotal HTTP请求总数（Counter）
	// 标签：method（GET/POST）、path（/api/v1/books）、status（200/500）
	HTTPRequestsTotal *prometheus.CounterVec

	// HTTPRequestDuration HTTP请求耗时（Histogram）
	// 桶设置：1ms、10ms、100ms、500ms、1s、5s、10s
	HTTPRequestDuration *prometheus.HistogramVec

	// HTTPRequestsInProgress 正在处理的HTTP请求数（Gauge）
	HTTPRequestsInProgress prometheus.Gauge

	// 业务指标

	// CartMutationsTotal 购物车变更总数（Counter）
	// 标签：op（add/remove/update/clear）
	CartMutationsTotal *prometheus.CounterVec

	// AuthAttemptsTotal 认证操作总数（Counter）
	// 标签：op（sign_in/sign_up/sign_out/check_auth）、result（success/failure）
	AuthAttemptsTotal *prometheus.CounterVec

	// CatalogQueriesTotal 目录查询总数（Counter）
	// 标签：sort_by（newest/price-low/price-high/rating/title）
	CatalogQueriesTotal *prometheus.CounterVec
)

// InitMetrics 初始化所有Prometheus指标
//
// 必须在程序启动时调用一次，用于注册所有指标到全局Registry
func InitMetrics() {
	// 防止重复初始化
	if initialized {
		return
	}
	initialized = true

	// HTTP请求指标
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时（秒）",
			Buckets: []float64{0.001, 0.01, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInProgress = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_progress",
			Help: "正在处理的HTTP请求数",
		},
	)

	// 购物车指标
	CartMutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "购物车变更总数",
		},
		[]string{"op"},
	)

	// 认证指标
	AuthAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "auth_attempts_total",
			Help: "认证操作总数",
		},
		[]string{"op", "result"},
	)

	// 目录查询指标
	CatalogQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_queries_total",
			Help: "目录查询总数",
		},
		[]string{"sort_by"},
	)
}

// RecordCartMutation 记录一次购物车变更
func RecordCartMutation(op string) {
	if CartMutationsTotal != nil {
		CartMutationsTotal.WithLabelValues(op).Inc()
	}
}

// RecordAuthAttempt 记录一次认证操作
func RecordAuthAttempt(op string, success bool) {
	if AuthAttemptsTotal == nil {
		return
	}
	result := "success"
	if !success {
		result = "failure"
	}
	AuthAttemptsTotal.WithLabelValues(op, result).Inc()
}

// RecordCatalogQuery 记录一次目录查询
func RecordCatalogQuery(sortBy string) {
	if CatalogQueriesTotal != nil {
		CatalogQueriesTotal.WithLabelValues(sortBy).Inc()
	}
}
