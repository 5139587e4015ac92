package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// VoteReconciliations 点赞/点踩对账次数，按目标类型和结果统计
	VoteReconciliations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vote_reconciliations_total",
			Help: "Total number of vote toggle reconciliations",
		},
		[]string{"target", "result"},
	)

	// ModerationResults 提问审核分类结果分布
	ModerationResults = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_moderation_results_total",
			Help: "Moderation labels returned for submitted questions",
		},
		[]string{"status"},
	)

	// CompletionDuration 外部大模型补全接口耗时
	CompletionDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_completion_duration_seconds",
			Help:    "Duration of chat completion API calls",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30},
		},
		[]string{"purpose"},
	)
)

func Init() {
	prometheus.MustRegister(RequestCounter)
	prometheus.MustRegister(RequestDuration)
	prometheus.MustRegister(VoteReconciliations)
	prometheus.MustRegister(ModerationResults)
	prometheus.MustRegister(CompletionDuration)
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
