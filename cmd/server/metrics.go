package main

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inflect_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	paradigmsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inflect_paradigms_total",
			Help: "Number of generated paradigms by word class",
		},
		[]string{"class"},
	)

	answerChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "inflect_answer_checks_total",
			Help: "Number of checked answers by outcome",
		},
		[]string{"result"},
	)
)

// metricsMiddleware counts requests per route pattern.
func metricsMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Next()
		endpoint := ctx.FullPath()
		if endpoint == "" {
			endpoint = "unknown"
		}
		httpRequestsTotal.WithLabelValues(
			ctx.Request.Method, endpoint, strconv.Itoa(ctx.Writer.Status())).Inc()
	}
}
