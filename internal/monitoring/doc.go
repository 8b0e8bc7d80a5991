/*
Package monitoring provides Prometheus metrics for the gateway.

It tracks HTTP requests, tool invocations (with per-kind error counters), and
library size by document format.

Usage:

	metrics := monitoring.NewMetrics()
	router.Use(monitoring.Middleware(metrics))

	timer := monitoring.NewTimer(metrics, "word", "word.create")
	// ... execute tool ...
	timer.Stop("success")

Metrics are exposed via the standard Prometheus endpoint:

	import "github.com/prometheus/client_golang/prometheus/promhttp"
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
*/
package monitoring
