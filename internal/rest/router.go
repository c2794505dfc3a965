package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwalzer/enigma/internal/metrics"
	"github.com/mwalzer/enigma/internal/rest/api"
)

func NewRouter(a *api.API, collector *metrics.Collector) *gin.Engine {
	registry := collector.GetRegistry()
	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/status", a.Status)
	router.POST("/api/encode", a.EncodeMessage)
	router.GET("/metrics", gin.WrapH(promhttp.InstrumentMetricHandler(
		registry,
		promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	)))
	return router
}
