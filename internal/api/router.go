package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/UnknownOlympus/mesafe/internal/distance"
	"github.com/UnknownOlympus/mesafe/internal/models"
	"github.com/UnknownOlympus/mesafe/internal/places"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Calculator is the part of *distance.Calculator served over HTTP.
type Calculator interface {
	Calculate(fromName, toName string) models.DistanceResult
	Table() *places.Table
	Matrix() distance.Matrix
}

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the distance API.
type Handler struct {
	calc Calculator
	db   Pinger
	log  *slog.Logger
}

// NewRouter builds the gin engine with all routes and middleware.
// db may be nil when no database is configured; gatherer may be nil to disable /metrics.
func NewRouter(log *slog.Logger, calc Calculator, db Pinger, gatherer prometheus.Gatherer) *gin.Engine {
	h := &Handler{calc: calc, db: db, log: log}

	router := gin.New()
	router.Use(Recovery(log), RequestID(), AccessLog(log))

	router.GET("/healthz", h.Health)
	if gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	apiGroup := router.Group("/api")
	apiGroup.GET("/places", h.Places)
	apiGroup.GET("/distance", h.Distance)
	apiGroup.GET("/distance/matrix.xlsx", h.MatrixWorkbook)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
