package app

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authapi "marketplace/cmd/internal/auth/api"
	"marketplace/cmd/internal/merchant"
	"marketplace/cmd/internal/metrics"
	"marketplace/cmd/internal/product"
)

// NewRouter assembles the gin engine: health and metrics endpoints plus the
// versioned API surface.
func NewRouter(
	log Logger,
	db *gorm.DB,
	auth *authapi.Handler,
	merchants *merchant.Handler,
	products *product.Handler,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), WithRequestLogging(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok\n")
	})

	r.GET("/health/ping", func(c *gin.Context) {
		if err := PingDB(c.Request.Context(), db, 2*time.Second); err != nil {
			log.Info("health.db.not_ready", "err", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "UP"})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api/v1")
	auth.Register(api)
	requireAuth := auth.RequireAuth()
	merchants.Register(api, requireAuth)
	products.Register(api, requireAuth)

	return r
}
