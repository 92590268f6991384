// Package health provides liveness and readiness endpoints.
package health

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Checker serves the health endpoints. db may be nil for services
// without a database.
type Checker struct {
	db *gorm.DB
}

// NewChecker creates a new health Checker.
func NewChecker(db *gorm.DB) *Checker {
	return &Checker{db: db}
}

// RegisterRoutes registers health endpoints at the root level and, when
// basePath is set, under it as well so both direct and proxied probes
// work.
func (h *Checker) RegisterRoutes(router gin.IRouter, basePath string) {
	router.GET("/health/live", h.Liveness)
	router.GET("/health/ready", h.Readiness)
	router.GET("/health", h.Readiness)

	if basePath != "" {
		group := router.Group(basePath)
		group.GET("/health/live", h.Liveness)
		group.GET("/health/ready", h.Readiness)
		group.GET("/health", h.Readiness)
	}
}

// Liveness reports that the process is running. It never checks
// dependencies and always returns 200.
func (h *Checker) Liveness(c *gin.Context) {
	c.JSON(200, gin.H{"status": "alive"})
}

// Readiness reports whether the service can take traffic; it pings the
// database with a short timeout. Returns 200 when ready, 503 otherwise.
func (h *Checker) Readiness(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := gin.H{}
	isReady := true

	if h.db != nil {
		sqlDB, err := h.db.DB()
		if err != nil {
			checks["database"] = "error"
			isReady = false
		} else if err := sqlDB.PingContext(ctx); err != nil {
			checks["database"] = "disconnected"
			isReady = false
		} else {
			checks["database"] = "ok"
		}
	} else {
		checks["database"] = "not_configured"
	}

	if isReady {
		c.JSON(200, gin.H{"status": "ready", "checks": checks})
	} else {
		c.JSON(503, gin.H{"status": "not_ready", "checks": checks})
	}
}
