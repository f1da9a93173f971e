package ops

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const version = "1.0.0"

type Stats interface {
	ManufacturerCount(ctx context.Context) (int64, error)
	NewsCount(ctx context.Context) (int64, error)
	NewsActiveCount(ctx context.Context) (int64, error)
	CertificationCount(ctx context.Context) (int64, error)
	CertificationValidCount(ctx context.Context, now time.Time) (int64, error)
	CertificationExpiredCount(ctx context.Context, now time.Time) (int64, error)
	Ping(ctx context.Context) error
}

type Handler struct {
	stats Stats
	now   func() time.Time
}

func NewHandler(stats Stats) *Handler {
	return &Handler{stats: stats, now: time.Now}
}

// Health handles GET /api/v1/health. The response shape is fixed; monitoring
// reads it as-is.
func (h *Handler) Health(c *gin.Context) {
	start := h.now()
	ctx := c.Request.Context()

	if err := h.stats.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "unhealthy",
			"timestamp":    h.now().UTC().Format(time.RFC3339),
			"responseTime": fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
			"error":        "database unreachable",
			"services": gin.H{
				"database": "unhealthy",
				"api":      "healthy",
			},
		})
		return
	}

	manufacturers, err1 := h.stats.ManufacturerCount(ctx)
	newsItems, err2 := h.stats.NewsCount(ctx)
	certifications, err3 := h.stats.CertificationCount(ctx)
	if err1 != nil || err2 != nil || err3 != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":       "unhealthy",
			"timestamp":    h.now().UTC().Format(time.RFC3339),
			"responseTime": fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
			"error":        "database queries failed",
			"services": gin.H{
				"database": "unhealthy",
				"api":      "healthy",
			},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":       "healthy",
		"timestamp":    h.now().UTC().Format(time.RFC3339),
		"responseTime": fmt.Sprintf("%dms", time.Since(start).Milliseconds()),
		"version":      version,
		"environment":  environment(),
		"database": gin.H{
			"status":         "connected",
			"manufacturers":  manufacturers,
			"newsItems":      newsItems,
			"certifications": certifications,
		},
		"services": gin.H{
			"database": "healthy",
			"api":      "healthy",
		},
	})
}

// Metrics handles GET /metrics. The metric names and line layout are fixed;
// scrapers depend on them byte-for-byte.
func (h *Handler) Metrics(c *gin.Context) {
	ctx := c.Request.Context()
	now := h.now()

	manufacturers, err1 := h.stats.ManufacturerCount(ctx)
	activeNews, err2 := h.stats.NewsActiveCount(ctx)
	certifications, err3 := h.stats.CertificationCount(ctx)
	validCerts, err4 := h.stats.CertificationValidCount(ctx, now)
	expiredCerts, err5 := h.stats.CertificationExpiredCount(ctx, now)
	for _, err := range []error{err1, err2, err3, err4, err5} {
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error": gin.H{
					"code":    "INTERNAL_ERROR",
					"message": "An internal error occurred",
				},
			})
			return
		}
	}

	lines := []string{
		"# HELP anchorchain_manufacturers_total Total number of manufacturers",
		"# TYPE anchorchain_manufacturers_total counter",
		fmt.Sprintf("anchorchain_manufacturers_total %d", manufacturers),
		"",
		"# HELP anchorchain_news_items_total Total number of active news items",
		"# TYPE anchorchain_news_items_total counter",
		fmt.Sprintf("anchorchain_news_items_total %d", activeNews),
		"",
		"# HELP anchorchain_certifications_total Total number of certifications",
		"# TYPE anchorchain_certifications_total counter",
		fmt.Sprintf("anchorchain_certifications_total %d", certifications),
		"",
		"# HELP anchorchain_certifications_active_total Total number of active certifications",
		"# TYPE anchorchain_certifications_active_total counter",
		fmt.Sprintf("anchorchain_certifications_active_total %d", validCerts),
		"",
		"# HELP anchorchain_certifications_expired_total Total number of expired certifications",
		"# TYPE anchorchain_certifications_expired_total counter",
		fmt.Sprintf("anchorchain_certifications_expired_total %d", expiredCerts),
		"",
		"# HELP anchorchain_application_info Application information",
		"# TYPE anchorchain_application_info gauge",
		fmt.Sprintf("anchorchain_application_info{version=%q,environment=%q} 1", version, environment()),
	}

	c.Header("Content-Type", "text/plain; version=0.0.4; charset=utf-8")
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.String(http.StatusOK, strings.Join(lines, "\n"))
}

func (h *Handler) RegisterRoutes(api *gin.RouterGroup, root *gin.Engine) {
	api.GET("/health", h.Health)
	root.GET("/metrics", h.Metrics)
}

func environment() string {
	if env := os.Getenv("APP_ENV"); env != "" {
		return env
	}
	return "development"
}
