package sources

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"anchorchain/internal/domain"
	"anchorchain/internal/pkg/response"
)

type SourceStore interface {
	GetActive(ctx context.Context) ([]domain.SourceCatalog, error)
}

type Handler struct {
	store SourceStore
}

func NewHandler(store SourceStore) *Handler {
	return &Handler{store: store}
}

// GetSources handles GET /api/v1/sources. The catalog is configuration for an
// external crawler; this service only serves it.
func (h *Handler) GetSources(c *gin.Context) {
	items, err := h.store.GetActive(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"sources": items})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/sources", h.GetSources)
}
