package bids

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"anchorchain/internal/domain"
	"anchorchain/internal/pkg/response"
	"anchorchain/internal/repository"
)

type BidStore interface {
	GetAll(ctx context.Context, status domain.BidStatus, p repository.Pagination) ([]domain.BidProject, int64, error)
}

type Handler struct {
	store BidStore
}

func NewHandler(store BidStore) *Handler {
	return &Handler{store: store}
}

// GetBids handles GET /api/v1/bids. Open projects are listed by default;
// status=all removes the constraint.
func (h *Handler) GetBids(c *gin.Context) {
	page, err := repository.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PAGINATION",
			"page and limit must be positive integers (limit at most 100)")
		return
	}

	status := domain.BidOpen
	if s := c.Query("status"); s == "all" {
		status = ""
	} else if s != "" {
		status = domain.BidStatus(s)
	}

	bids, total, err := h.store.GetAll(c.Request.Context(), status, page)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"bid_projects": bids,
		"pagination": gin.H{
			"page":  page.Page,
			"limit": page.Limit,
			"total": total,
			"pages": page.Pages(total),
		},
	})
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/bids", h.GetBids)
}
