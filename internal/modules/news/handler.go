package news

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anchorchain/internal/pkg/response"
	"anchorchain/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// GetNews handles GET /api/v1/news with filters.
func (h *Handler) GetNews(c *gin.Context) {
	page, err := repository.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PAGINATION",
			"page and limit must be positive integers (limit at most 100)")
		return
	}

	opts := ListOptions{
		ManufacturerID: c.Query("manufacturerId"),
		Category:       c.Query("category"),
		Page:           page,
	}

	items, total, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"news_items": items,
		"pagination": gin.H{
			"page":  page.Page,
			"limit": page.Limit,
			"total": total,
			"pages": page.Pages(total),
		},
	})
}

// IngestBatch handles POST /api/v1/news/batch.
func (h *Handler) IngestBatch(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Request body must contain an items array", err.Error())
		return
	}
	if req.Items == nil {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "items must be an array")
		return
	}

	result, err := h.service.IngestBatch(c.Request.Context(), req.Items)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
		return
	}

	response.Success(c, http.StatusOK, result)
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	news := r.Group("/news")
	{
		news.GET("", h.GetNews)
		news.POST("/batch", h.IngestBatch)
	}
}
