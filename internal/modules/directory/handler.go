package directory

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"anchorchain/internal/domain"
	"anchorchain/internal/pkg/response"
	"anchorchain/internal/pkg/validator"
	"anchorchain/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

/* ---------- MANUFACTURERS ---------- */

// GetManufacturers handles GET /api/v1/manufacturers with filters.
func (h *Handler) GetManufacturers(c *gin.Context) {
	page, err := repository.ParsePagination(c.Query("page"), c.Query("limit"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_PAGINATION",
			"page and limit must be positive integers (limit at most 100)")
		return
	}

	opts := ListOptions{
		CountryCode:   c.Query("countryCode"),
		Certification: c.Query("certification"),
		Grade:         c.Query("grade"),
		Search:        c.Query("search"),
		Page:          page,
	}

	manufacturers, total, err := h.service.List(c.Request.Context(), opts)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"manufacturers": manufacturers,
		"pagination": gin.H{
			"page":  page.Page,
			"limit": page.Limit,
			"total": total,
			"pages": page.Pages(total),
		},
	})
}

// GetManufacturerByID handles GET /api/v1/manufacturers/:id.
func (h *Handler) GetManufacturerByID(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Manufacturer not found")
			return
		}
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"manufacturer": m})
}

// CompareManufacturers handles GET /api/v1/manufacturers/compare?ids=a,b,c.
func (h *Handler) CompareManufacturers(c *gin.Context) {
	raw := c.Query("ids")
	if raw == "" {
		response.Error(c, http.StatusBadRequest, "INVALID_REQUEST", "ids query parameter is required")
		return
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}

	manufacturers, err := h.service.Compare(c.Request.Context(), ids)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"manufacturers": manufacturers})
}

// CreateManufacturer handles POST /api/v1/manufacturers.
func (h *Handler) CreateManufacturer(c *gin.Context) {
	var req CreateManufacturerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid request body", err.Error())
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Legal name and country code are required", fields)
		return
	}

	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"manufacturer": m})
}

/* ---------- SUB-ENTITIES ---------- */

// CreateCertification handles POST /api/v1/manufacturers/:id/certifications.
func (h *Handler) CreateCertification(c *gin.Context) {
	var req CreateCertificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid request body", err.Error())
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Missing required certification fields", fields)
		return
	}

	cert, err := h.service.AddCertification(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"certification": cert})
}

// CreateProduct handles POST /api/v1/manufacturers/:id/products.
func (h *Handler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid request body", err.Error())
		return
	}

	product, err := h.service.AddProduct(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"product": product})
}

// CreateFacility handles POST /api/v1/manufacturers/:id/facilities.
func (h *Handler) CreateFacility(c *gin.Context) {
	var req CreateFacilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_REQUEST",
			"Invalid request body", err.Error())
		return
	}

	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR",
			"Missing required facility fields", fields)
		return
	}

	facility, err := h.service.AddFacility(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"facility": facility})
}

/* ---------- REFERENCE DATA ---------- */

func (h *Handler) GetGrades(c *gin.Context) {
	grades := domain.ValidGrades()
	out := make([]string, len(grades))
	for i, g := range grades {
		out[i] = string(g)
	}
	response.Success(c, http.StatusOK, gin.H{"grades": out})
}

func (h *Handler) GetClassSocieties(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"class_societies": domain.ClassSocieties})
}

func (h *Handler) GetCategories(c *gin.Context) {
	categories := domain.ValidCategories()
	out := make([]string, len(categories))
	for i, cat := range categories {
		out[i] = string(cat)
	}
	response.Success(c, http.StatusOK, gin.H{"categories": out})
}

func (h *Handler) GetTreatments(c *gin.Context) {
	treatments := domain.ValidTreatments()
	out := make([]string, len(treatments))
	for i, t := range treatments {
		out[i] = string(t)
	}
	response.Success(c, http.StatusOK, gin.H{"treatments": out})
}

// GetChainWeight handles GET /api/v1/chain-weight?diameter=76&grade=U3.
// The figure is the solid-rod catalog estimate, not an engineering value.
func (h *Handler) GetChainWeight(c *gin.Context) {
	diameter, err := strconv.ParseFloat(c.Query("diameter"), 64)
	if err != nil || diameter <= 0 {
		response.Error(c, http.StatusBadRequest, "INVALID_DIAMETER",
			"diameter must be a positive number of millimeters")
		return
	}

	grade := domain.ChainGrade(c.Query("grade"))

	response.Success(c, http.StatusOK, gin.H{
		"diameter_mm":     diameter,
		"grade":           grade,
		"weight_kg_per_m": domain.ChainWeightKgPerMeter(diameter, grade),
	})
}

/* ---------- ROUTES ---------- */

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	manufacturers := r.Group("/manufacturers")
	{
		manufacturers.GET("", h.GetManufacturers)
		manufacturers.GET("/compare", h.CompareManufacturers)
		manufacturers.GET("/:id", h.GetManufacturerByID)
		manufacturers.POST("", h.CreateManufacturer)
		manufacturers.POST("/:id/certifications", h.CreateCertification)
		manufacturers.POST("/:id/products", h.CreateProduct)
		manufacturers.POST("/:id/facilities", h.CreateFacility)
	}

	reference := r.Group("/reference")
	{
		reference.GET("/grades", h.GetGrades)
		reference.GET("/class-societies", h.GetClassSocieties)
		reference.GET("/categories", h.GetCategories)
		reference.GET("/treatments", h.GetTreatments)
	}

	r.GET("/chain-weight", h.GetChainWeight)
}

/* ---------- ERROR HANDLING ---------- */

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, ErrDuplicate), errors.Is(err, gorm.ErrDuplicatedKey):
		response.Error(c, http.StatusConflict, "ALREADY_EXISTS", "Resource already exists")
	default:
		// Storage failures surface as a generic error without internal detail.
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "An internal error occurred")
	}
}
