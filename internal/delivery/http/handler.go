package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/drivespec/backend/internal/domain"
	"github.com/drivespec/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	products    *usecase.ProductService
	comparisons *usecase.ComparisonService
}

// NewHandler creates a new HTTP handler
func NewHandler(products *usecase.ProductService, comparisons *usecase.ComparisonService) *Handler {
	return &Handler{
		products:    products,
		comparisons: comparisons,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	cacheEntries := 0
	if h.products != nil {
		cacheEntries = h.products.CacheStats().TotalEntries
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "healthy",
		"service":       "drivespec-backend",
		"version":       "1.0.0",
		"timestamp":     time.Now().Format(time.RFC3339),
		"cache_entries": cacheEntries,
	})
}

// GetProduct fetches spec data for one manufacturer/product pair
func (h *Handler) GetProduct(c *gin.Context) {
	manufacturer := c.Param("manufacturer")
	productID := c.Param("productId")

	record, err := h.products.Resolve(c.Request.Context(), manufacturer, productID)
	if err != nil {
		h.respondResolveError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// SearchCatalog searches registered products across manufacturers
func (h *Handler) SearchCatalog(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' required"})
		return
	}

	results := h.products.Search(query, c.Query("manufacturer"))

	c.JSON(http.StatusOK, gin.H{
		"results": results,
		"count":   len(results),
	})
}

// productRef identifies one side of a comparison request
type productRef struct {
	Manufacturer string `json:"manufacturer" binding:"required"`
	ProductID    string `json:"productId" binding:"required"`
}

// compareRequest is the POST /compare body
type compareRequest struct {
	Product1 *productRef `json:"product1" binding:"required"`
	Product2 *productRef `json:"product2" binding:"required"`
}

// CompareProducts resolves both products and returns their differences and
// per-side advantages
func (h *Handler) CompareProducts(c *gin.Context) {
	var req compareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Two products required for comparison"})
		return
	}

	product1, err := h.products.Resolve(c.Request.Context(), req.Product1.Manufacturer, req.Product1.ProductID)
	if err != nil {
		h.respondResolveError(c, err)
		return
	}

	product2, err := h.products.Resolve(c.Request.Context(), req.Product2.Manufacturer, req.Product2.ProductID)
	if err != nil {
		h.respondResolveError(c, err)
		return
	}

	c.JSON(http.StatusOK, h.comparisons.Compare(product1, product2))
}

// ClearCache empties the product cache
func (h *Handler) ClearCache(c *gin.Context) {
	h.products.ClearCache()
	c.JSON(http.StatusOK, gin.H{
		"message": "Cache cleared",
		"status":  "success",
	})
}

// CacheStats returns a diagnostic snapshot of the product cache
func (h *Handler) CacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.products.CacheStats())
}

// respondResolveError maps resolution failures to client-facing statuses
func (h *Handler) respondResolveError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrManufacturerNotSupported), errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrFetchFailed):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to fetch product page"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
