package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"smarthome/services/catalog"
	"smarthome/utils"
)

// CatalogHandler exposes the service catalog and decorator endpoints.
type CatalogHandler struct {
	CatalogService catalog.CatalogService
	Logger         *zap.Logger
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{CatalogService: svc, Logger: logger}
}

// ListServicesHandler handles GET /api/services.
func (h *CatalogHandler) ListServicesHandler(c *gin.Context) {
	services, err := h.CatalogService.ListServices()
	if err != nil {
		h.Logger.Error("Failed to list services", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch services", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(services),
		"data":    services,
	})
}

// GetServiceByIDHandler handles GET /api/services/:id. A miss returns a 404
// carrying a bounded sample of stored services to aid client debugging.
func (h *CatalogHandler) GetServiceByIDHandler(c *gin.Context) {
	id := c.Param("id")

	svc, err := h.CatalogService.GetServiceByID(id)
	if err != nil {
		var notFound catalog.ServiceNotFoundError
		if errors.As(err, &notFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success":   false,
				"error":     "Service not found",
				"available": notFound.Available,
			})
			return
		}
		h.Logger.Error("Failed to fetch service", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch service", err.Error())
		return
	}

	c.JSON(http.StatusOK, svc)
}

// ListCategoriesHandler handles GET /api/categories.
func (h *CatalogHandler) ListCategoriesHandler(c *gin.Context) {
	categories, err := h.CatalogService.ListCategories()
	if err != nil {
		h.Logger.Error("Failed to list categories", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch categories", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(categories),
		"data":    categories,
	})
}

// TopDecoratorsHandler handles GET /api/decorators.
func (h *CatalogHandler) TopDecoratorsHandler(c *gin.Context) {
	decorators, err := h.CatalogService.TopDecorators()
	if err != nil {
		h.Logger.Error("Failed to list decorators", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch decorators", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(decorators),
		"data":    decorators,
	})
}
