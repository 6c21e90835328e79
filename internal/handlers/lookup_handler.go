package handlers

import (
	"net/http"

	"yadtamar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// LookupHandler serves the public dimension tables used by client forms.
type LookupHandler struct {
	*BaseHandler
	lookupService services.LookupService
}

func NewLookupHandler(base *BaseHandler, lookupService services.LookupService) *LookupHandler {
	return &LookupHandler{
		BaseHandler:   base,
		lookupService: lookupService,
	}
}

func (h *LookupHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/cities", h.Cities)
	r.GET("/users/cities", h.Cities)
	r.GET("/request-types", h.RequestTypes)
	r.GET("/request-statuses", h.RequestStatuses)
	r.GET("/licenses", h.Licenses)
	r.GET("/catalogue", h.Catalogue)
}

func (h *LookupHandler) Cities(c *gin.Context) {
	cities, err := h.lookupService.Cities(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cities)
}

func (h *LookupHandler) RequestTypes(c *gin.Context) {
	types, err := h.lookupService.RequestTypes(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *LookupHandler) RequestStatuses(c *gin.Context) {
	statuses, err := h.lookupService.RequestStatuses(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (h *LookupHandler) Licenses(c *gin.Context) {
	licenses, err := h.lookupService.Licenses(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, licenses)
}

func (h *LookupHandler) Catalogue(c *gin.Context) {
	catalogue, err := h.lookupService.Catalogue(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogue)
}
