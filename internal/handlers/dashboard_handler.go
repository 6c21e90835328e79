package handlers

import (
	"net/http"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/middleware"
	"yadtamar_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	*BaseHandler
	dashboardService services.DashboardService
}

func NewDashboardHandler(base *BaseHandler, dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		BaseHandler:      base,
		dashboardService: dashboardService,
	}
}

func (h *DashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	dashboard := r.Group("/dashboard")
	dashboard.Use(h.RequireAuth(), middleware.RequirePermission(auth.PermDashboardRead))
	{
		dashboard.GET("/city-count", h.CountByCity)
		dashboard.GET("/status-count", h.CountByStatus)
		dashboard.GET("/type-count", h.CountByType)
		dashboard.GET("/completion-time", h.CompletionTime)
	}
}

func (h *DashboardHandler) CountByCity(c *gin.Context) {
	q, err := ParseAggregationQuery(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	counts, err := h.dashboardService.CountByCity(c.Request.Context(), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *DashboardHandler) CountByStatus(c *gin.Context) {
	q, err := ParseAggregationQuery(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	counts, err := h.dashboardService.CountByStatus(c.Request.Context(), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

func (h *DashboardHandler) CountByType(c *gin.Context) {
	q, err := ParseAggregationQuery(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	counts, err := h.dashboardService.CountByType(c.Request.Context(), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, counts)
}

// CompletionTime maps request id to seconds between creation and completion.
func (h *DashboardHandler) CompletionTime(c *gin.Context) {
	q, err := ParseAggregationQuery(c)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	elapsed, err := h.dashboardService.CompletionTime(c.Request.Context(), q)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, elapsed)
}
