package handlers

import (
	"net/http"
	"strings"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/middleware"
	"yadtamar_backend/internal/services"
	"yadtamar_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.MatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(r *gin.RouterGroup) {
	match := r.Group("/match")
	match.Use(h.RequireAuth(), middleware.RequirePermission(auth.PermMatchRead))
	{
		match.GET("", h.MatchVolunteers)
	}
}

// MatchVolunteers ranks eligible volunteers for ?request_id=, best first.
func (h *MatchingHandler) MatchVolunteers(c *gin.Context) {
	requestID := strings.TrimSpace(c.Query("request_id"))
	if requestID == "" {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"request_id": "This field is required"}))
		return
	}

	matches, err := h.matchingService.MatchVolunteers(h.GetDB(c), requestID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, matches)
}
