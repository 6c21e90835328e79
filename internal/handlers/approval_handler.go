package handlers

import (
	"net/http"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/middleware"
	"yadtamar_backend/internal/services"
	"yadtamar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApprovalHandler struct {
	*BaseHandler
	approvalService services.ApprovalService
}

func NewApprovalHandler(base *BaseHandler, approvalService services.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{
		BaseHandler:     base,
		approvalService: approvalService,
	}
}

func (h *ApprovalHandler) RegisterRoutes(r *gin.RouterGroup) {
	admin := r.Group("/admin/users")
	admin.Use(h.RequireAuth())
	{
		admin.GET("", middleware.RequirePermission(auth.PermUsersRead), h.ListUsers)
		admin.GET("/unapproved", middleware.RequirePermission(auth.PermUsersRead), h.ListUnapproved)
		admin.POST("/:id/approve", middleware.RequirePermission(auth.PermUsersApprove), h.Approve)
		admin.POST("/:id/reject", middleware.RequirePermission(auth.PermUsersApprove), h.Reject)
	}
}

func (h *ApprovalHandler) ListUsers(c *gin.Context) {
	var query dto.UserListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.approvalService.ListUsers(h.GetDB(c), query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApprovalHandler) ListUnapproved(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.approvalService.ListUnapproved(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Approve activates an account and mails its generated password. The mail
// is sent after commit and its failure does not affect the response.
func (h *ApprovalHandler) Approve(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.approvalService.Approve(c.Request.Context(), h.GetDB(c), adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApprovalHandler) Reject(c *gin.Context) {
	adminID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.approvalService.Reject(c.Request.Context(), h.GetDB(c), adminID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
