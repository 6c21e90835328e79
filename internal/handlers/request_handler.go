package handlers

import (
	"net/http"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/middleware"
	"yadtamar_backend/internal/services"
	"yadtamar_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	*BaseHandler
	requestService services.RequestService
}

func NewRequestHandler(base *BaseHandler, requestService services.RequestService) *RequestHandler {
	return &RequestHandler{
		BaseHandler:    base,
		requestService: requestService,
	}
}

func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	requests := r.Group("/requests")
	requests.Use(h.RequireAuth())
	{
		read := middleware.RequirePermission(auth.PermRequestsRead)
		write := middleware.RequirePermission(auth.PermRequestsWrite)

		requests.GET("", read, h.List)
		requests.GET("/:id", read, h.Get)
		requests.POST("", write, h.Create)
		requests.PUT("/:id", write, h.Update)
		requests.DELETE("/:id", write, h.Delete)
		requests.PATCH("/:id/status", read, h.ChangeStatus)
		requests.POST("/:id/assign", middleware.RequirePermission(auth.PermRequestsAssign), h.Assign)
	}
}

func (h *RequestHandler) Create(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.CreateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.requestService.Create(h.GetDB(c), caller, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *RequestHandler) Get(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	view, err := h.requestService.Get(h.GetDB(c), caller, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RequestHandler) List(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var query dto.RequestListQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	resp, err := h.requestService.List(h.GetDB(c), caller, query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *RequestHandler) Update(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.UpdateRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.requestService.Update(h.GetDB(c), caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RequestHandler) Delete(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	if err := h.requestService.Delete(h.GetDB(c), caller, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeStatus is open to every role that can read requests; the service
// decides whether this caller may make this particular transition.
func (h *RequestHandler) ChangeStatus(c *gin.Context) {
	caller, ok := h.Caller(c)
	if !ok {
		return
	}

	var req dto.ChangeStatusRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.requestService.ChangeStatus(h.GetDB(c), caller, c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *RequestHandler) Assign(c *gin.Context) {
	var req dto.AssignVolunteerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	view, err := h.requestService.Assign(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
