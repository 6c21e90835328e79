package handlers

import (
	"net/http"

	"yadtamar_backend/internal/services"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/users")
	{
		users.POST("/signup/volunteer", h.SignupVolunteer)
		users.POST("/signup/family", h.SignupFamily)
		users.POST("/signin", h.Signin)
	}

	me := users.Group("/me")
	me.Use(h.RequireAuth())
	{
		me.GET("", h.GetMe)
		me.POST("/picture", h.UploadPicture)
	}
}

func (h *UserHandler) SignupVolunteer(c *gin.Context) {
	var req dto.SignupVolunteerRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.SignupVolunteer(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) SignupFamily(c *gin.Context) {
	var req dto.SignupFamilyRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.SignupFamily(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UserHandler) Signin(c *gin.Context) {
	var req dto.SigninRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	resp, err := h.userService.Signin(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *UserHandler) GetMe(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadPicture accepts a multipart "file" field.
func (h *UserHandler) UploadPicture(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		apperrors.HandleError(c, apperrors.ValidationError(map[string]string{"file": "This field is required"}))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.HandleServiceError(c, apperrors.NewBadRequestError("Unreadable upload"))
		return
	}
	defer file.Close()

	resp, err := h.userService.UploadProfilePicture(c.Request.Context(), h.GetDB(c), userID, services.ProfilePicture{
		Content:     file,
		Size:        fileHeader.Size,
		ContentType: fileHeader.Header.Get("Content-Type"),
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
