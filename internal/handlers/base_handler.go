package handlers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/middleware"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/internal/validator"
	"yadtamar_backend/pkg/apperrors"
	"yadtamar_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type BaseHandler struct {
	validator *validator.Validator
	auth      gin.HandlerFunc
}

func NewBaseHandler(v *validator.Validator, tokens *auth.TokenManager) *BaseHandler {
	return &BaseHandler{
		validator: v,
		auth:      middleware.AuthMiddleware(tokens),
	}
}

// RequireAuth is the bearer-token guard shared by every protected group.
func (h *BaseHandler) RequireAuth() gin.HandlerFunc {
	return h.auth
}

// GetDB returns the pool or request transaction stored by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	dbKey := string(contextkeys.DBContextKey)

	val, ok := c.Get(dbKey)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context", "key", dbKey)
		panic("critical error: DBMiddleware did not set the db key")
	}

	db, ok := val.(*gorm.DB)
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db in context is not *gorm.DB", "key", dbKey, "type", fmt.Sprintf("%T", val))
		panic("critical error: db in context has incorrect type")
	}

	return db
}

func (h *BaseHandler) BindAndValidate_JSON(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindJSON(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind JSON body", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) BindAndValidate_Query(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := c.ShouldBindQuery(obj); err != nil {
		logger.CtxWithError(ctx, "Failed to bind query params", err, "path", c.Request.URL.Path)
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return h.validate(c, obj)
}

func (h *BaseHandler) validate(c *gin.Context, obj interface{}) bool {
	ctx := c.Request.Context()

	if err := h.validator.Validate(obj); err != nil {
		if vErr, ok := err.(*validator.ValidationError); ok {
			logger.CtxWarn(ctx, "Validation failed", "errors", vErr.Errors, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.ValidationError(vErr.Errors))
		} else {
			logger.CtxWithError(ctx, "Internal validator error", err, "path", c.Request.URL.Path)
			apperrors.HandleError(c, apperrors.InternalError(err))
		}
		return false
	}
	return true
}

func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	if appErr, ok := apperrors.AsAppError(err); ok {
		if appErr.HTTPCode >= 500 {
			logger.CtxWithError(ctx, "Service failure", err, "path", c.Request.URL.Path)
		} else {
			logger.CtxWarn(ctx, "Service error",
				"error", appErr.Message,
				"details", appErr.Details,
				"path", c.Request.URL.Path,
			)
		}
		apperrors.HandleError(c, appErr)
		return
	}

	logger.CtxWithError(ctx, "Internal server error", err, "path", c.Request.URL.Path)
	apperrors.HandleError(c, apperrors.InternalError(err))
}

func (h *BaseHandler) GetAndAuthorizeUserID(c *gin.Context) (string, bool) {
	userID := middleware.GetUserID(c)
	if userID == "" {
		logger.CtxWarn(c.Request.Context(), "Unauthorized access: userID not found in context",
			"path", c.Request.URL.Path,
			"ip", c.ClientIP(),
		)
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("User not authenticated"))
		return "", false
	}
	return userID, true
}

// Caller returns the authenticated user and role set by AuthMiddleware.
func (h *BaseHandler) Caller(c *gin.Context) (dto.Caller, bool) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return dto.Caller{}, false
	}
	return dto.Caller{UserID: userID, Role: middleware.GetRole(c)}, true
}

func ParseQueryInt(c *gin.Context, key string, defaultValue int) int {
	valueStr := c.Query(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func ParsePagination(c *gin.Context) (page int, pageSize int) {
	const defaultPage = 1
	const defaultPageSize = 20
	const maxPageSize = 100

	page = ParseQueryInt(c, "page", defaultPage)
	if page <= 0 {
		page = defaultPage
	}

	pageSize = ParseQueryInt(c, "page_size", defaultPageSize)
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return page, pageSize
}

// firstQuery returns the first non-empty query value among keys.
func firstQuery(c *gin.Context, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(c.Query(k)); v != "" {
			return v
		}
	}
	return ""
}

func optionalQuery(c *gin.Context, keys ...string) *string {
	if v := firstQuery(c, keys...); v != "" {
		return &v
	}
	return nil
}

// ParseAggregationQuery reads the mandatory inclusive date range and the
// optional name filters of a dashboard request. A date-only end covers the
// whole day.
func ParseAggregationQuery(c *gin.Context) (dto.AggregationQuery, error) {
	startStr := firstQuery(c, "start", "start_date")
	endStr := firstQuery(c, "end", "end_date")

	missing := map[string]string{}
	if startStr == "" {
		missing["start"] = "This field is required"
	}
	if endStr == "" {
		missing["end"] = "This field is required"
	}
	if len(missing) > 0 {
		return dto.AggregationQuery{}, apperrors.ValidationError(missing)
	}

	start, _, ok := validator.ParseDateWithPrecision(startStr)
	if !ok {
		return dto.AggregationQuery{}, apperrors.ValidationError(map[string]string{"start": "Must be an ISO-8601 date"})
	}
	end, dateOnly, ok := validator.ParseDateWithPrecision(endStr)
	if !ok {
		return dto.AggregationQuery{}, apperrors.ValidationError(map[string]string{"end": "Must be an ISO-8601 date"})
	}
	if dateOnly {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}

	return dto.AggregationQuery{
		Start:       start,
		End:         end,
		Status:      optionalQuery(c, "status"),
		RequestType: optionalQuery(c, "type", "request_type"),
		City:        optionalQuery(c, "city"),
	}, nil
}
