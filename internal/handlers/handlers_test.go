package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"yadtamar_backend/internal/algorithms"
	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/middleware"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/internal/validator"
	"yadtamar_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

var testTokens = auth.NewTokenManager("handler-secret", time.Hour)

func newTestRouter(register func(api *gin.RouterGroup, base *BaseHandler)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.DBMiddleware(&gorm.DB{}))
	register(r.Group("/api/v1"), NewBaseHandler(validator.New(), testTokens))
	return r
}

func tokenFor(t *testing.T, userID, role string) string {
	token, err := testTokens.GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func serve(r http.Handler, method, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type fakeDashboardService struct {
	got    dto.AggregationQuery
	counts map[string]int64
	err    error
}

func (f *fakeDashboardService) CountByCity(_ context.Context, q dto.AggregationQuery) (map[string]int64, error) {
	f.got = q
	return f.counts, f.err
}

func (f *fakeDashboardService) CountByStatus(_ context.Context, q dto.AggregationQuery) (map[string]int64, error) {
	f.got = q
	return f.counts, f.err
}

func (f *fakeDashboardService) CountByType(_ context.Context, q dto.AggregationQuery) (map[string]int64, error) {
	f.got = q
	return f.counts, f.err
}

func (f *fakeDashboardService) CompletionTime(_ context.Context, q dto.AggregationQuery) (map[string]float64, error) {
	f.got = q
	return map[string]float64{}, f.err
}

func TestDashboardHandler(t *testing.T) {
	svc := &fakeDashboardService{counts: map[string]int64{"Haifa": 2}}
	r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
		NewDashboardHandler(base, svc).RegisterRoutes(api)
	})
	admin := tokenFor(t, "adm000001", auth.RoleAdmin)

	t.Run("counts with filters", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31&status=Pending&type=Shopping", admin)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.JSONEq(t, `{"Haifa":2}`, w.Body.String())

		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), svc.got.Start)
		assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), svc.got.End)
		require.NotNil(t, svc.got.Status)
		assert.Equal(t, "Pending", *svc.got.Status)
		require.NotNil(t, svc.got.RequestType)
		assert.Equal(t, "Shopping", *svc.got.RequestType)
		assert.Nil(t, svc.got.City)
	})

	t.Run("aliases and explicit times", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/dashboard/type-count?start_date=2024-01-01T08:00:00Z&end_date=2024-01-02T08:00:00Z&request_type=Repairs", admin)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC), svc.got.End)
		assert.Equal(t, "Repairs", *svc.got.RequestType)
	})

	t.Run("empty result is an empty object", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/dashboard/completion-time?start=2024-01-01&end=2024-01-31", admin)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{}`, w.Body.String())
	})

	t.Run("missing range", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/dashboard/status-count?start=2024-01-01", admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_FAILED")
	})

	t.Run("malformed date", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/dashboard/status-count?start=yesterday&end=2024-01-01", admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown filter surfaces as 400", func(t *testing.T) {
		failing := &fakeDashboardService{err: apperrors.ErrUnknownFilterValue("city", "Atlantis")}
		r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
			NewDashboardHandler(base, failing).RegisterRoutes(api)
		})
		w := serve(r, http.MethodGet, "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31&city=Atlantis", admin)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "UNKNOWN_FILTER_VALUE")
	})

	t.Run("store failure is 500", func(t *testing.T) {
		failing := &fakeDashboardService{err: apperrors.DatabaseError(errors.New("conn reset"))}
		r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
			NewDashboardHandler(base, failing).RegisterRoutes(api)
		})
		w := serve(r, http.MethodGet, "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31", admin)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("volunteers are forbidden", func(t *testing.T) {
		w := serve(r, http.MethodGet, "/api/v1/dashboard/city-count?start=2024-01-01&end=2024-01-31", tokenFor(t, "vol000001", auth.RoleVolunteer))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

type fakeMatchingService struct {
	results []algorithms.MatchResult
	err     error
}

func (f *fakeMatchingService) MatchVolunteers(_ *gorm.DB, _ string) ([]algorithms.MatchResult, error) {
	return f.results, f.err
}

func TestMatchingHandler(t *testing.T) {
	volunteer := tokenFor(t, "vol000001", auth.RoleVolunteer)

	t.Run("ranked list", func(t *testing.T) {
		svc := &fakeMatchingService{results: []algorithms.MatchResult{
			{VolunteerID: "vol000002", VolunteerName: "Dana Levi", Score: 100},
			{VolunteerID: "vol000003", VolunteerName: "Avi Cohen", Score: 50},
		}}
		r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
			NewMatchingHandler(base, svc).RegisterRoutes(api)
		})

		w := serve(r, http.MethodGet, "/api/v1/match?request_id=req000001", volunteer)
		require.Equal(t, http.StatusOK, w.Code)

		var got []algorithms.MatchResult
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, 100, got[0].Score)
		assert.Equal(t, "Avi Cohen", got[1].VolunteerName)
	})

	t.Run("missing request id", func(t *testing.T) {
		r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
			NewMatchingHandler(base, &fakeMatchingService{}).RegisterRoutes(api)
		})
		w := serve(r, http.MethodGet, "/api/v1/match", volunteer)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown request", func(t *testing.T) {
		r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
			NewMatchingHandler(base, &fakeMatchingService{err: apperrors.ErrRequestNotFound}).RegisterRoutes(api)
		})
		w := serve(r, http.MethodGet, "/api/v1/match?request_id=missing00", volunteer)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("families cannot match", func(t *testing.T) {
		r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
			NewMatchingHandler(base, &fakeMatchingService{}).RegisterRoutes(api)
		})
		w := serve(r, http.MethodGet, "/api/v1/match?request_id=req000001", tokenFor(t, "fam000001", auth.RoleFamily))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous", func(t *testing.T) {
		r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
			NewMatchingHandler(base, &fakeMatchingService{}).RegisterRoutes(api)
		})
		w := serve(r, http.MethodGet, "/api/v1/match?request_id=req000001", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type fakeApprovalService struct {
	adminID, userID string
}

func (f *fakeApprovalService) ListUsers(_ *gorm.DB, _ dto.UserListQuery) (*dto.UserListResponse, error) {
	return &dto.UserListResponse{}, nil
}

func (f *fakeApprovalService) ListUnapproved(_ *gorm.DB, page, pageSize int) (*dto.UserListResponse, error) {
	return &dto.UserListResponse{Page: page, PageSize: pageSize}, nil
}

func (f *fakeApprovalService) Approve(_ context.Context, _ *gorm.DB, adminID, userID string) (*dto.ApprovalResponse, error) {
	f.adminID, f.userID = adminID, userID
	return &dto.ApprovalResponse{UserID: userID, Status: "APPROVED", DecidedBy: adminID, EmailQueue: true}, nil
}

func (f *fakeApprovalService) Reject(_ context.Context, _ *gorm.DB, _, userID string) (*dto.ApprovalResponse, error) {
	return nil, apperrors.ErrAlreadyDecided
}

func TestApprovalHandler(t *testing.T) {
	svc := &fakeApprovalService{}
	r := newTestRouter(func(api *gin.RouterGroup, base *BaseHandler) {
		NewApprovalHandler(base, svc).RegisterRoutes(api)
	})
	admin := tokenFor(t, "adm000001", auth.RoleAdmin)

	w := serve(r, http.MethodPost, "/api/v1/admin/users/usr000009/approve", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "adm000001", svc.adminID)
	assert.Equal(t, "usr000009", svc.userID)
	assert.Contains(t, w.Body.String(), `"email_queued":true`)

	w = serve(r, http.MethodPost, "/api/v1/admin/users/usr000009/reject", admin)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = serve(r, http.MethodGet, "/api/v1/admin/users/unapproved?page=2&page_size=500", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"page":2`)
	assert.Contains(t, w.Body.String(), `"page_size":100`)

	w = serve(r, http.MethodGet, "/api/v1/admin/users?status=MAYBE", admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = serve(r, http.MethodPost, "/api/v1/admin/users/usr000009/approve", tokenFor(t, "vol000001", auth.RoleVolunteer))
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthHandler(t *testing.T) {
	r := gin.New()
	NewHealthHandler(map[string]Pinger{
		"postgres": PingFunc(func(context.Context) error { return nil }),
		"redis":    PingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }),
	}).RegisterRoutes(r)

	w := serve(r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"postgres":"ok"`)
	assert.Contains(t, w.Body.String(), "degraded")
}
