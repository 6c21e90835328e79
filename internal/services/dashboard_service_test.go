package services

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"yadtamar_backend/internal/mocks"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/pkg/apperrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runInline executes the read-only callback without a real transaction.
func runInline(_ context.Context, fn func(repositories.Querier) error) error {
	return fn(nil)
}

func januaryQuery() dto.AggregationQuery {
	return dto.AggregationQuery{
		Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC),
	}
}

func TestDashboardService_CountByCity(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)
	svc := NewDashboardService(repo)

	q := januaryQuery()
	q.Status = strPtr("Completed")

	repo.EXPECT().ReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().DimensionExists(gomock.Any(), nil, repositories.DimensionStatus, "Completed").Return(true, nil)
	repo.EXPECT().CountBy(gomock.Any(), nil, repositories.DimensionCity, repositories.AggregationFilter{
		Start:  q.Start,
		End:    q.End,
		Status: q.Status,
	}).Return(map[string]int64{"Haifa": 3, "Tel Aviv": 1}, nil)

	counts, err := svc.CountByCity(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Haifa": 3, "Tel Aviv": 1}, counts)
}

func TestDashboardService_EmptyResult(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)
	svc := NewDashboardService(repo)

	repo.EXPECT().ReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().CountBy(gomock.Any(), nil, repositories.DimensionType, gomock.Any()).Return(map[string]int64{}, nil)

	counts, err := svc.CountByType(context.Background(), januaryQuery())
	require.NoError(t, err)
	assert.NotNil(t, counts)
	assert.Empty(t, counts)
}

func TestDashboardService_InvalidRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)
	svc := NewDashboardService(repo)

	tests := []struct {
		name string
		q    dto.AggregationQuery
	}{
		{"missing start", dto.AggregationQuery{End: time.Now()}},
		{"missing end", dto.AggregationQuery{Start: time.Now()}},
		{"start after end", dto.AggregationQuery{Start: time.Now(), End: time.Now().Add(-time.Hour)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CountByStatus(context.Background(), tt.q)
			appErr, ok := apperrors.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperrors.CodeInvalidDateRange, appErr.Code)
			assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
		})
	}
}

func TestDashboardService_UnknownFilterValue(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)
	svc := NewDashboardService(repo)

	q := januaryQuery()
	q.City = strPtr("Atlantis")

	repo.EXPECT().ReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().DimensionExists(gomock.Any(), nil, repositories.DimensionCity, "Atlantis").Return(false, nil)

	_, err := svc.CompletionTime(context.Background(), q)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeUnknownFilter, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode)
}

func TestDashboardService_CompletionTime(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)
	svc := NewDashboardService(repo)

	repo.EXPECT().ReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(runInline)
	repo.EXPECT().CompletionTimes(gomock.Any(), nil, gomock.Any()).Return(map[string]float64{"abc123def": 7200}, nil)

	times, err := svc.CompletionTime(context.Background(), januaryQuery())
	require.NoError(t, err)
	assert.Equal(t, 7200.0, times["abc123def"])
}

func TestDashboardService_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockDashboardRepository(ctrl)
	svc := NewDashboardService(repo)

	repo.EXPECT().ReadOnly(gomock.Any(), gomock.Any()).Return(errors.New("dashboard: begin tx: pool closed"))

	_, err := svc.CountByCity(context.Background(), januaryQuery())
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
}
