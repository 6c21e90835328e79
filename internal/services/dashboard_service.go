package services

import (
	"context"
	"time"

	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/metrics"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/pkg/apperrors"
)

// DashboardService answers the coordinator dashboard aggregations. Every
// call runs in its own read-only transaction; nothing is cached.
type DashboardService interface {
	CountByCity(ctx context.Context, q dto.AggregationQuery) (map[string]int64, error)
	CountByStatus(ctx context.Context, q dto.AggregationQuery) (map[string]int64, error)
	CountByType(ctx context.Context, q dto.AggregationQuery) (map[string]int64, error)
	CompletionTime(ctx context.Context, q dto.AggregationQuery) (map[string]float64, error)
}

type dashboardService struct {
	repo repositories.DashboardRepository
}

func NewDashboardService(repo repositories.DashboardRepository) DashboardService {
	return &dashboardService{repo: repo}
}

func (s *dashboardService) CountByCity(ctx context.Context, q dto.AggregationQuery) (map[string]int64, error) {
	return s.count(ctx, "city_count", repositories.DimensionCity, q)
}

func (s *dashboardService) CountByStatus(ctx context.Context, q dto.AggregationQuery) (map[string]int64, error) {
	return s.count(ctx, "status_count", repositories.DimensionStatus, q)
}

func (s *dashboardService) CountByType(ctx context.Context, q dto.AggregationQuery) (map[string]int64, error) {
	return s.count(ctx, "type_count", repositories.DimensionType, q)
}

func (s *dashboardService) count(ctx context.Context, name string, dim repositories.Dimension, q dto.AggregationQuery) (map[string]int64, error) {
	filter, err := toFilter(q)
	if err != nil {
		return nil, err
	}

	var counts map[string]int64
	err = s.run(ctx, name, func(tx repositories.Querier) error {
		if err := s.checkFilterNames(ctx, tx, filter); err != nil {
			return err
		}
		var err error
		counts, err = s.repo.CountBy(ctx, tx, dim, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *dashboardService) CompletionTime(ctx context.Context, q dto.AggregationQuery) (map[string]float64, error) {
	filter, err := toFilter(q)
	if err != nil {
		return nil, err
	}

	var times map[string]float64
	err = s.run(ctx, "completion_time", func(tx repositories.Querier) error {
		if err := s.checkFilterNames(ctx, tx, filter); err != nil {
			return err
		}
		var err error
		times, err = s.repo.CompletionTimes(ctx, tx, filter)
		return err
	})
	if err != nil {
		return nil, err
	}
	return times, nil
}

func (s *dashboardService) run(ctx context.Context, name string, fn func(tx repositories.Querier) error) error {
	start := time.Now()
	err := s.repo.ReadOnly(ctx, fn)
	metrics.DashboardQueryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	if err == nil {
		return nil
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	logger.CtxWithError(ctx, "dashboard aggregation failed", err, "aggregation", name)
	return apperrors.DatabaseError(err)
}

// checkFilterNames rejects filter values that name no row in their
// dimension table, so a typo is an error rather than an empty result.
func (s *dashboardService) checkFilterNames(ctx context.Context, tx repositories.Querier, filter repositories.AggregationFilter) error {
	named := []struct {
		dim   repositories.Dimension
		value *string
	}{
		{repositories.DimensionStatus, filter.Status},
		{repositories.DimensionType, filter.RequestType},
		{repositories.DimensionCity, filter.City},
	}
	for _, f := range named {
		if f.value == nil {
			continue
		}
		ok, err := s.repo.DimensionExists(ctx, tx, f.dim, *f.value)
		if err != nil {
			return err
		}
		if !ok {
			return apperrors.ErrUnknownFilterValue(string(f.dim), *f.value)
		}
	}
	return nil
}

func toFilter(q dto.AggregationQuery) (repositories.AggregationFilter, error) {
	if q.Start.IsZero() || q.End.IsZero() {
		return repositories.AggregationFilter{}, apperrors.ErrInvalidDateRange("start and end dates are required")
	}
	if q.Start.After(q.End) {
		return repositories.AggregationFilter{}, apperrors.ErrInvalidDateRange("start date must not be after end date")
	}
	return repositories.AggregationFilter{
		Start:       q.Start,
		End:         q.End,
		Status:      q.Status,
		RequestType: q.RequestType,
		City:        q.City,
	}, nil
}
