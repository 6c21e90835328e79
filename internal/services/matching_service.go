package services

import (
	"errors"

	"yadtamar_backend/internal/algorithms"
	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/metrics"
	"yadtamar_backend/internal/models"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MatchingService interface {
	// MatchVolunteers ranks every eligible volunteer against a request,
	// best score first.
	MatchVolunteers(db *gorm.DB, requestID string) ([]algorithms.MatchResult, error)
}

type matchingService struct {
	requestRepo   repositories.RequestRepository
	volunteerRepo repositories.VolunteerRepository
}

func NewMatchingService(
	requestRepo repositories.RequestRepository,
	volunteerRepo repositories.VolunteerRepository,
) MatchingService {
	return &matchingService{
		requestRepo:   requestRepo,
		volunteerRepo: volunteerRepo,
	}
}

func (s *matchingService) MatchVolunteers(db *gorm.DB, requestID string) ([]algorithms.MatchResult, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	request, err := s.requestRepo.FindByID(tx, requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	candidates, err := s.volunteerRepo.ListEligibleCandidates(tx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	results := algorithms.RankVolunteers(matchTarget(request), candidates)

	metrics.MatchRequestsTotal.Inc()
	for _, r := range results {
		metrics.MatchScores.Observe(float64(r.Score))
	}
	logger.Debug("ranked volunteers", "request_id", requestID, "candidates", len(candidates), "results", len(results))

	return results, nil
}

func matchTarget(r *models.Request) algorithms.MatchTarget {
	return algorithms.MatchTarget{
		CityID:        r.CityID,
		RequestTypeID: r.RequestTypeID,
	}
}
