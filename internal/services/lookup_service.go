package services

import (
	"context"

	"yadtamar_backend/internal/models"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/pkg/apperrors"

	"golang.org/x/sync/errgroup"
)

type LookupService interface {
	Catalogue(ctx context.Context) (*dto.Catalogue, error)
	Cities(ctx context.Context) ([]models.City, error)
	RequestTypes(ctx context.Context) ([]models.RequestType, error)
	RequestStatuses(ctx context.Context) ([]models.RequestStatus, error)
	Licenses(ctx context.Context) ([]models.License, error)
}

type lookupService struct {
	repo repositories.LookupRepository
}

func NewLookupService(repo repositories.LookupRepository) LookupService {
	return &lookupService{repo: repo}
}

// Catalogue loads every dimension table concurrently.
func (s *lookupService) Catalogue(ctx context.Context) (*dto.Catalogue, error) {
	var out dto.Catalogue
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		out.Cities, err = s.repo.ListCities(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.RequestTypes, err = s.repo.ListRequestTypes(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.RequestStatuses, err = s.repo.ListRequestStatuses(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.Licenses, err = s.repo.ListLicenses(gctx)
		return err
	})
	g.Go(func() (err error) {
		out.UserTypes, err = s.repo.ListUserTypes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return &out, nil
}

func (s *lookupService) Cities(ctx context.Context) ([]models.City, error) {
	cities, err := s.repo.ListCities(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return cities, nil
}

func (s *lookupService) RequestTypes(ctx context.Context) ([]models.RequestType, error) {
	types, err := s.repo.ListRequestTypes(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return types, nil
}

func (s *lookupService) RequestStatuses(ctx context.Context) ([]models.RequestStatus, error) {
	statuses, err := s.repo.ListRequestStatuses(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return statuses, nil
}

func (s *lookupService) Licenses(ctx context.Context) ([]models.License, error) {
	licenses, err := s.repo.ListLicenses(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return licenses, nil
}
