package repositories

import (
	"context"
	"fmt"

	"yadtamar_backend/internal/models"

	"github.com/jmoiron/sqlx"
)

// LookupRepository reads the dimension tables used to populate client forms.
type LookupRepository interface {
	ListCities(ctx context.Context) ([]models.City, error)
	ListRequestTypes(ctx context.Context) ([]models.RequestType, error)
	ListRequestStatuses(ctx context.Context) ([]models.RequestStatus, error)
	ListLicenses(ctx context.Context) ([]models.License, error)
	ListUserTypes(ctx context.Context) ([]models.UserType, error)
}

type lookupRepository struct {
	db *sqlx.DB
}

func NewLookupRepository(db *sqlx.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) ListCities(ctx context.Context) ([]models.City, error) {
	cities := []models.City{}
	if err := r.db.SelectContext(ctx, &cities, `SELECT id, city_name FROM cities ORDER BY city_name`); err != nil {
		return nil, fmt.Errorf("lookup: list cities: %w", err)
	}
	return cities, nil
}

func (r *lookupRepository) ListRequestTypes(ctx context.Context) ([]models.RequestType, error) {
	types := []models.RequestType{}
	if err := r.db.SelectContext(ctx, &types, `SELECT id, type_name FROM request_types ORDER BY type_name`); err != nil {
		return nil, fmt.Errorf("lookup: list request types: %w", err)
	}
	return types, nil
}

func (r *lookupRepository) ListRequestStatuses(ctx context.Context) ([]models.RequestStatus, error) {
	statuses := []models.RequestStatus{}
	if err := r.db.SelectContext(ctx, &statuses, `SELECT id, status_name FROM request_status ORDER BY id`); err != nil {
		return nil, fmt.Errorf("lookup: list request statuses: %w", err)
	}
	return statuses, nil
}

func (r *lookupRepository) ListLicenses(ctx context.Context) ([]models.License, error) {
	licenses := []models.License{}
	if err := r.db.SelectContext(ctx, &licenses, `SELECT id, license_name FROM licenses ORDER BY id`); err != nil {
		return nil, fmt.Errorf("lookup: list licenses: %w", err)
	}
	return licenses, nil
}

func (r *lookupRepository) ListUserTypes(ctx context.Context) ([]models.UserType, error) {
	types := []models.UserType{}
	if err := r.db.SelectContext(ctx, &types, `SELECT id, type_name FROM user_types ORDER BY id`); err != nil {
		return nil, fmt.Errorf("lookup: list user types: %w", err)
	}
	return types, nil
}
