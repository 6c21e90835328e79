package dto

import "yadtamar_backend/internal/models"

// Catalogue bundles every dimension table for form population.
type Catalogue struct {
	Cities          []models.City          `json:"cities"`
	RequestTypes    []models.RequestType   `json:"request_types"`
	RequestStatuses []models.RequestStatus `json:"request_statuses"`
	Licenses        []models.License       `json:"licenses"`
	UserTypes       []models.UserType      `json:"user_types"`
}
