package dto

import (
	"time"

	"yadtamar_backend/internal/models"
)

type CreateRequestRequest struct {
	// FamilyID is only honoured for administrators; families always create
	// requests for themselves.
	FamilyID           string     `json:"family_id" validate:"omitempty,userid"`
	RequestTypeID      *uint      `json:"request_type_id" validate:"required"`
	Description        *string    `json:"description" validate:"omitempty,max=2000"`
	CityID             *uint      `json:"city_id" validate:"required"`
	IsUrgent           bool       `json:"is_urgent"`
	ExpectedCompletion *time.Time `json:"expected_completion"`
	PreferredDatetime  *time.Time `json:"preferred_datetime"`
}

type UpdateRequestRequest struct {
	RequestTypeID      *uint      `json:"request_type_id"`
	Description        *string    `json:"description" validate:"omitempty,max=2000"`
	CityID             *uint      `json:"city_id"`
	IsUrgent           *bool      `json:"is_urgent"`
	ExpectedCompletion *time.Time `json:"expected_completion"`
	PreferredDatetime  *time.Time `json:"preferred_datetime"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,request-status"`
}

type AssignVolunteerRequest struct {
	VolunteerID      string     `json:"volunteer_id" validate:"required,userid"`
	EstimatedArrival *time.Time `json:"estimated_arrival"`
}

type RequestListQuery struct {
	Status     string `form:"status" validate:"omitempty,request-status"`
	CityID     *uint  `form:"city_id"`
	TypeID     *uint  `form:"request_type_id"`
	UrgentOnly bool   `form:"urgent"`
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
}

type RequestListResponse struct {
	Requests   []models.RequestView `json:"requests"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}
