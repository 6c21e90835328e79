package dto

import (
	"time"

	"yadtamar_backend/internal/models"
)

// SignupVolunteerRequest registers a volunteer. The account stays pending
// until an administrator approves it; the password is issued on approval.
type SignupVolunteerRequest struct {
	FirstName        string `json:"first_name" validate:"required,max=50"`
	LastName         string `json:"last_name" validate:"required,max=50"`
	Email            string `json:"email" validate:"required,email,max=100"`
	PhoneNumber      string `json:"phone_number" validate:"omitempty,phone"`
	Address          string `json:"address" validate:"max=255"`
	CityID           *uint  `json:"city_id"`
	PreferredCityID  *uint  `json:"preferred_city_id"`
	PreferredSkillID *uint  `json:"preferred_skill_id"`
	LicenseLevelID   *uint  `json:"license_level_id"`
}

type SignupFamilyRequest struct {
	FirstName      string `json:"first_name" validate:"required,max=50"`
	LastName       string `json:"last_name" validate:"required,max=50"`
	Email          string `json:"email" validate:"required,email,max=100"`
	PhoneNumber    string `json:"phone_number" validate:"omitempty,phone"`
	Address        string `json:"address" validate:"required,max=255"`
	CityID         *uint  `json:"city_id" validate:"required"`
	BuildingType   string `json:"building_type" validate:"max=50"`
	FloorNumber    *int   `json:"floor_number" validate:"omitempty,min=0,max=200"`
	HasParking     bool   `json:"has_parking"`
	HasElevator    bool   `json:"has_elevator"`
	IsPrivateHouse bool   `json:"is_private_house"`
}

type SignupResponse struct {
	UserID string                `json:"user_id"`
	Status models.ApprovalStatus `json:"status"`
}

type SigninRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string           `json:"access_token"`
	TokenType   string           `json:"token_type"`
	ExpiresIn   int64            `json:"expires_in"`
	User        *models.UserView `json:"user"`
}

type UserListResponse struct {
	Users      []models.UserView `json:"users"`
	Total      int64             `json:"total"`
	Page       int               `json:"page"`
	PageSize   int               `json:"page_size"`
	TotalPages int               `json:"total_pages"`
}

type UserListQuery struct {
	Status   string `form:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
	UserType string `form:"user_type" validate:"omitempty,oneof=VOLUNTEER FAMILY ADMIN"`
	Search   string `form:"search" validate:"max=100"`
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
}

type ApprovalResponse struct {
	UserID     string                `json:"user_id"`
	Status     models.ApprovalStatus `json:"status"`
	DecidedBy  string                `json:"decided_by"`
	DecidedAt  time.Time             `json:"decided_at"`
	EmailQueue bool                  `json:"email_queued"`
}

type ProfilePictureResponse struct {
	URL string `json:"url"`
}

// Caller identifies the authenticated user performing an operation.
type Caller struct {
	UserID string
	Role   string
}

func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
