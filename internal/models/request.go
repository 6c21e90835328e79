package models

import "time"

type Request struct {
	ID                  string  `gorm:"type:char(9);primaryKey"`
	FamilyID            string  `gorm:"type:char(9);not null;index"`
	RequestTypeID       *uint   `gorm:"index"`
	Description         *string `gorm:"type:text"`
	CityID              *uint   `gorm:"index"`
	StatusID            uint    `gorm:"not null;index"`
	IsUrgent            bool    `gorm:"not null;default:false"`
	AssignedVolunteerID *string `gorm:"type:char(9);index"`
	ExpectedCompletion  *time.Time
	PreferredDatetime   *time.Time
	CreatedAt           time.Time `gorm:"not null;default:now();index"`
	CompletedAt         *time.Time
}

func (Request) TableName() string { return "requests" }

// RequestProcess is one volunteer's handling of a request. The completion
// timestamp reported by the dashboard is taken from here.
type RequestProcess struct {
	ID                uint   `gorm:"primaryKey"`
	RequestID         string `gorm:"type:char(9);not null;index"`
	VolunteerID       string `gorm:"type:char(9);not null;index"`
	StatusID          uint   `gorm:"not null"`
	VolunteerApproval bool   `gorm:"not null;default:false"`
	EstimatedArrival  *time.Time
	CompletedAt       *time.Time
	CreatedAt         time.Time `gorm:"not null;default:now()"`
}

func (RequestProcess) TableName() string { return "request_process" }

// RequestView is a request with city, type and status names resolved.
type RequestView struct {
	ID                  string     `json:"id"`
	FamilyID            string     `json:"family_id"`
	RequestTypeID       *uint      `json:"request_type_id"`
	RequestTypeName     *string    `json:"request_type"`
	Description         *string    `json:"description,omitempty"`
	CityID              *uint      `json:"city_id"`
	CityName            *string    `json:"city"`
	StatusID            uint       `json:"status_id"`
	StatusName          string     `json:"status"`
	IsUrgent            bool       `json:"is_urgent"`
	AssignedVolunteerID *string    `json:"assigned_volunteer_id,omitempty"`
	ExpectedCompletion  *time.Time `json:"expected_completion,omitempty"`
	PreferredDatetime   *time.Time `json:"preferred_datetime,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	CompletedAt         *time.Time `json:"completed_at,omitempty"`
}
