package models

import "time"

type User struct {
	ID             string         `gorm:"type:char(9);primaryKey"`
	FirstName      string         `gorm:"type:varchar(50);not null"`
	LastName       string         `gorm:"type:varchar(50);not null"`
	PhoneNumber    string         `gorm:"type:varchar(20)"`
	Address        string         `gorm:"type:text"`
	CityID         *uint          `gorm:"index"`
	UserTypeID     uint           `gorm:"not null;index"`
	ProfilePicture *string        `gorm:"type:text"`
	IsApproved     bool           `gorm:"not null;default:false"`
	ApprovalStatus ApprovalStatus `gorm:"type:varchar(20);not null;default:'PENDING'"`
	ApprovedBy     *string        `gorm:"type:char(9)"`
	ApprovedAt     *time.Time
	CreatedAt      time.Time `gorm:"not null;default:now()"`
}

func (User) TableName() string { return "users" }

func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Authentication keeps credentials apart from the profile row. PasswordHash
// stays empty until an administrator approves the account.
type Authentication struct {
	UserID       string `gorm:"type:char(9);primaryKey"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:text;not null;default:''"`
}

func (Authentication) TableName() string { return "authentication" }

type Family struct {
	UserID         string `gorm:"type:char(9);primaryKey"`
	BuildingType   string `gorm:"type:varchar(50)"`
	FloorNumber    *int
	HasParking     bool `gorm:"not null;default:false"`
	HasElevator    bool `gorm:"not null;default:false"`
	IsPrivateHouse bool `gorm:"not null;default:false"`
}

func (Family) TableName() string { return "families" }

// Volunteer preferences are nullable; a missing preference never matches.
type Volunteer struct {
	UserID           string `gorm:"type:char(9);primaryKey"`
	PreferredCityID  *uint  `gorm:"index"`
	PreferredSkillID *uint  `gorm:"index"`
	LicenseLevelID   *uint
}

func (Volunteer) TableName() string { return "volunteers" }

// VolunteerCandidate is the joined read model used by matching.
type VolunteerCandidate struct {
	UserID           string
	FirstName        string
	LastName         string
	PreferredCityID  *uint
	PreferredSkillID *uint
	IsApproved       bool
	UserType         string
}

func (v VolunteerCandidate) Name() string {
	if v.LastName == "" {
		return v.FirstName
	}
	return v.FirstName + " " + v.LastName
}

// UserView is a user with its dimension names resolved for display.
type UserView struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	Email          string         `json:"email"`
	PhoneNumber    string         `json:"phone_number"`
	Address        string         `json:"address"`
	ProfilePicture *string        `json:"profile_picture,omitempty"`
	CityID         *uint          `json:"city_id"`
	CityName       *string        `json:"city"`
	UserTypeID     uint           `json:"user_type_id"`
	UserTypeName   string         `json:"user_type"`
	IsApproved     bool           `json:"is_approved"`
	ApprovalStatus ApprovalStatus `json:"status"`
	ApprovedAt     *time.Time     `json:"approved_at,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
}
