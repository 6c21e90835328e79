package database

import (
	"errors"
	"fmt"

	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate creates or extends the schema from the models. It is a bootstrap
// helper for development and tests, not a versioned migration tool.
func AutoMigrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.City{},
		&models.UserType{},
		&models.RequestType{},
		&models.RequestStatus{},
		&models.License{},
		&models.User{},
		&models.Authentication{},
		&models.Family{},
		&models.Volunteer{},
		&models.Request{},
		&models.RequestProcess{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	logger.Info("AutoMigrate completed")
	return nil
}

// SeedLookups makes sure the canonical user types and request statuses exist.
func SeedLookups(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range []models.UserTypeName{models.UserTypeVolunteer, models.UserTypeFamily, models.UserTypeAdmin} {
			if err := tx.Where(models.UserType{Name: string(name)}).FirstOrCreate(&models.UserType{}).Error; err != nil {
				return fmt.Errorf("seed user type %s: %w", name, err)
			}
		}
		statuses := []models.RequestStatusName{
			models.RequestStatusPending,
			models.RequestStatusInProgress,
			models.RequestStatusCompleted,
			models.RequestStatusRejected,
		}
		for _, name := range statuses {
			if err := tx.Where(models.RequestStatus{Name: string(name)}).FirstOrCreate(&models.RequestStatus{}).Error; err != nil {
				return fmt.Errorf("seed request status %s: %w", name, err)
			}
		}
		return nil
	})
}

// SeedFirstAdmin creates the configured administrator once. Existing accounts
// with the same email are left untouched.
func SeedFirstAdmin(db *gorm.DB, email, passwordHash string) error {
	if email == "" || passwordHash == "" {
		logger.Warn("first admin credentials are not set, skipping admin seeding")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}
	defer tx.Rollback()

	var existing models.Authentication
	err := tx.Where("email = ?", email).First(&existing).Error
	if err == nil {
		logger.Info("admin user already exists, skipping creation", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check for admin user: %w", err)
	}

	var adminType models.UserType
	if err := tx.Where("type_name = ?", models.UserTypeAdmin).First(&adminType).Error; err != nil {
		return fmt.Errorf("admin user type missing: %w", err)
	}

	admin := &models.User{
		ID:             models.NewID(),
		FirstName:      "Admin",
		UserTypeID:     adminType.ID,
		IsApproved:     true,
		ApprovalStatus: models.ApprovalApproved,
	}
	if err := tx.Create(admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	if err := tx.Create(&models.Authentication{UserID: admin.ID, Email: email, PasswordHash: passwordHash}).Error; err != nil {
		return fmt.Errorf("failed to create admin credentials: %w", err)
	}

	logger.Info("created first admin user", "email", email, "user_id", admin.ID)
	return tx.Commit().Error
}
