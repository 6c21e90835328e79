package repositories

import (
	"errors"

	"yadtamar_backend/internal/models"

	"gorm.io/gorm"
)

var ErrVolunteerNotFound = errors.New("volunteer not found")

//go:generate mockgen -source=volunteer_repository.go -destination=../mocks/mock_volunteer_repository.go -package=mocks

type VolunteerRepository interface {
	// ListEligibleCandidates returns approved volunteers ordered by user id.
	ListEligibleCandidates(db *gorm.DB) ([]models.VolunteerCandidate, error)
	FindCandidate(db *gorm.DB, userID string) (*models.VolunteerCandidate, error)
}

type VolunteerRepositoryImpl struct{}

func NewVolunteerRepository() VolunteerRepository {
	return &VolunteerRepositoryImpl{}
}

func candidateQuery(db *gorm.DB) *gorm.DB {
	return db.Table("volunteers").
		Select(`volunteers.user_id, users.first_name, users.last_name,
			volunteers.preferred_city_id, volunteers.preferred_skill_id,
			users.is_approved, user_types.type_name AS user_type`).
		Joins("JOIN users ON users.id = volunteers.user_id").
		Joins("JOIN user_types ON user_types.id = users.user_type_id")
}

func (r *VolunteerRepositoryImpl) ListEligibleCandidates(db *gorm.DB) ([]models.VolunteerCandidate, error) {
	var candidates []models.VolunteerCandidate
	err := candidateQuery(db).
		Where("users.is_approved = ? AND user_types.type_name = ?", true, string(models.UserTypeVolunteer)).
		Order("users.id").
		Scan(&candidates).Error
	return candidates, err
}

func (r *VolunteerRepositoryImpl) FindCandidate(db *gorm.DB, userID string) (*models.VolunteerCandidate, error) {
	var candidates []models.VolunteerCandidate
	if err := candidateQuery(db).Where("volunteers.user_id = ?", userID).Limit(1).Scan(&candidates).Error; err != nil {
		return nil, err
	}
	if len(candidates) == 0 {
		return nil, ErrVolunteerNotFound
	}
	return &candidates[0], nil
}
