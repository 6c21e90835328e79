package repositories

import (
	"errors"
	"strings"
	"time"

	"yadtamar_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
	ErrUserTypeNotFound  = errors.New("user type not found")
)

//go:generate mockgen -source=user_repository.go -destination=../mocks/mock_user_repository.go -package=mocks

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	CreateAuthentication(db *gorm.DB, auth *models.Authentication) error
	CreateVolunteer(db *gorm.DB, volunteer *models.Volunteer) error
	CreateFamily(db *gorm.DB, family *models.Family) error

	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindAuthByEmail(db *gorm.DB, email string) (*models.Authentication, error)
	FindAuthByUserID(db *gorm.DB, userID string) (*models.Authentication, error)
	EmailExists(db *gorm.DB, email string) (bool, error)
	FindUserTypeByName(db *gorm.DB, name models.UserTypeName) (*models.UserType, error)
	FindUserTypeByID(db *gorm.DB, id uint) (*models.UserType, error)

	UpdatePasswordHash(db *gorm.DB, userID, hash string) error
	UpdateApproval(db *gorm.DB, userID string, update ApprovalUpdate) error
	UpdateProfilePicture(db *gorm.DB, userID, url string) error

	ListViews(db *gorm.DB, filter UserFilter) ([]models.UserView, int64, error)
	FindView(db *gorm.DB, id string) (*models.UserView, error)
}

// ApprovalUpdate is the set of columns written by an approval decision.
type ApprovalUpdate struct {
	Status     models.ApprovalStatus
	ApprovedBy string
	DecidedAt  time.Time
}

type UserFilter struct {
	ApprovalStatus models.ApprovalStatus
	UserType       models.UserTypeName
	Search         string
	Page           int
	PageSize       int
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) CreateAuthentication(db *gorm.DB, auth *models.Authentication) error {
	exists, err := r.EmailExists(db, auth.Email)
	if err != nil {
		return err
	}
	if exists {
		return ErrUserAlreadyExists
	}
	return db.Create(auth).Error
}

func (r *UserRepositoryImpl) CreateVolunteer(db *gorm.DB, volunteer *models.Volunteer) error {
	return db.Create(volunteer).Error
}

func (r *UserRepositoryImpl) CreateFamily(db *gorm.DB, family *models.Family) error {
	return db.Create(family).Error
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindAuthByEmail(db *gorm.DB, email string) (*models.Authentication, error) {
	var auth models.Authentication
	if err := db.Where("LOWER(email) = ?", strings.ToLower(email)).First(&auth).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &auth, nil
}

func (r *UserRepositoryImpl) FindAuthByUserID(db *gorm.DB, userID string) (*models.Authentication, error) {
	var auth models.Authentication
	if err := db.Where("user_id = ?", userID).First(&auth).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &auth, nil
}

func (r *UserRepositoryImpl) EmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.Authentication{}).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) FindUserTypeByName(db *gorm.DB, name models.UserTypeName) (*models.UserType, error) {
	var ut models.UserType
	if err := db.Where("type_name = ?", string(name)).First(&ut).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserTypeNotFound
		}
		return nil, err
	}
	return &ut, nil
}

func (r *UserRepositoryImpl) FindUserTypeByID(db *gorm.DB, id uint) (*models.UserType, error) {
	var ut models.UserType
	if err := db.First(&ut, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserTypeNotFound
		}
		return nil, err
	}
	return &ut, nil
}

func (r *UserRepositoryImpl) UpdatePasswordHash(db *gorm.DB, userID, hash string) error {
	result := db.Model(&models.Authentication{}).
		Where("user_id = ?", userID).
		Update("password_hash", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateApproval(db *gorm.DB, userID string, update ApprovalUpdate) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Updates(map[string]interface{}{
		"is_approved":     update.Status == models.ApprovalApproved,
		"approval_status": update.Status,
		"approved_by":     update.ApprovedBy,
		"approved_at":     update.DecidedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdateProfilePicture(db *gorm.DB, userID, url string) error {
	result := db.Model(&models.User{}).Where("id = ?", userID).Update("profile_picture", url)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

const userViewColumns = `users.id, users.first_name, users.last_name, authentication.email,
	users.phone_number, users.address, users.profile_picture, users.city_id,
	cities.city_name AS city_name, users.user_type_id, user_types.type_name AS user_type_name,
	users.is_approved, users.approval_status, users.approved_at, users.created_at`

func userViewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("users").
		Select(userViewColumns).
		Joins("JOIN user_types ON user_types.id = users.user_type_id").
		Joins("LEFT JOIN authentication ON authentication.user_id = users.id").
		Joins("LEFT JOIN cities ON cities.id = users.city_id")
}

func (r *UserRepositoryImpl) ListViews(db *gorm.DB, filter UserFilter) ([]models.UserView, int64, error) {
	query := userViewQuery(db)
	if filter.ApprovalStatus != "" {
		query = query.Where("users.approval_status = ?", filter.ApprovalStatus)
	}
	if filter.UserType != "" {
		query = query.Where("user_types.type_name = ?", string(filter.UserType))
	}
	if filter.Search != "" {
		like := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(users.first_name) LIKE ? OR LOWER(users.last_name) LIKE ? OR LOWER(authentication.email) LIKE ?", like, like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	var views []models.UserView
	err := query.Order("users.created_at DESC, users.id").
		Limit(size).Offset((page - 1) * size).
		Scan(&views).Error
	return views, total, err
}

func (r *UserRepositoryImpl) FindView(db *gorm.DB, id string) (*models.UserView, error) {
	var views []models.UserView
	if err := userViewQuery(db).Where("users.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrUserNotFound
	}
	return &views[0], nil
}

func normalizePage(page, size int) (int, int) {
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
