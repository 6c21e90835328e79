package repositories

import (
	"errors"
	"time"

	"yadtamar_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrRequestNotFound       = errors.New("request not found")
	ErrRequestStatusNotFound = errors.New("request status not found")
)

//go:generate mockgen -source=request_repository.go -destination=../mocks/mock_request_repository.go -package=mocks

type RequestRepository interface {
	Create(db *gorm.DB, request *models.Request) error
	FindByID(db *gorm.DB, id string) (*models.Request, error)
	Update(db *gorm.DB, request *models.Request) error
	Delete(db *gorm.DB, id string) error

	FindView(db *gorm.DB, id string) (*models.RequestView, error)
	List(db *gorm.DB, filter RequestFilter) ([]models.RequestView, int64, error)

	UpdateStatus(db *gorm.DB, id string, statusID uint, completedAt *time.Time) error
	Assign(db *gorm.DB, id, volunteerID string, statusID uint) error
	// Release clears the assigned volunteer and sets the status.
	Release(db *gorm.DB, id string, statusID uint) error

	FindStatusByName(db *gorm.DB, name models.RequestStatusName) (*models.RequestStatus, error)
	FindStatusByID(db *gorm.DB, id uint) (*models.RequestStatus, error)
	CityExists(db *gorm.DB, id uint) (bool, error)
	RequestTypeExists(db *gorm.DB, id uint) (bool, error)

	CreateProcess(db *gorm.DB, process *models.RequestProcess) error
	// CompleteOpenProcesses stamps every unfinished process row of the request.
	CompleteOpenProcesses(db *gorm.DB, requestID string, statusID uint, at time.Time) error
}

type RequestFilter struct {
	FamilyID    string
	VolunteerID string
	StatusID    *uint
	CityID      *uint
	TypeID      *uint
	UrgentOnly  bool
	Page        int
	PageSize    int
}

type RequestRepositoryImpl struct{}

func NewRequestRepository() RequestRepository {
	return &RequestRepositoryImpl{}
}

func (r *RequestRepositoryImpl) Create(db *gorm.DB, request *models.Request) error {
	return db.Create(request).Error
}

func (r *RequestRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Request, error) {
	var request models.Request
	if err := db.First(&request, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *RequestRepositoryImpl) Update(db *gorm.DB, request *models.Request) error {
	result := db.Model(&models.Request{}).Where("id = ?", request.ID).Updates(map[string]interface{}{
		"request_type_id":     request.RequestTypeID,
		"description":         request.Description,
		"city_id":             request.CityID,
		"is_urgent":           request.IsUrgent,
		"expected_completion": request.ExpectedCompletion,
		"preferred_datetime":  request.PreferredDatetime,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) Delete(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("request_id = ?", id).Delete(&models.RequestProcess{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", id).Delete(&models.Request{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrRequestNotFound
		}
		return nil
	})
}

const requestViewColumns = `requests.id, requests.family_id, requests.request_type_id,
	request_types.type_name AS request_type_name, requests.description, requests.city_id,
	cities.city_name AS city_name, requests.status_id, request_status.status_name AS status_name,
	requests.is_urgent, requests.assigned_volunteer_id, requests.expected_completion,
	requests.preferred_datetime, requests.created_at, requests.completed_at`

func requestViewQuery(db *gorm.DB) *gorm.DB {
	return db.Table("requests").
		Select(requestViewColumns).
		Joins("JOIN request_status ON request_status.id = requests.status_id").
		Joins("LEFT JOIN request_types ON request_types.id = requests.request_type_id").
		Joins("LEFT JOIN cities ON cities.id = requests.city_id")
}

func (r *RequestRepositoryImpl) FindView(db *gorm.DB, id string) (*models.RequestView, error) {
	var views []models.RequestView
	if err := requestViewQuery(db).Where("requests.id = ?", id).Limit(1).Scan(&views).Error; err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrRequestNotFound
	}
	return &views[0], nil
}

func (r *RequestRepositoryImpl) List(db *gorm.DB, filter RequestFilter) ([]models.RequestView, int64, error) {
	query := requestViewQuery(db)
	if filter.FamilyID != "" {
		query = query.Where("requests.family_id = ?", filter.FamilyID)
	}
	if filter.VolunteerID != "" {
		query = query.Where("requests.assigned_volunteer_id = ?", filter.VolunteerID)
	}
	if filter.StatusID != nil {
		query = query.Where("requests.status_id = ?", *filter.StatusID)
	}
	if filter.CityID != nil {
		query = query.Where("requests.city_id = ?", *filter.CityID)
	}
	if filter.TypeID != nil {
		query = query.Where("requests.request_type_id = ?", *filter.TypeID)
	}
	if filter.UrgentOnly {
		query = query.Where("requests.is_urgent = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, size := normalizePage(filter.Page, filter.PageSize)
	var views []models.RequestView
	err := query.Order("requests.is_urgent DESC, requests.created_at DESC, requests.id").
		Limit(size).Offset((page - 1) * size).
		Scan(&views).Error
	return views, total, err
}

func (r *RequestRepositoryImpl) UpdateStatus(db *gorm.DB, id string, statusID uint, completedAt *time.Time) error {
	result := db.Model(&models.Request{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status_id":    statusID,
		"completed_at": completedAt,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) Assign(db *gorm.DB, id, volunteerID string, statusID uint) error {
	result := db.Model(&models.Request{}).Where("id = ?", id).Updates(map[string]interface{}{
		"assigned_volunteer_id": volunteerID,
		"status_id":             statusID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) Release(db *gorm.DB, id string, statusID uint) error {
	result := db.Model(&models.Request{}).Where("id = ?", id).Updates(map[string]interface{}{
		"assigned_volunteer_id": nil,
		"status_id":             statusID,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRequestNotFound
	}
	return nil
}

func (r *RequestRepositoryImpl) FindStatusByName(db *gorm.DB, name models.RequestStatusName) (*models.RequestStatus, error) {
	var status models.RequestStatus
	if err := db.Where("status_name = ?", string(name)).First(&status).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *RequestRepositoryImpl) FindStatusByID(db *gorm.DB, id uint) (*models.RequestStatus, error) {
	var status models.RequestStatus
	if err := db.First(&status, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestStatusNotFound
		}
		return nil, err
	}
	return &status, nil
}

func (r *RequestRepositoryImpl) CityExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&models.City{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RequestRepositoryImpl) RequestTypeExists(db *gorm.DB, id uint) (bool, error) {
	var count int64
	err := db.Model(&models.RequestType{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

func (r *RequestRepositoryImpl) CreateProcess(db *gorm.DB, process *models.RequestProcess) error {
	return db.Create(process).Error
}

func (r *RequestRepositoryImpl) CompleteOpenProcesses(db *gorm.DB, requestID string, statusID uint, at time.Time) error {
	return db.Model(&models.RequestProcess{}).
		Where("request_id = ? AND completed_at IS NULL", requestID).
		Updates(map[string]interface{}{
			"status_id":    statusID,
			"completed_at": at,
		}).Error
}
