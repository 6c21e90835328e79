package services

import (
	"errors"
	"time"

	"yadtamar_backend/internal/algorithms"
	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/metrics"
	"yadtamar_backend/internal/models"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type RequestService interface {
	Create(db *gorm.DB, caller dto.Caller, req *dto.CreateRequestRequest) (*models.RequestView, error)
	Get(db *gorm.DB, caller dto.Caller, id string) (*models.RequestView, error)
	List(db *gorm.DB, caller dto.Caller, query dto.RequestListQuery) (*dto.RequestListResponse, error)
	Update(db *gorm.DB, caller dto.Caller, id string, req *dto.UpdateRequestRequest) (*models.RequestView, error)
	Delete(db *gorm.DB, caller dto.Caller, id string) error

	// ChangeStatus applies a status transition. Completing a request stamps
	// its completion time on the request and its open process rows.
	ChangeStatus(db *gorm.DB, caller dto.Caller, id string, req *dto.ChangeStatusRequest) (*models.RequestView, error)
	// Assign hands a pending request to an approved volunteer and starts it.
	Assign(db *gorm.DB, id string, req *dto.AssignVolunteerRequest) (*models.RequestView, error)
}

type requestService struct {
	requestRepo   repositories.RequestRepository
	userRepo      repositories.UserRepository
	volunteerRepo repositories.VolunteerRepository
	now           func() time.Time
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	volunteerRepo repositories.VolunteerRepository,
) RequestService {
	return &requestService{
		requestRepo:   requestRepo,
		userRepo:      userRepo,
		volunteerRepo: volunteerRepo,
		now:           time.Now,
	}
}

func (s *requestService) Create(db *gorm.DB, caller dto.Caller, req *dto.CreateRequestRequest) (*models.RequestView, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	familyID := caller.UserID
	if caller.Role == auth.RoleAdmin {
		if req.FamilyID == "" {
			return nil, apperrors.ValidationError(map[string]string{"family_id": "This field is required"})
		}
		familyID = req.FamilyID
	} else if caller.Role != auth.RoleFamily {
		return nil, apperrors.ErrInsufficientPermissions
	}

	if err := s.ensureFamily(tx, familyID); err != nil {
		return nil, err
	}
	if err := s.checkReferences(tx, req.CityID, req.RequestTypeID); err != nil {
		return nil, err
	}

	pending, err := s.status(tx, models.RequestStatusPending)
	if err != nil {
		return nil, err
	}

	request := &models.Request{
		ID:                 models.NewID(),
		FamilyID:           familyID,
		RequestTypeID:      req.RequestTypeID,
		Description:        req.Description,
		CityID:             req.CityID,
		StatusID:           pending.ID,
		IsUrgent:           req.IsUrgent,
		ExpectedCompletion: req.ExpectedCompletion,
		PreferredDatetime:  req.PreferredDatetime,
		CreatedAt:          s.now().UTC(),
	}
	if err := s.requestRepo.Create(tx, request); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	view, err := s.findView(tx, request.ID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	metrics.RequestsCreated.Inc()
	return view, nil
}

func (s *requestService) Get(db *gorm.DB, caller dto.Caller, id string) (*models.RequestView, error) {
	view, err := s.findView(db, id)
	if err != nil {
		return nil, err
	}
	if caller.Role == auth.RoleFamily && view.FamilyID != caller.UserID {
		return nil, apperrors.ErrRequestNotFound
	}
	return view, nil
}

func (s *requestService) List(db *gorm.DB, caller dto.Caller, query dto.RequestListQuery) (*dto.RequestListResponse, error) {
	filter := repositories.RequestFilter{
		CityID:     query.CityID,
		TypeID:     query.TypeID,
		UrgentOnly: query.UrgentOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	}
	if caller.Role == auth.RoleFamily {
		filter.FamilyID = caller.UserID
	}
	if query.Status != "" {
		status, err := s.status(db, models.RequestStatusName(query.Status))
		if err != nil {
			return nil, err
		}
		filter.StatusID = &status.ID
	}

	requests, total, err := s.requestRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if requests == nil {
		requests = []models.RequestView{}
	}

	page, size := query.Page, query.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return &dto.RequestListResponse{
		Requests:   requests,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: dto.TotalPages(total, size),
	}, nil
}

func (s *requestService) Update(db *gorm.DB, caller dto.Caller, id string, req *dto.UpdateRequestRequest) (*models.RequestView, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	request, err := s.findOwned(tx, caller, id)
	if err != nil {
		return nil, err
	}
	current, err := s.statusByID(tx, request.StatusID)
	if err != nil {
		return nil, err
	}
	if models.RequestStatusName(current.Name).IsTerminal() {
		return nil, apperrors.ErrInvalidOperation("request", "Finished requests cannot be edited")
	}

	if req.RequestTypeID != nil {
		request.RequestTypeID = req.RequestTypeID
	}
	if req.Description != nil {
		request.Description = req.Description
	}
	if req.CityID != nil {
		request.CityID = req.CityID
	}
	if req.IsUrgent != nil {
		request.IsUrgent = *req.IsUrgent
	}
	if req.ExpectedCompletion != nil {
		request.ExpectedCompletion = req.ExpectedCompletion
	}
	if req.PreferredDatetime != nil {
		request.PreferredDatetime = req.PreferredDatetime
	}
	if err := s.checkReferences(tx, req.CityID, req.RequestTypeID); err != nil {
		return nil, err
	}

	if err := s.requestRepo.Update(tx, request); err != nil {
		return nil, s.mapRequestErr(err)
	}

	view, err := s.findView(tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return view, nil
}

func (s *requestService) Delete(db *gorm.DB, caller dto.Caller, id string) error {
	tx := db.Begin()
	if tx.Error != nil {
		return apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	request, err := s.findOwned(tx, caller, id)
	if err != nil {
		return err
	}
	if caller.Role != auth.RoleAdmin {
		current, err := s.statusByID(tx, request.StatusID)
		if err != nil {
			return err
		}
		if models.RequestStatusName(current.Name) != models.RequestStatusPending {
			return apperrors.ErrInvalidOperation("request", "Only pending requests can be withdrawn")
		}
	}

	if err := s.requestRepo.Delete(tx, id); err != nil {
		return s.mapRequestErr(err)
	}
	if err := tx.Commit().Error; err != nil {
		return apperrors.DatabaseError(err)
	}
	return nil
}

func (s *requestService) ChangeStatus(db *gorm.DB, caller dto.Caller, id string, req *dto.ChangeStatusRequest) (*models.RequestView, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	request, err := s.findRequest(tx, id)
	if err != nil {
		return nil, err
	}
	target := models.RequestStatusName(req.Status)
	if !canChangeStatus(caller, request, target) {
		if caller.Role == auth.RoleFamily && request.FamilyID != caller.UserID {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.ErrInsufficientPermissions
	}

	current, err := s.statusByID(tx, request.StatusID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(models.RequestStatusName(current.Name), target) {
		return nil, apperrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"from": current.Name,
			"to":   string(target),
		})
	}
	next, err := s.status(tx, target)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	switch target {
	case models.RequestStatusInProgress:
		if request.AssignedVolunteerID == nil {
			return nil, apperrors.ErrInvalidOperation("request", "Assign a volunteer before starting the request")
		}
		err = s.requestRepo.UpdateStatus(tx, id, next.ID, nil)
	case models.RequestStatusPending:
		// the released volunteer's process row is closed as Pending so a
		// later completion only stamps the next assignment
		if err = s.requestRepo.Release(tx, id, next.ID); err == nil {
			err = s.requestRepo.CompleteOpenProcesses(tx, id, next.ID, now)
		}
	case models.RequestStatusCompleted:
		if err = s.requestRepo.UpdateStatus(tx, id, next.ID, &now); err == nil {
			err = s.requestRepo.CompleteOpenProcesses(tx, id, next.ID, now)
		}
	case models.RequestStatusRejected:
		if err = s.requestRepo.UpdateStatus(tx, id, next.ID, nil); err == nil {
			err = s.requestRepo.CompleteOpenProcesses(tx, id, next.ID, now)
		}
	}
	if err != nil {
		return nil, s.mapRequestErr(err)
	}

	view, err := s.findView(tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	metrics.RequestStatusChanges.WithLabelValues(string(target)).Inc()
	return view, nil
}

func (s *requestService) Assign(db *gorm.DB, id string, req *dto.AssignVolunteerRequest) (*models.RequestView, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	request, err := s.findRequest(tx, id)
	if err != nil {
		return nil, err
	}
	current, err := s.statusByID(tx, request.StatusID)
	if err != nil {
		return nil, err
	}
	if !models.CanTransition(models.RequestStatusName(current.Name), models.RequestStatusInProgress) {
		return nil, apperrors.ErrInvalidStatusTransition.WithDetails(map[string]string{
			"from": current.Name,
			"to":   string(models.RequestStatusInProgress),
		})
	}

	candidate, err := s.volunteerRepo.FindCandidate(tx, req.VolunteerID)
	if err != nil {
		if errors.Is(err, repositories.ErrVolunteerNotFound) {
			return nil, apperrors.ErrVolunteerNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !algorithms.IsEligible(*candidate) {
		return nil, apperrors.ErrVolunteerNotEligible
	}

	inProgress, err := s.status(tx, models.RequestStatusInProgress)
	if err != nil {
		return nil, err
	}

	process := &models.RequestProcess{
		RequestID:        id,
		VolunteerID:      req.VolunteerID,
		StatusID:         inProgress.ID,
		EstimatedArrival: req.EstimatedArrival,
		CreatedAt:        s.now().UTC(),
	}
	if err := s.requestRepo.CreateProcess(tx, process); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if err := s.requestRepo.Assign(tx, id, req.VolunteerID, inProgress.ID); err != nil {
		return nil, s.mapRequestErr(err)
	}

	view, err := s.findView(tx, id)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	metrics.RequestStatusChanges.WithLabelValues(string(models.RequestStatusInProgress)).Inc()
	return view, nil
}

// canChangeStatus: admins may apply any transition. The assigned volunteer
// may start, complete or release the request. The owning family may only
// cancel it.
func canChangeStatus(caller dto.Caller, request *models.Request, target models.RequestStatusName) bool {
	switch caller.Role {
	case auth.RoleAdmin:
		return true
	case auth.RoleVolunteer:
		if request.AssignedVolunteerID == nil || *request.AssignedVolunteerID != caller.UserID {
			return false
		}
		return target == models.RequestStatusInProgress ||
			target == models.RequestStatusCompleted ||
			target == models.RequestStatusPending
	case auth.RoleFamily:
		return request.FamilyID == caller.UserID && target == models.RequestStatusRejected
	default:
		return false
	}
}

func (s *requestService) findRequest(db *gorm.DB, id string) (*models.Request, error) {
	request, err := s.requestRepo.FindByID(db, id)
	if err != nil {
		return nil, s.mapRequestErr(err)
	}
	return request, nil
}

// findOwned loads a request the caller may modify. Families see other
// families' requests as missing.
func (s *requestService) findOwned(db *gorm.DB, caller dto.Caller, id string) (*models.Request, error) {
	request, err := s.findRequest(db, id)
	if err != nil {
		return nil, err
	}
	switch caller.Role {
	case auth.RoleAdmin:
		return request, nil
	case auth.RoleFamily:
		if request.FamilyID == caller.UserID {
			return request, nil
		}
		return nil, apperrors.ErrRequestNotFound
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}
}

func (s *requestService) findView(db *gorm.DB, id string) (*models.RequestView, error) {
	view, err := s.requestRepo.FindView(db, id)
	if err != nil {
		return nil, s.mapRequestErr(err)
	}
	return view, nil
}

func (s *requestService) status(db *gorm.DB, name models.RequestStatusName) (*models.RequestStatus, error) {
	status, err := s.requestRepo.FindStatusByName(db, name)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestStatusNotFound) {
			return nil, apperrors.ErrUnknownFilterValue("status", string(name))
		}
		return nil, apperrors.DatabaseError(err)
	}
	return status, nil
}

func (s *requestService) statusByID(db *gorm.DB, id uint) (*models.RequestStatus, error) {
	status, err := s.requestRepo.FindStatusByID(db, id)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	return status, nil
}

func (s *requestService) ensureFamily(db *gorm.DB, userID string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrUserNotFound
		}
		return apperrors.DatabaseError(err)
	}
	userType, err := s.userRepo.FindUserTypeByID(db, user.UserTypeID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if userType.Name != string(models.UserTypeFamily) {
		return apperrors.ValidationError(map[string]string{"family_id": "Must reference a family account"})
	}
	return nil
}

func (s *requestService) checkReferences(db *gorm.DB, cityID, typeID *uint) error {
	details := map[string]string{}
	if cityID != nil {
		ok, err := s.requestRepo.CityExists(db, *cityID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		if !ok {
			details["city_id"] = "Unknown city"
		}
	}
	if typeID != nil {
		ok, err := s.requestRepo.RequestTypeExists(db, *typeID)
		if err != nil {
			return apperrors.DatabaseError(err)
		}
		if !ok {
			details["request_type_id"] = "Unknown request type"
		}
	}
	if len(details) > 0 {
		return apperrors.ValidationError(details)
	}
	return nil
}

func (s *requestService) mapRequestErr(err error) error {
	if errors.Is(err, repositories.ErrRequestNotFound) {
		return apperrors.ErrRequestNotFound
	}
	return apperrors.DatabaseError(err)
}
