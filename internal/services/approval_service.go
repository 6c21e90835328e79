package services

import (
	"context"
	"errors"
	"time"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/email"
	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/metrics"
	"yadtamar_backend/internal/models"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ApprovalService moves registrations through the admin approval workflow.
// The decision is committed before the notification email is dispatched, and
// a failed email never undoes it.
type ApprovalService interface {
	ListUsers(db *gorm.DB, query dto.UserListQuery) (*dto.UserListResponse, error)
	ListUnapproved(db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error)
	Approve(ctx context.Context, db *gorm.DB, adminID, userID string) (*dto.ApprovalResponse, error)
	Reject(ctx context.Context, db *gorm.DB, adminID, userID string) (*dto.ApprovalResponse, error)
}

type approvalService struct {
	userRepo repositories.UserRepository
	notifier email.Notifier
	now      func() time.Time
	password func() (string, error)
}

func NewApprovalService(userRepo repositories.UserRepository, notifier email.Notifier) ApprovalService {
	return &approvalService{
		userRepo: userRepo,
		notifier: notifier,
		now:      time.Now,
		password: func() (string, error) { return auth.GeneratePassword(auth.GeneratedPasswordLength) },
	}
}

func (s *approvalService) ListUsers(db *gorm.DB, query dto.UserListQuery) (*dto.UserListResponse, error) {
	filter := repositories.UserFilter{
		ApprovalStatus: models.ApprovalStatus(query.Status),
		UserType:       models.UserTypeName(query.UserType),
		Search:         query.Search,
		Page:           query.Page,
		PageSize:       query.PageSize,
	}
	return s.list(db, filter)
}

func (s *approvalService) ListUnapproved(db *gorm.DB, page, pageSize int) (*dto.UserListResponse, error) {
	return s.list(db, repositories.UserFilter{
		ApprovalStatus: models.ApprovalPending,
		Page:           page,
		PageSize:       pageSize,
	})
}

func (s *approvalService) list(db *gorm.DB, filter repositories.UserFilter) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.ListViews(db, filter)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if users == nil {
		users = []models.UserView{}
	}

	page, size := filter.Page, filter.PageSize
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return &dto.UserListResponse{
		Users:      users,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: dto.TotalPages(total, size),
	}, nil
}

func (s *approvalService) Approve(ctx context.Context, db *gorm.DB, adminID, userID string) (*dto.ApprovalResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	user, creds, err := s.loadForDecision(tx, userID)
	if err != nil {
		return nil, err
	}
	if user.ApprovalStatus == models.ApprovalApproved {
		return nil, apperrors.ErrAlreadyDecided
	}

	var password string
	if creds.Email != "" {
		password, err = s.password()
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		hash, err := auth.HashPassword(password)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		if err := s.userRepo.UpdatePasswordHash(tx, userID, hash); err != nil {
			return nil, apperrors.DatabaseError(err)
		}
	}

	decidedAt := s.now().UTC()
	if err := s.userRepo.UpdateApproval(tx, userID, repositories.ApprovalUpdate{
		Status:     models.ApprovalApproved,
		ApprovedBy: adminID,
		DecidedAt:  decidedAt,
	}); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	metrics.ApprovalDecisions.WithLabelValues("approved").Inc()
	logger.CtxInfo(ctx, "user approved", "user_id", userID, "admin_id", adminID)

	s.notifier.NotifyApproved(ctx, creds.Email, user.FullName(), password)

	return &dto.ApprovalResponse{
		UserID:     userID,
		Status:     models.ApprovalApproved,
		DecidedBy:  adminID,
		DecidedAt:  decidedAt,
		EmailQueue: creds.Email != "",
	}, nil
}

func (s *approvalService) Reject(ctx context.Context, db *gorm.DB, adminID, userID string) (*dto.ApprovalResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	user, creds, err := s.loadForDecision(tx, userID)
	if err != nil {
		return nil, err
	}
	if user.ApprovalStatus != models.ApprovalPending {
		return nil, apperrors.ErrAlreadyDecided
	}

	decidedAt := s.now().UTC()
	if err := s.userRepo.UpdateApproval(tx, userID, repositories.ApprovalUpdate{
		Status:     models.ApprovalRejected,
		ApprovedBy: adminID,
		DecidedAt:  decidedAt,
	}); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	metrics.ApprovalDecisions.WithLabelValues("rejected").Inc()
	logger.CtxInfo(ctx, "user rejected", "user_id", userID, "admin_id", adminID)

	s.notifier.NotifyRejected(ctx, creds.Email, user.FullName())

	return &dto.ApprovalResponse{
		UserID:     userID,
		Status:     models.ApprovalRejected,
		DecidedBy:  adminID,
		DecidedAt:  decidedAt,
		EmailQueue: creds.Email != "",
	}, nil
}

func (s *approvalService) loadForDecision(tx *gorm.DB, userID string) (*models.User, *models.Authentication, error) {
	user, err := s.userRepo.FindByID(tx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, apperrors.ErrUserNotFound
		}
		return nil, nil, apperrors.DatabaseError(err)
	}

	creds, err := s.userRepo.FindAuthByUserID(tx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// no credentials row: the decision still stands, nobody gets mailed
			return user, &models.Authentication{UserID: userID}, nil
		}
		return nil, nil, apperrors.DatabaseError(err)
	}
	return user, creds, nil
}
