package services

import (
	"context"
	"testing"
	"time"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/mocks"
	"yadtamar_backend/internal/models"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/pkg/apperrors"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newApprovalService(t *testing.T) (*approvalService, *mocks.MockUserRepository, *mocks.MockNotifier) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)
	notifier := mocks.NewMockNotifier(ctrl)

	svc := NewApprovalService(userRepo, notifier).(*approvalService)
	svc.now = func() time.Time { return time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC) }
	svc.password = func() (string, error) { return "Pa55word1234", nil }
	return svc, userRepo, notifier
}

func TestApprovalService_Approve(t *testing.T) {
	svc, userRepo, notifier := newApprovalService(t)
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	userRepo.EXPECT().FindByID(gomock.Any(), "usr000001").Return(&models.User{
		ID:             "usr000001",
		FirstName:      "Dana",
		LastName:       "Levi",
		ApprovalStatus: models.ApprovalPending,
	}, nil)
	userRepo.EXPECT().FindAuthByUserID(gomock.Any(), "usr000001").Return(&models.Authentication{
		UserID: "usr000001",
		Email:  "dana@example.com",
	}, nil)
	userRepo.EXPECT().UpdatePasswordHash(gomock.Any(), "usr000001", gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, _ string, hash string) error {
			assert.True(t, auth.CheckPasswordHash("Pa55word1234", hash))
			return nil
		})
	userRepo.EXPECT().UpdateApproval(gomock.Any(), "usr000001", repositories.ApprovalUpdate{
		Status:     models.ApprovalApproved,
		ApprovedBy: "adm000001",
		DecidedAt:  time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}).Return(nil)

	notifier.EXPECT().NotifyApproved(gomock.Any(), "dana@example.com", "Dana Levi", "Pa55word1234").
		Do(func(context.Context, string, string, string) {
			// the decision is already committed when the email goes out
			assert.NoError(t, mock.ExpectationsWereMet())
		})

	resp, err := svc.Approve(context.Background(), db, "adm000001", "usr000001")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalApproved, resp.Status)
	assert.Equal(t, "adm000001", resp.DecidedBy)
	assert.True(t, resp.EmailQueue)
}

func TestApprovalService_ApproveAlreadyApproved(t *testing.T) {
	svc, userRepo, _ := newApprovalService(t)
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userRepo.EXPECT().FindByID(gomock.Any(), "usr000001").Return(&models.User{
		ID:             "usr000001",
		ApprovalStatus: models.ApprovalApproved,
	}, nil)
	userRepo.EXPECT().FindAuthByUserID(gomock.Any(), "usr000001").Return(&models.Authentication{Email: "a@example.com"}, nil)

	_, err := svc.Approve(context.Background(), db, "adm000001", "usr000001")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyDecided)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApprovalService_ApproveUnknownUser(t *testing.T) {
	svc, userRepo, _ := newApprovalService(t)
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userRepo.EXPECT().FindByID(gomock.Any(), "nobody000").Return(nil, repositories.ErrUserNotFound)

	_, err := svc.Approve(context.Background(), db, "adm000001", "nobody000")
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestApprovalService_Reject(t *testing.T) {
	svc, userRepo, notifier := newApprovalService(t)
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectCommit()

	userRepo.EXPECT().FindByID(gomock.Any(), "usr000002").Return(&models.User{
		ID:             "usr000002",
		FirstName:      "Avi",
		ApprovalStatus: models.ApprovalPending,
	}, nil)
	userRepo.EXPECT().FindAuthByUserID(gomock.Any(), "usr000002").Return(&models.Authentication{Email: "avi@example.com"}, nil)
	userRepo.EXPECT().UpdateApproval(gomock.Any(), "usr000002", gomock.Any()).
		DoAndReturn(func(_ *gorm.DB, _ string, u repositories.ApprovalUpdate) error {
			assert.Equal(t, models.ApprovalRejected, u.Status)
			return nil
		})
	notifier.EXPECT().NotifyRejected(gomock.Any(), "avi@example.com", "Avi")

	resp, err := svc.Reject(context.Background(), db, "adm000001", "usr000002")
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalRejected, resp.Status)
}

func TestApprovalService_RejectDecided(t *testing.T) {
	svc, userRepo, _ := newApprovalService(t)
	db, mock := newMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	userRepo.EXPECT().FindByID(gomock.Any(), "usr000002").Return(&models.User{
		ID:             "usr000002",
		ApprovalStatus: models.ApprovalRejected,
	}, nil)
	userRepo.EXPECT().FindAuthByUserID(gomock.Any(), "usr000002").Return(&models.Authentication{}, nil)

	_, err := svc.Reject(context.Background(), db, "adm000001", "usr000002")
	assert.ErrorIs(t, err, apperrors.ErrAlreadyDecided)
}

func TestApprovalService_ListUnapproved(t *testing.T) {
	svc, userRepo, _ := newApprovalService(t)
	db, _ := newMockDB(t)

	userRepo.EXPECT().ListViews(gomock.Any(), repositories.UserFilter{
		ApprovalStatus: models.ApprovalPending,
		Page:           2,
		PageSize:       10,
	}).Return([]models.UserView{{ID: "usr000001"}}, int64(11), nil)

	resp, err := svc.ListUnapproved(db, 2, 10)
	require.NoError(t, err)
	assert.Len(t, resp.Users, 1)
	assert.Equal(t, 2, resp.TotalPages)
}

