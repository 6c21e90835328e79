package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/imageprocessor"
	"yadtamar_backend/internal/logger"
	"yadtamar_backend/internal/models"
	"yadtamar_backend/internal/repositories"
	"yadtamar_backend/internal/services/dto"
	"yadtamar_backend/internal/storage"
	"yadtamar_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProfilePicture is an uploaded image as received from the client.
type ProfilePicture struct {
	Content     io.Reader
	Size        int64
	ContentType string
}

type UserService interface {
	SignupVolunteer(db *gorm.DB, req *dto.SignupVolunteerRequest) (*dto.SignupResponse, error)
	SignupFamily(db *gorm.DB, req *dto.SignupFamilyRequest) (*dto.SignupResponse, error)
	Signin(db *gorm.DB, req *dto.SigninRequest) (*dto.AuthResponse, error)
	GetProfile(db *gorm.DB, userID string) (*models.UserView, error)
	UploadProfilePicture(ctx context.Context, db *gorm.DB, userID string, picture ProfilePicture) (*dto.ProfilePictureResponse, error)
}

type userService struct {
	userRepo       repositories.UserRepository
	requestRepo    repositories.RequestRepository
	tokens         *auth.TokenManager
	tokenTTL       time.Duration
	storage        storage.Storage
	images         *imageprocessor.Processor
	maxPictureSize int64
}

func NewUserService(
	userRepo repositories.UserRepository,
	requestRepo repositories.RequestRepository,
	tokens *auth.TokenManager,
	tokenTTL time.Duration,
	store storage.Storage,
	maxPictureSize int64,
) UserService {
	return &userService{
		userRepo:       userRepo,
		requestRepo:    requestRepo,
		tokens:         tokens,
		tokenTTL:       tokenTTL,
		storage:        store,
		images:         imageprocessor.NewProcessor(85),
		maxPictureSize: maxPictureSize,
	}
}

func (s *userService) SignupVolunteer(db *gorm.DB, req *dto.SignupVolunteerRequest) (*dto.SignupResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.checkCity(tx, "city_id", req.CityID); err != nil {
		return nil, err
	}
	if err := s.checkCity(tx, "preferred_city_id", req.PreferredCityID); err != nil {
		return nil, err
	}
	if req.PreferredSkillID != nil {
		ok, err := s.requestRepo.RequestTypeExists(tx, *req.PreferredSkillID)
		if err != nil {
			return nil, apperrors.DatabaseError(err)
		}
		if !ok {
			return nil, apperrors.ValidationError(map[string]string{"preferred_skill_id": "Unknown request type"})
		}
	}

	user, err := s.createUser(tx, models.UserTypeVolunteer, req.Email, &models.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		CityID:      req.CityID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateVolunteer(tx, &models.Volunteer{
		UserID:           user.ID,
		PreferredCityID:  req.PreferredCityID,
		PreferredSkillID: req.PreferredSkillID,
		LicenseLevelID:   req.LicenseLevelID,
	}); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("volunteer registered", "user_id", user.ID)
	return &dto.SignupResponse{UserID: user.ID, Status: user.ApprovalStatus}, nil
}

func (s *userService) SignupFamily(db *gorm.DB, req *dto.SignupFamilyRequest) (*dto.SignupResponse, error) {
	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	if err := s.checkCity(tx, "city_id", req.CityID); err != nil {
		return nil, err
	}

	user, err := s.createUser(tx, models.UserTypeFamily, req.Email, &models.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
		CityID:      req.CityID,
	})
	if err != nil {
		return nil, err
	}

	if err := s.userRepo.CreateFamily(tx, &models.Family{
		UserID:         user.ID,
		BuildingType:   req.BuildingType,
		FloorNumber:    req.FloorNumber,
		HasParking:     req.HasParking,
		HasElevator:    req.HasElevator,
		IsPrivateHouse: req.IsPrivateHouse,
	}); err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	logger.Info("family registered", "user_id", user.ID)
	return &dto.SignupResponse{UserID: user.ID, Status: user.ApprovalStatus}, nil
}

func (s *userService) createUser(tx *gorm.DB, kind models.UserTypeName, email string, user *models.User) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	taken, err := s.userRepo.EmailExists(tx, email)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if taken {
		return nil, apperrors.ErrEmailTaken
	}

	userType, err := s.userRepo.FindUserTypeByName(tx, kind)
	if err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	user.ID = models.NewID()
	user.UserTypeID = userType.ID
	user.IsApproved = false
	user.ApprovalStatus = models.ApprovalPending
	user.CreatedAt = time.Now().UTC()

	if err := s.userRepo.Create(tx, user); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if err := s.userRepo.CreateAuthentication(tx, &models.Authentication{UserID: user.ID, Email: email}); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailTaken
		}
		return nil, apperrors.DatabaseError(err)
	}
	return user, nil
}

func (s *userService) checkCity(tx *gorm.DB, field string, cityID *uint) error {
	if cityID == nil {
		return nil
	}
	ok, err := s.requestRepo.CityExists(tx, *cityID)
	if err != nil {
		return apperrors.DatabaseError(err)
	}
	if !ok {
		return apperrors.ValidationError(map[string]string{field: "Unknown city"})
	}
	return nil
}

func (s *userService) Signin(db *gorm.DB, req *dto.SigninRequest) (*dto.AuthResponse, error) {
	creds, err := s.userRepo.FindAuthByEmail(db, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}

	view, err := s.userRepo.FindView(db, creds.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.DatabaseError(err)
	}
	if !view.IsApproved {
		return nil, apperrors.ErrAccountNotApproved
	}
	if !auth.CheckPasswordHash(req.Password, creds.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(view.ID, view.UserTypeName)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(s.tokenTTL.Seconds()),
		User:        view,
	}, nil
}

func (s *userService) GetProfile(db *gorm.DB, userID string) (*models.UserView, error) {
	view, err := s.userRepo.FindView(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}
	return view, nil
}

func (s *userService) UploadProfilePicture(ctx context.Context, db *gorm.DB, userID string, picture ProfilePicture) (*dto.ProfilePictureResponse, error) {
	if s.maxPictureSize > 0 && picture.Size > s.maxPictureSize {
		return nil, apperrors.ErrFileTooLarge
	}
	if _, ok := storage.PictureExtension(picture.ContentType); !ok {
		return nil, apperrors.ErrUnsupportedFileType
	}
	content, format, err := s.images.Normalize(picture.Content, imageprocessor.SizeAvatar)
	if err != nil {
		if errors.Is(err, imageprocessor.ErrNotAnImage) {
			return nil, apperrors.ErrUnsupportedFileType
		}
		return nil, apperrors.InternalError(err)
	}
	contentType := "image/" + format
	ext, _ := storage.PictureExtension(contentType)

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.DatabaseError(tx.Error)
	}
	defer tx.Rollback()

	if _, err := s.userRepo.FindByID(tx, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	key := storage.ProfilePictureKey(userID, ext)
	if err := s.storage.Save(ctx, key, content, contentType); err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "storage", "Failed to store picture", 502)
	}

	url := s.storage.URL(key)
	if err := s.userRepo.UpdateProfilePicture(tx, userID, url); err != nil {
		return nil, apperrors.DatabaseError(err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.DatabaseError(err)
	}

	return &dto.ProfilePictureResponse{URL: url}, nil
}
