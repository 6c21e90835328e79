package helpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"yadtamar_backend/database"
	"yadtamar_backend/internal/auth"
	"yadtamar_backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestDatabase owns the Postgres used by integration tests: a container
// started with testcontainers, or TEST_DATABASE_URL when it is set.
type TestDatabase struct {
	DSN  string
	Gorm *gorm.DB
	Pool *pgxpool.Pool
	SQLX *sqlx.DB

	container *pgcontainer.PostgresContainer
}

func NewTestDatabase(ctx context.Context) (*TestDatabase, error) {
	tdb := &TestDatabase{DSN: os.Getenv("TEST_DATABASE_URL")}

	if tdb.DSN == "" {
		container, err := pgcontainer.Run(ctx, "postgres:16-alpine",
			pgcontainer.WithDatabase("yadtamar"),
			pgcontainer.WithUsername("yadtamar"),
			pgcontainer.WithPassword("yadtamar"),
			pgcontainer.BasicWaitStrategies(),
		)
		if err != nil {
			return nil, fmt.Errorf("start postgres container: %w", err)
		}
		tdb.container = container

		dsn, err := container.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			tdb.Close(ctx)
			return nil, fmt.Errorf("resolve connection string: %w", err)
		}
		tdb.DSN = dsn
	}

	var err error
	tdb.Gorm, err = gorm.Open(postgres.Open(tdb.DSN), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		tdb.Close(ctx)
		return nil, fmt.Errorf("open gorm: %w", err)
	}

	tdb.Pool, err = pgxpool.New(ctx, tdb.DSN)
	if err != nil {
		tdb.Close(ctx)
		return nil, fmt.Errorf("create pool: %w", err)
	}

	tdb.SQLX, err = sqlx.ConnectContext(ctx, "postgres", tdb.DSN)
	if err != nil {
		tdb.Close(ctx)
		return nil, fmt.Errorf("connect sqlx: %w", err)
	}

	if err := database.AutoMigrate(tdb.Gorm); err != nil {
		tdb.Close(ctx)
		return nil, err
	}
	if err := database.SeedLookups(tdb.Gorm); err != nil {
		tdb.Close(ctx)
		return nil, err
	}
	return tdb, nil
}

func (d *TestDatabase) Close(ctx context.Context) {
	if d.SQLX != nil {
		d.SQLX.Close()
	}
	if d.Pool != nil {
		d.Pool.Close()
	}
	if d.Gorm != nil {
		if sqlDB, err := d.Gorm.DB(); err == nil {
			sqlDB.Close()
		}
	}
	if d.container != nil {
		_ = d.container.Terminate(ctx)
	}
}

// Reset empties the mutable tables. Lookup rows for user types and request
// statuses are kept.
func (d *TestDatabase) Reset(t *testing.T) {
	t.Helper()
	err := d.Gorm.Exec("TRUNCATE TABLE request_process, requests, volunteers, families, authentication, users, cities, request_types, licenses RESTART IDENTITY CASCADE").Error
	if err != nil {
		t.Fatalf("failed to reset tables: %v", err)
	}
}

func (d *TestDatabase) CreateCity(t *testing.T, name string) uint {
	t.Helper()
	city := models.City{Name: name}
	if err := d.Gorm.Create(&city).Error; err != nil {
		t.Fatalf("failed to create city %s: %v", name, err)
	}
	return city.ID
}

func (d *TestDatabase) CreateRequestType(t *testing.T, name string) uint {
	t.Helper()
	rt := models.RequestType{Name: name}
	if err := d.Gorm.Create(&rt).Error; err != nil {
		t.Fatalf("failed to create request type %s: %v", name, err)
	}
	return rt.ID
}

func (d *TestDatabase) StatusID(t *testing.T, name models.RequestStatusName) uint {
	t.Helper()
	var status models.RequestStatus
	if err := d.Gorm.Where("status_name = ?", name).First(&status).Error; err != nil {
		t.Fatalf("missing status %s: %v", name, err)
	}
	return status.ID
}

// UserSpec describes a user fixture. Password, when set, is stored hashed.
type UserSpec struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Type      models.UserTypeName
	Approved  bool
	CityID    *uint
}

func (d *TestDatabase) CreateUser(t *testing.T, in UserSpec) *models.User {
	t.Helper()

	var userType models.UserType
	if err := d.Gorm.Where("type_name = ?", in.Type).First(&userType).Error; err != nil {
		t.Fatalf("missing user type %s: %v", in.Type, err)
	}

	user := &models.User{
		ID:             models.NewID(),
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		CityID:         in.CityID,
		UserTypeID:     userType.ID,
		IsApproved:     in.Approved,
		ApprovalStatus: models.ApprovalPending,
	}
	if in.Approved {
		user.ApprovalStatus = models.ApprovalApproved
	}
	if err := d.Gorm.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	if in.Email != "" {
		var hash string
		if in.Password != "" {
			var err error
			hash, err = auth.HashPassword(in.Password)
			if err != nil {
				t.Fatalf("failed to hash password: %v", err)
			}
		}
		creds := &models.Authentication{UserID: user.ID, Email: in.Email, PasswordHash: hash}
		if err := d.Gorm.Create(creds).Error; err != nil {
			t.Fatalf("failed to create credentials: %v", err)
		}
	}
	return user
}

func (d *TestDatabase) CreateVolunteer(t *testing.T, in UserSpec, preferredCity, preferredSkill *uint) *models.User {
	t.Helper()
	in.Type = models.UserTypeVolunteer
	user := d.CreateUser(t, in)

	v := &models.Volunteer{UserID: user.ID, PreferredCityID: preferredCity, PreferredSkillID: preferredSkill}
	if err := d.Gorm.Create(v).Error; err != nil {
		t.Fatalf("failed to create volunteer: %v", err)
	}
	return user
}

// RequestSpec describes a request fixture. A nil CompletedAt leaves the
// request without a completed process row.
type RequestSpec struct {
	FamilyID      string
	CityID        *uint
	RequestTypeID *uint
	Status        models.RequestStatusName
	CreatedAt     time.Time
	VolunteerID   string
	CompletedAt   *time.Time
}

func (d *TestDatabase) CreateRequest(t *testing.T, in RequestSpec) *models.Request {
	t.Helper()
	if in.Status == "" {
		in.Status = models.RequestStatusPending
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}

	req := &models.Request{
		ID:            models.NewID(),
		FamilyID:      in.FamilyID,
		CityID:        in.CityID,
		RequestTypeID: in.RequestTypeID,
		StatusID:      d.StatusID(t, in.Status),
		CreatedAt:     in.CreatedAt,
		CompletedAt:   in.CompletedAt,
	}
	if in.VolunteerID != "" {
		req.AssignedVolunteerID = &in.VolunteerID
	}
	if err := d.Gorm.Create(req).Error; err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	if in.VolunteerID != "" {
		process := &models.RequestProcess{
			RequestID:         req.ID,
			VolunteerID:       in.VolunteerID,
			StatusID:          req.StatusID,
			VolunteerApproval: true,
			CompletedAt:       in.CompletedAt,
			CreatedAt:         in.CreatedAt,
		}
		if err := d.Gorm.Create(process).Error; err != nil {
			t.Fatalf("failed to create request process: %v", err)
		}
	}
	return req
}

func UintPtr(v uint) *uint { return &v }
