package storage

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"usermgmt-backend/internal/models"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrRoleNotFound    = errors.New("role not found")
	ErrCompanyNotFound = errors.New("company not found")
	ErrEmailTaken      = errors.New("email already exists")
)

// Store is the query contract handlers and middleware depend on. *Storage is
// the Postgres implementation.
type Store interface {
	GetUserByEmail(ctx context.Context, email string) (*models.AuthUser, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)
	GetUserProfile(ctx context.Context, id int) (*models.UserProfile, error)
	CreateUser(ctx context.Context, input models.CreateUserInput, passwordHash string, createdBy *int) (*models.UserProfile, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, companyID, limit, offset int) ([]models.UserProfile, error)
	CountUsers(ctx context.Context, companyID int) (int, error)
	ListRoles(ctx context.Context) ([]models.Role, error)
	GetRoleName(ctx context.Context, id int) (string, error)
	RoleExists(ctx context.Context, id int) (bool, error)
	CompanyExists(ctx context.Context, id int) (bool, error)
}

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

func (s *Storage) Ping() error {
	return s.db.Ping()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
