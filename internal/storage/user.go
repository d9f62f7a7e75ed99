package storage

import (
	"context"
	"database/sql"
	"errors"

	"usermgmt-backend/internal/models"
)

// profileColumns is the shared projection for create/list/me. The creator name
// comes from a self-join on users.
const profileColumns = `
	u.id, u.email, u.first_name, u.last_name, u.company_id, u.role_id,
	u.created_by, u.is_active, u.created_at,
	c.name AS company_name, r.name AS role_name,
	creator.first_name || ' ' || creator.last_name AS created_by_name
`

// GetUserByEmail looks a user up by exact (already normalized) email, joined
// with its company and role names. Soft-deleted rows are still returned; the
// login handler decides what to say about them.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.AuthUser, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.first_name, u.last_name,
			u.company_id, u.role_id, u.is_active, u.is_deleted, u.created_by, u.created_at,
			c.name AS company_name, r.name AS role_name
		FROM users u
		JOIN companies c ON u.company_id = c.id
		JOIN roles r ON u.role_id = r.id
		WHERE u.email = $1
	`

	var user models.AuthUser
	if err := s.db.GetContext(ctx, &user, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *Storage) GetUserByID(ctx context.Context, id int) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, first_name, last_name, company_id,
			role_id, is_active, is_deleted, created_by, created_at
		FROM users
		WHERE id = $1
	`

	var user models.User
	if err := s.db.GetContext(ctx, &user, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &user, nil
}

func (s *Storage) GetUserProfile(ctx context.Context, id int) (*models.UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM users u
		JOIN companies c ON u.company_id = c.id
		JOIN roles r ON u.role_id = r.id
		LEFT JOIN users creator ON u.created_by = creator.id
		WHERE u.id = $1
	`

	var profile models.UserProfile
	if err := s.db.GetContext(ctx, &profile, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return &profile, nil
}

func (s *Storage) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	return exists, err
}

// CreateUser inserts the user and returns its full profile projection. The
// email uniqueness constraint is the real guard; a concurrent duplicate
// surfaces as ErrEmailTaken even when the handler's pre-check passed.
func (s *Storage) CreateUser(ctx context.Context, input models.CreateUserInput, passwordHash string, createdBy *int) (*models.UserProfile, error) {
	query := `
		INSERT INTO users (email, password_hash, first_name, last_name, company_id, role_id, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	var id int
	err := s.db.QueryRowContext(ctx, query,
		input.Email, passwordHash, input.FirstName, input.LastName,
		input.CompanyID, input.RoleID, createdBy,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return s.GetUserProfile(ctx, id)
}

func (s *Storage) ListUsers(ctx context.Context, companyID, limit, offset int) ([]models.UserProfile, error) {
	query := `
		SELECT ` + profileColumns + `
		FROM users u
		JOIN companies c ON u.company_id = c.id
		JOIN roles r ON u.role_id = r.id
		LEFT JOIN users creator ON u.created_by = creator.id
		WHERE u.company_id = $1 AND u.is_deleted = FALSE
		ORDER BY u.created_at DESC
		LIMIT $2 OFFSET $3
	`

	users := make([]models.UserProfile, 0)
	if err := s.db.SelectContext(ctx, &users, query, companyID, limit, offset); err != nil {
		return nil, err
	}

	return users, nil
}

func (s *Storage) CountUsers(ctx context.Context, companyID int) (int, error) {
	var total int
	query := `SELECT COUNT(*) FROM users WHERE company_id = $1 AND is_deleted = FALSE`
	if err := s.db.GetContext(ctx, &total, query, companyID); err != nil {
		return 0, err
	}
	return total, nil
}
