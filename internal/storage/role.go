package storage

import (
	"context"
	"database/sql"
	"errors"

	"usermgmt-backend/internal/models"
)

func (s *Storage) ListRoles(ctx context.Context) ([]models.Role, error) {
	query := `
		SELECT id, name, description, permissions, created_at
		FROM roles
		ORDER BY id
	`

	roles := make([]models.Role, 0)
	if err := s.db.SelectContext(ctx, &roles, query); err != nil {
		return nil, err
	}

	return roles, nil
}

func (s *Storage) GetRoleName(ctx context.Context, id int) (string, error) {
	var name string
	if err := s.db.GetContext(ctx, &name, `SELECT name FROM roles WHERE id = $1`, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrRoleNotFound
		}
		return "", err
	}
	return name, nil
}

func (s *Storage) RoleExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM roles WHERE id = $1)`, id)
	return exists, err
}
