package storage

import "context"

func (s *Storage) CompanyExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, id)
	return exists, err
}
