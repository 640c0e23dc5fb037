package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

type UsersStorage struct {
	db *PostgresDB
}

func NewUsersStorage(db *PostgresDB) *UsersStorage {
	return &UsersStorage{
		db: db,
	}
}

func (s *UsersStorage) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(ctx,
		"SELECT id, email, name, document_number FROM users WHERE id = $1",
		userID,
	).Scan(&user.ID, &user.Email, &user.Name, &user.DocumentNumber)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUnknownUser
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}
