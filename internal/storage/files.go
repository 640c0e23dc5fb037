package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

const fileColumns = "id, user_id, file_path, file_name, authenticated, type, created_at, updated_at"

type FilesStorage struct {
	db *PostgresDB
}

func NewFilesStorage(db *PostgresDB) *FilesStorage {
	return &FilesStorage{
		db: db,
	}
}

func (s *FilesStorage) ListByUser(ctx context.Context, userID string) ([]domain.File, error) {
	rows, err := s.db.Query(ctx,
		fmt.Sprintf("SELECT %s FROM files WHERE user_id = $1 ORDER BY created_at DESC", fileColumns),
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []domain.File
	for rows.Next() {
		file, err := scanFile(rows)
		if err != nil {
			return nil, err
		}
		files = append(files, *file)
	}
	return files, rows.Err()
}

func (s *FilesStorage) GetByName(ctx context.Context, userID, fileName string) (*domain.File, error) {
	row := s.db.QueryRow(ctx,
		fmt.Sprintf("SELECT %s FROM files WHERE user_id = $1 AND file_name = $2", fileColumns),
		userID, fileName,
	)

	file, err := scanFile(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrFileNotFound
	}
	if err != nil {
		return nil, err
	}
	return file, nil
}

func scanFile(row pgx.Row) (*domain.File, error) {
	var file domain.File
	err := row.Scan(
		&file.ID,
		&file.UserID,
		&file.FilePath,
		&file.FileName,
		&file.Authenticated,
		&file.Type,
		&file.CreatedAt,
		&file.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &file, nil
}
