package port

import (
	"context"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

type UserStorage interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
}

type FileStorage interface {
	ListByUser(ctx context.Context, userID string) ([]domain.File, error)
	GetByName(ctx context.Context, userID, fileName string) (*domain.File, error)
}
