package port

import (
	"context"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
)

type EventService interface {
	DeleteFile(ctx context.Context, identity *domain.Identity, fileName string) error
	SendFile(ctx context.Context, identity *domain.Identity, fileName, toEmail string) error
	AuthenticateFile(ctx context.Context, identity *domain.Identity, urlDocument, fileName string) error
}

type IdentityResolver interface {
	Resolve(ctx context.Context, authorizationHeader string) (*domain.Identity, error)
}
