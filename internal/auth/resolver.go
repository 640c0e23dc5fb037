package auth

import (
	"context"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/port"
)

const bearerPrefix = "Bearer "

// Resolver extracts the caller identity from an Authorization header. With a
// user store wired it returns the full user profile; without one it returns
// the minimal identity carrying only the user id.
type Resolver struct {
	verifier TokenVerifier
	users    port.UserStorage
}

// NewResolver builds a resolver. users may be nil.
func NewResolver(verifier TokenVerifier, users port.UserStorage) *Resolver {
	return &Resolver{
		verifier: verifier,
		users:    users,
	}
}

func (r *Resolver) Resolve(ctx context.Context, authorizationHeader string) (*domain.Identity, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, domain.ErrMissingCredential
	}

	claims, err := r.verifier.Verify(strings.TrimPrefix(authorizationHeader, bearerPrefix))
	if err != nil {
		return nil, err
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" {
		return nil, domain.ErrMissingIdentity
	}

	if r.users == nil {
		return &domain.Identity{UserID: userID}, nil
	}

	// The store reports a missing row as domain.ErrUnknownUser.
	user, err := r.users.GetUser(ctx, userID)
	if err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("User lookup failed")
		return nil, err
	}

	return &domain.Identity{
		UserID:         user.ID,
		Email:          user.Email,
		Name:           user.Name,
		DocumentNumber: user.DocumentNumber,
	}, nil
}
