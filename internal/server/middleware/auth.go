package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/mpayalal/bridge-lotso-delete/internal/core/domain"
	"github.com/mpayalal/bridge-lotso-delete/internal/core/port"
)

const identityKey = "identity"

// Authenticate resolves the caller identity before the handler runs. A failed
// resolution short-circuits with 401 and no broker I/O happens for the
// request.
func Authenticate(resolver port.IdentityResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			identity, err := resolver.Resolve(c.Request().Context(), header)
			if err != nil {
				if !domain.IsAuthError(err) {
					log.WithError(err).Error("Identity resolution failed")
					return c.JSON(http.StatusInternalServerError, map[string]string{
						"error": "could not resolve identity",
					})
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": err.Error(),
				})
			}

			SetIdentity(c, identity)
			return next(c)
		}
	}
}

// SetIdentity stores the resolved identity on the request context.
func SetIdentity(c echo.Context, identity *domain.Identity) {
	c.Set(identityKey, identity)
}

// IdentityFromContext returns the identity stored by Authenticate. Handlers
// behind the middleware can rely on it being present.
func IdentityFromContext(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}
