package auth

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "herzlink/internal/errors"
)

// ContextKey is the echo context key under which validated session claims are
// stored for handlers.
const ContextKey = "session"

// RequireSession runs after the JWT middleware has verified the signature and
// additionally checks that the session is still live in the store, so a
// logged-out token is rejected before any handler runs.
func RequireSession(store SessionStoreInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.MapErrorToHTTP(apperrors.ErrInvalidSession).ToErrorResponse())
			}
			claims, ok := token.Claims.(*Claims)
			if !ok || claims.ID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.MapErrorToHTTP(apperrors.ErrInvalidSession).ToErrorResponse())
			}
			if _, _, err := store.GetSession(c.Request().Context(), claims.ID); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.MapErrorToHTTP(apperrors.ErrInvalidSession).ToErrorResponse())
			}
			c.Set(ContextKey, claims)
			return next(c)
		}
	}
}

// CurrentUserID returns the authenticated user's ID from the request context.
func CurrentUserID(c echo.Context) (uuid.UUID, bool) {
	claims, ok := c.Get(ContextKey).(*Claims)
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
