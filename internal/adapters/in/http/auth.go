package http

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/maxwellkiplagat/Deliveroo/internal/adapters/in/http/httpmodels"
	"github.com/maxwellkiplagat/Deliveroo/internal/core/domain/model/kernel"
)

// Context keys set by the auth middleware.
const (
	ctxUserID   = "userID"
	ctxUserRole = "userRole"
)

const roleAdmin = "admin"

// Auth returns echo middleware that authenticates requests with a Bearer
// JWT signed with secret. The token's sub claim must be the user's UUID;
// an optional role claim carries the user's role.
func Auth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return unauthorized(c, "Missing authorization header")
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return unauthorized(c, "Authorization header must be a Bearer token")
			}

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(parts[1], claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				return unauthorized(c, "Invalid or expired token")
			}

			sub, err := claims.GetSubject()
			if err != nil || sub == "" {
				return unauthorized(c, "Token is missing a subject")
			}

			userID, err := kernel.UUIDFromString(sub)
			if err != nil {
				return unauthorized(c, "Token subject is not a valid user id")
			}

			role, _ := claims["role"].(string)

			c.Set(ctxUserID, userID)
			c.Set(ctxUserRole, role)
			return next(c)
		}
	}
}

// RequireAdmin rejects authenticated requests whose token does not carry
// the admin role. Must run after Auth.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get(ctxUserRole).(string)
		if role != roleAdmin {
			return c.JSON(http.StatusForbidden, httpmodels.Error{
				Code:    http.StatusForbidden,
				Message: "Admin role required",
			})
		}
		return next(c)
	}
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, httpmodels.Error{
		Code:    http.StatusUnauthorized,
		Message: message,
	})
}

func userIDFromContext(c echo.Context) (kernel.UUID, bool) {
	id, ok := c.Get(ctxUserID).(kernel.UUID)
	return id, ok
}
