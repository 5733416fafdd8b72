package fiber

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v3"

	"github.com/taskward/taskward/core"
	"github.com/taskward/taskward/services"
)

// localUserIDKey is where the guard stores the authenticated user ID
// for downstream handlers.
const localUserIDKey = "userID"

// protect wraps a handler with the authentication guard. The token is
// extracted from the session cookie (or an Authorization bearer
// header), validated, and the resolved principal attached to the
// request before next runs. Any failure short-circuits to 401; the
// handler body never executes and storage is never touched.
func (a *Adapter) protect(next fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			return writeError(c, core.ErrMissingAuthToken)
		}

		userID, err := a.auth.Authenticate(token)
		if err != nil {
			return writeError(c, err)
		}

		c.Locals(localUserIDKey, userID)
		return next(c)
	}
}

// extractToken pulls the session token from the request. The cookie is
// the primary location; an Authorization header with a Bearer token is
// accepted as the equivalent bearer location.
func extractToken(c fiber.Ctx) string {
	if cookie := c.Cookies(services.SessionCookieName); cookie != "" {
		return cookie
	}

	authHeader := c.Get(fiber.HeaderAuthorization)
	if len(authHeader) > 7 && authHeader[:7] == "Bearer " {
		return authHeader[7:]
	}
	return ""
}

// principal returns the user ID the guard attached to the request.
func principal(c fiber.Ctx) string {
	userID, _ := c.Locals(localUserIDKey).(string)
	return userID
}

// writeError maps a service error to its HTTP response.
func writeError(c fiber.Ctx, err error) error {
	return c.Status(mapErrorToStatus(err)).JSON(core.ErrorResponse{
		Error: err.Error(),
	})
}

// mapErrorToStatus maps service error types to HTTP status codes.
// Every authentication failure collapses to 401 and the merged task
// lookup failure to 404; the internal distinctions stay internal.
func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrInvalidCredentials),
		errors.Is(err, core.ErrUserNotFound),
		errors.Is(err, core.ErrMissingAuthToken),
		errors.Is(err, core.ErrInvalidToken),
		errors.Is(err, core.ErrTokenExpired):
		return http.StatusUnauthorized

	case errors.Is(err, core.ErrEmailRequired),
		errors.Is(err, core.ErrInvalidEmail),
		errors.Is(err, core.ErrNameRequired),
		errors.Is(err, core.ErrNameTooShort),
		errors.Is(err, core.ErrNameTooLong),
		errors.Is(err, core.ErrPasswordRequired),
		errors.Is(err, core.ErrPasswordTooShort),
		errors.Is(err, core.ErrPasswordTooLong),
		errors.Is(err, core.ErrTitleRequired),
		errors.Is(err, core.ErrInvalidStatus):
		return http.StatusBadRequest

	case errors.Is(err, core.ErrUserExists):
		return http.StatusConflict

	case errors.Is(err, core.ErrTaskNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}
