package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/techchallenge/user-service/internal/api/handler"
	"github.com/techchallenge/user-service/internal/core/domain"
)

// MIMEProblemJSON is the content type of every error body.
const MIMEProblemJSON = "application/problem+json"

// NewHTTPErrorHandler returns the single place where errors become HTTP
// responses. Known domain errors get a stable problem type; anything
// unexpected is logged and answered with a generic 500.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		p := resolveError(err, log, c)
		c.Response().Header().Set(echo.HeaderContentType, MIMEProblemJSON)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(p.Status)
			return
		}
		_ = c.JSON(p.Status, p)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) handler.Problem {
	now := time.Now().UTC()

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return handler.Problem{Type: "/invalid-fields", Title: "Invalid fields", Status: http.StatusBadRequest, Detail: ve.Error(), Timestamp: now}
	}

	switch {
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return handler.Problem{Type: "/email-already-exists", Title: "Email already exists", Status: http.StatusConflict, Detail: err.Error(), Timestamp: now}
	case errors.Is(err, domain.ErrUserNotFound):
		return handler.Problem{Type: "/resource-not-found", Title: "Resource not found", Status: http.StatusNotFound, Detail: err.Error(), Timestamp: now}
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, domain.ErrInvalidPassword):
		return handler.Problem{Type: "/invalid-credentials", Title: "Invalid credentials", Status: http.StatusBadRequest, Detail: err.Error(), Timestamp: now}
	case errors.Is(err, domain.ErrInvalidUserType):
		return handler.Problem{Type: "/invalid-argument", Title: "Invalid argument", Status: http.StatusBadRequest, Detail: err.Error(), Timestamp: now}
	}

	// Echo's own errors: bind failures, unknown routes, wrong methods.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		typ := "/http-error"
		if he.Code == http.StatusBadRequest {
			typ = "/malformed-request"
		}
		return handler.Problem{Type: typ, Title: http.StatusText(he.Code), Status: he.Code, Detail: fmt.Sprintf("%v", he.Message), Timestamp: now}
	}

	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")

	return handler.Problem{
		Type:      "/internal-error",
		Title:     "Internal server error",
		Status:    http.StatusInternalServerError,
		Detail:    "An unexpected error occurred.",
		Timestamp: now,
	}
}
