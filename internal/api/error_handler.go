package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/api/handler"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors. Internal
// details (stack traces, secret material) never appear in it.
type errorResponse struct {
	Code             string            `json:"code"`
	Message          string            `json:"message"`
	Timestamp        time.Time         `json:"timestamp"`
	ValidationErrors map[string]string `json:"validation_errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps the domain error taxonomy to deterministic HTTP status codes.
//   - Resolves the human message through the localization service using the
//     request's Accept-Language.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger, localization ports.LocalizationService) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := resolveError(err, log, localization, c)
		_ = c.JSON(status, resp)
	}
}

func resolveError(err error, log zerolog.Logger, localization ports.LocalizationService, c echo.Context) (int, errorResponse) {
	now := time.Now().UTC()
	locale := requestLocale(c)

	localize := func(key, fallback string) string {
		if localization == nil {
			return fallback
		}
		msg := localization.GetMessage(c.Request().Context(), key, locale)
		if msg == key {
			return fallback
		}
		return msg
	}

	// Validation failures carry per-field detail.
	var ve *handler.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{
			Code:             "VALIDATION_ERROR",
			Message:          localize("error.validation.failed", "validation failed"),
			Timestamp:        now,
			ValidationErrors: ve.Fields,
		}
	}

	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{
			Code:      http.StatusText(he.Code),
			Message:   fmt.Sprintf("%v", he.Message),
			Timestamp: now,
		}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, errorResponse{
			Code:      "ACCESS_DENIED",
			Message:   localize("error.access.denied", "you do not have permission to perform this action"),
			Timestamp: now,
		}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{
			Code:      "INVALID_CREDENTIALS",
			Message:   localize("error.invalid.credentials", "invalid credentials"),
			Timestamp: now,
		}
	case errors.Is(err, domain.ErrPostNotFound),
		errors.Is(err, domain.ErrTagNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrMessageNotFound):
		return http.StatusNotFound, errorResponse{
			Code:      "RESOURCE_NOT_FOUND",
			Message:   localize("error.resource.notfound", err.Error()),
			Timestamp: now,
		}
	case errors.Is(err, domain.ErrDuplicateUser), errors.Is(err, domain.ErrDuplicateMessage):
		return http.StatusConflict, errorResponse{
			Code:      "DUPLICATE_RESOURCE",
			Message:   localize("error.duplicate.resource", err.Error()),
			Timestamp: now,
		}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{
		Code:      "INTERNAL_SERVER_ERROR",
		Message:   localize("error.server.internal", "internal server error"),
		Timestamp: now,
	}
}

// requestLocale extracts the primary language tag from Accept-Language.
// "es-MX,es;q=0.9" → "es". Empty header means the default locale.
func requestLocale(c echo.Context) string {
	header := c.Request().Header.Get("Accept-Language")
	if header == "" {
		return domain.DefaultLocale
	}

	primary := header
	if i := strings.IndexAny(primary, ",;"); i >= 0 {
		primary = primary[:i]
	}
	if i := strings.Index(primary, "-"); i >= 0 {
		primary = primary[:i]
	}
	primary = strings.TrimSpace(strings.ToLower(primary))
	if primary == "" || primary == "*" {
		return domain.DefaultLocale
	}
	return primary
}
