package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/bloghub/blog-api/internal/metrics"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/ports"
	"github.com/bloghub/blog-api/internal/core/service"
)

// Identity establishes the caller's identity from a bearer token, if one is
// presented and valid. It never rejects a request: every failure mode is
// logged and the request proceeds anonymously, leaving the authorization
// service to deny access downstream. Runs once per request; if a principal is
// already on the context the middleware does not re-authenticate.
func Identity(tokens ports.TokenService, users ports.UserRepository, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return next(c)
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}
			raw := parts[1]

			username, err := tokens.Validate(raw)
			if err != nil {
				kind := service.TokenErrorKind(err)
				metrics.AuthFailuresTotal.WithLabelValues(kind).Inc()
				log.Warn().
					Str("reason", kind).
					Str("path", c.Request().URL.Path).
					Msg("bearer token rejected")
				return next(c)
			}
			if username == "" {
				return next(c)
			}

			if _, already := domain.PrincipalFromContext(c.Request().Context()); already {
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), username)
			if err != nil {
				reason := "lookup_failed"
				if errors.Is(err, domain.ErrUserNotFound) {
					reason = "user_missing"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				log.Warn().
					Err(err).
					Str("username", username).
					Str("path", c.Request().URL.Path).
					Msg("token subject did not resolve to a user")
				return next(c)
			}

			// Final re-check of the token against the resolved account.
			if !tokens.MatchesPrincipal(raw, user) {
				metrics.AuthFailuresTotal.WithLabelValues("subject_mismatch").Inc()
				log.Warn().
					Str("username", username).
					Str("path", c.Request().URL.Path).
					Msg("token no longer matches resolved principal")
				return next(c)
			}

			metrics.AuthSuccessTotal.Inc()
			principal := &domain.Principal{
				UserID:   user.ID,
				Username: user.Username,
				Role:     user.Role,
			}
			ctx := domain.WithPrincipal(c.Request().Context(), principal)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}
