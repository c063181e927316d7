package domain

import "errors"

// Closed error taxonomy. Callers match with errors.Is; the HTTP error handler
// translates each variant into its status code and envelope.
var (
	// ErrAccessDenied covers both "not authorized for this action" and
	// "no resolvable caller identity"; the two are deliberately
	// indistinguishable so responses don't reveal which case occurred.
	ErrAccessDenied = errors.New("access denied")

	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrPostNotFound    = errors.New("post not found")
	ErrTagNotFound     = errors.New("tag not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrMessageNotFound = errors.New("localization message not found")

	ErrDuplicateUser    = errors.New("user already exists")
	ErrDuplicateMessage = errors.New("localization message already exists")
)
