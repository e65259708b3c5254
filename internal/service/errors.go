package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserBanned          = errors.New("user is banned")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAccessDenied is returned when a user touches a page or task they
	// neither own nor have been granted access to.
	ErrAccessDenied = errors.New("access denied")

	// ErrNotAdmin is returned when a non-admin account calls an admin-only
	// operation.
	ErrNotAdmin = errors.New("not an admin")

	// ErrDownloadNotAllowed is returned when a public-share viewer requests
	// the raw markdown of a page whose owner disabled downloads.
	ErrDownloadNotAllowed = errors.New("download not allowed")
)
