package service

import "errors"

var (
	// ErrWrongCredentials is returned when the user is unknown or the
	// password does not match. The two cases are deliberately
	// indistinguishable to the caller.
	ErrWrongCredentials = errors.New("wrong username or password")

	// ErrPostNotReached is returned when the post id is unknown or the
	// claimed location is outside the post's geofence. The two cases are
	// deliberately indistinguishable to the caller.
	ErrPostNotReached = errors.New("post not reached")

	// ErrInvalidUserName is returned when the userName is empty.
	ErrInvalidUserName = errors.New("invalid username")

	// ErrInvalidLocation is returned when coordinates are out of range.
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidDistance is returned when a search distance is negative.
	ErrInvalidDistance = errors.New("invalid distance")

	// ErrInvalidPostID is returned when the post id is empty.
	ErrInvalidPostID = errors.New("invalid post id")

	// ErrMissingTask is returned when a post is created without task text.
	ErrMissingTask = errors.New("task text is required")

	// ErrMissingPassword is returned when a registration has no password.
	ErrMissingPassword = errors.New("password is required")
)
