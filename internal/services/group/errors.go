package group

import "errors"

var (
	// ErrPermissionDenied is returned when the caller's role does not
	// authorize the operation in the target group.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrWrongPassword is returned when a join password does not match.
	ErrWrongPassword = errors.New("password incorrect")

	// ErrInvalidRole is returned when a role argument is outside the
	// assignable domain.
	ErrInvalidRole = errors.New("invalid member role")
)
