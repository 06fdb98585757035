package service

import "errors"

// Sentinel errors returned by services. Handlers map them to HTTP status
// codes; the messages are safe to surface to clients.
var (
	// ErrNotFound covers both records that do not exist and records hidden
	// from the caller by scoping — the two are indistinguishable on purpose.
	ErrNotFound = errors.New("not found")

	// ErrForbidden is a capability denial: the caller is authenticated but
	// may not perform this operation.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	// ErrBadReference means a referenced record (employee, shift, schedule)
	// does not exist; surfaced as an input error, not a 404.
	ErrBadReference = errors.New("referenced record does not exist")

	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTime      = errors.New("time must be in HH:MM or HH:MM:SS format")
	ErrPasswordMismatch = errors.New("password fields didn't match")

	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("refresh token invalid or expired")

	// Conflict errors — the write is rejected and the store left unchanged.
	ErrPTOConflict         = errors.New("cannot assign a shift when PTO is approved on this date")
	ErrDuplicateAssignment = errors.New("an assignment already exists for this employee and date")
	ErrDuplicatePTO        = errors.New("a PTO request already exists for this employee and date")
	ErrDuplicatePreference = errors.New("a preference already exists for this employee and date")
	ErrDuplicateLunchBreak = errors.New("a lunch break override already exists for this assignment")
	ErrDuplicateUsername   = errors.New("username is already taken")
	ErrAssignmentLocked    = errors.New("assignment is locked and cannot be modified")
	ErrCannotUnlock        = errors.New("a locked assignment cannot be unlocked")

	ErrInvalidPTOTransition  = errors.New("status can only change from pending to approved or denied")
	ErrPaidExceedsDuration   = errors.New("default_paid_hours may not exceed duration_hours")
	ErrStatusChangeForbidden = errors.New("only admins may change the PTO status")
)
