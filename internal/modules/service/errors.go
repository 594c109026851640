package service

import "errors"

// Sentinel errors returned by the services. Handlers map these onto the
// response envelope; anything else is treated as an internal failure.
var (
	// ErrInvalidCredentials: unknown username or wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDisabled: the identity's active flag is false.
	ErrAccountDisabled = errors.New("account disabled")
	// ErrPasswordMismatch: registration password confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrEmailTaken: another account already uses the email.
	ErrEmailTaken = errors.New("email already in use")
	// ErrNameTaken: a task type with that name already exists.
	ErrNameTaken = errors.New("name already in use")
	// ErrMissingFields: a required field is empty.
	ErrMissingFields = errors.New("required field missing")
	// ErrInvalidMonth: the date is not a usable "YYYY-MM" value.
	ErrInvalidMonth = errors.New("invalid month format")
	// ErrUnknownTaskType: the referenced task type does not exist.
	ErrUnknownTaskType = errors.New("unknown task type")
	// ErrUnknownRole: the referenced role does not exist.
	ErrUnknownRole = errors.New("unknown role")
	// ErrNotFoundOrUnauthorized merges "row absent" and "row out of the
	// caller's scope" so callers cannot probe for other users' rows.
	ErrNotFoundOrUnauthorized = errors.New("not found or not authorized")
	// ErrSelfModification: a super admin targeted their own identity.
	ErrSelfModification = errors.New("cannot modify own account")
	// ErrNoSession: the presented token resolves to nothing.
	ErrNoSession = errors.New("no such session")
)
