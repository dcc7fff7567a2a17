package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName        = errors.New("name is required")
	ErrNameTooLong      = errors.New("name is too long")
	ErrPasswordTooLong  = errors.New("password is too long")
	ErrInvalidUserID    = errors.New("user_id is required")
	ErrInvalidProjectID = errors.New("project_id is required")
	ErrInvalidID        = errors.New("id is required")
)
