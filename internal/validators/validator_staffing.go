package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-staffing/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the identifier of an already persisted entity.
	FieldID = "id"

	// FieldName targets the unique name of a user or a project.
	FieldName = "name"

	// FieldPassword targets the optional password of a user.
	FieldPassword = "password"

	// FieldUserID targets the user reference of an assignment.
	FieldUserID = "user_id"

	// FieldProjectID targets the project reference of an assignment.
	FieldProjectID = "project_id"
)

// Length limits, counted in runes.
const (
	MaxNameLength     = 255
	MaxPasswordLength = 1024
)

// StaffingValidator implements [Validator] for users, projects and
// assignment payloads. Both value and pointer forms are accepted.
type StaffingValidator struct{}

// NewStaffingValidator constructs a new StaffingValidator.
func NewStaffingValidator() Validator {
	return &StaffingValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// Supported types:
//   - models.User / *models.User (default fields: name, password)
//   - models.Project / *models.Project (default fields: name)
//   - models.AssignmentUpsert / *models.AssignmentUpsert (default fields: user_id, project_id)
//
// Returns ErrUnsupportedType for anything else.
func (v *StaffingValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.Project:
		return v.validateProject(ctx, value, fields...)
	case *models.Project:
		return v.validateProject(ctx, *value, fields...)

	case models.AssignmentUpsert:
		return v.validateAssignmentUpsert(ctx, value, fields...)
	case *models.AssignmentUpsert:
		return v.validateAssignmentUpsert(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *StaffingValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if user.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldName:
			if err := validateName(user.Name); err != nil {
				return err
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *StaffingValidator) validateProject(_ context.Context, project models.Project, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if project.ID == uuid.Nil {
				return ErrInvalidID
			}
		case FieldName:
			if err := validateName(project.Name); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validateAssignmentUpsert checks that both references are present in the
// payload. Any UUID, the zero one included, is left to the foreign keys; the
// order of begins and ends is not constrained.
func (v *StaffingValidator) validateAssignmentUpsert(_ context.Context, upsert models.AssignmentUpsert, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldProjectID}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if upsert.UserID == nil {
				return ErrInvalidUserID
			}
		case FieldProjectID:
			if upsert.ProjectID == nil {
				return ErrInvalidProjectID
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(name) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}
