// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-staffing/models"
)

// ---------------------------------------------------------------------------
// TestNewStaffingValidator
// ---------------------------------------------------------------------------

func TestNewStaffingValidator(t *testing.T) {
	v := NewStaffingValidator()
	require.NotNil(t, v)
}

// ---------------------------------------------------------------------------
// TestValidate_Dispatch
// ---------------------------------------------------------------------------

func TestValidate_Dispatch(t *testing.T) {
	v := NewStaffingValidator()
	ctx := context.Background()

	user := models.User{Name: "alice"}
	project := models.Project{Name: "apollo"}
	upsert := models.NewAssignmentUpsert(uuid.New(), uuid.New())

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "user value", obj: user},
		{name: "user pointer", obj: &user},
		{name: "project value", obj: project},
		{name: "project pointer", obj: &project},
		{name: "assignment upsert value", obj: upsert},
		{name: "assignment upsert pointer", obj: &upsert},
		{name: "unsupported", obj: 42, wantErr: ErrUnsupportedType},
		{name: "assignment is not a payload", obj: models.Assignment{}, wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.obj)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_User
// ---------------------------------------------------------------------------

func TestValidate_User(t *testing.T) {
	v := NewStaffingValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    models.User
		fields  []string
		wantErr error
	}{
		{name: "name only", user: models.User{Name: "alice"}},
		{name: "name and password", user: models.User{Name: "alice", Password: "pw", IsAdmin: true}},
		{name: "empty name", user: models.User{}, wantErr: ErrEmptyName},
		{name: "blank name", user: models.User{Name: "   "}, wantErr: ErrEmptyName},
		{name: "name too long", user: models.User{Name: strings.Repeat("n", MaxNameLength+1)}, wantErr: ErrNameTooLong},
		{name: "multibyte name at limit", user: models.User{Name: strings.Repeat("é", MaxNameLength)}},
		{name: "password too long", user: models.User{Name: "a", Password: strings.Repeat("p", MaxPasswordLength+1)}, wantErr: ErrPasswordTooLong},
		{name: "id required", user: models.User{Name: "a"}, fields: []string{FieldID}, wantErr: ErrInvalidID},
		{name: "id present", user: models.User{ID: uuid.New()}, fields: []string{FieldID}},
		{name: "unknown field", user: models.User{Name: "a"}, fields: []string{"email"}, wantErr: ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ---------------------------------------------------------------------------
// TestValidate_Project
// ---------------------------------------------------------------------------

func TestValidate_Project(t *testing.T) {
	v := NewStaffingValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Project{Name: "apollo"}))
	assert.ErrorIs(t, v.Validate(ctx, models.Project{}), ErrEmptyName)
	assert.ErrorIs(t, v.Validate(ctx, models.Project{Name: "x"}, FieldID), ErrInvalidID)
	assert.ErrorIs(t, v.Validate(ctx, models.Project{Name: "x"}, FieldPassword), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// TestValidate_AssignmentUpsert
// ---------------------------------------------------------------------------

func TestValidate_AssignmentUpsert(t *testing.T) {
	v := NewStaffingValidator()
	ctx := context.Background()

	begins := models.MustParseDate("2024-06-01")
	ends := models.MustParseDate("2024-01-01")
	userID, projectID := uuid.New(), uuid.New()

	reversed := models.NewAssignmentUpsert(uuid.New(), uuid.New())
	reversed.Begins = &begins
	reversed.Ends = &ends

	tests := []struct {
		name    string
		upsert  models.AssignmentUpsert
		wantErr error
	}{
		{name: "references only", upsert: models.NewAssignmentUpsert(uuid.New(), uuid.New())},
		{name: "zero uuids are left to the store", upsert: models.NewAssignmentUpsert(uuid.Nil, uuid.Nil)},
		{name: "missing user", upsert: models.AssignmentUpsert{ProjectID: &projectID}, wantErr: ErrInvalidUserID},
		{name: "missing project", upsert: models.AssignmentUpsert{UserID: &userID}, wantErr: ErrInvalidProjectID},
		{name: "ends before begins is accepted", upsert: reversed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.upsert)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
