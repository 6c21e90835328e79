package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupInput struct {
	FirstName string `json:"first_name" validate:"required,min=2,max=50"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone_number" validate:"omitempty,phone"`
	FamilyID  string `json:"family_id" validate:"omitempty,userid"`
	Status    string `json:"status" validate:"omitempty,request-status"`
	From      string `form:"start" validate:"omitempty,isodate"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&signupInput{FirstName: "A", Email: "nope"})
	require.Error(t, err)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "Must be at least 2 characters long", vErr.Errors["first_name"])
	assert.Equal(t, "Must be a valid email address", vErr.Errors["email"])
}

func TestValidate_CustomRules(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		input     signupInput
		wantField string
	}{
		{"bad phone", signupInput{Phone: "abc"}, "phone_number"},
		{"short id", signupInput{FamilyID: "123"}, "family_id"},
		{"unknown status", signupInput{Status: "Done"}, "status"},
		{"bad date", signupInput{From: "31/12/2024"}, "start"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.input.FirstName = "Dana"
			tt.input.Email = "dana@example.com"

			err := v.Validate(&tt.input)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Errors, tt.wantField)
		})
	}
}

func TestValidate_Valid(t *testing.T) {
	v := New()
	err := v.Validate(&signupInput{
		FirstName: "Dana",
		Email:     "dana@example.com",
		Phone:     "+972 50-1234567",
		FamilyID:  "a1b2c3d4e",
		Status:    "InProgress",
		From:      "2024-01-01",
	})
	assert.NoError(t, err)
}

func TestParseDateWithPrecision(t *testing.T) {
	tests := []struct {
		in       string
		want     time.Time
		dateOnly bool
		ok       bool
	}{
		{"2024-03-01", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), true, true},
		{"2024-03-01T10:30:00", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), false, true},
		{"2024-03-01T10:30:00Z", time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC), false, true},
		{"01-03-2024", time.Time{}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, dateOnly, ok := ParseDateWithPrecision(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.dateOnly, dateOnly)
			if tt.ok {
				assert.True(t, tt.want.Equal(got), "got %v", got)
			}
		})
	}
}
