package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notes-api/models"
)

func TestValidator_CreateNote(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		req       models.CreateNoteRequest
		wantError bool
		errorMsg  string
	}{
		{
			name:      "Valid note request",
			req:       models.CreateNoteRequest{Title: "abc", Description: "xyz"},
			wantError: false,
		},
		{
			name:      "Missing title",
			req:       models.CreateNoteRequest{Description: "xyz"},
			wantError: true,
			errorMsg:  "title is required",
		},
		{
			name:      "Title too short",
			req:       models.CreateNoteRequest{Title: "ab", Description: "xyz"},
			wantError: true,
			errorMsg:  "title must be at least 3 characters",
		},
		{
			name:      "Title too long",
			req:       models.CreateNoteRequest{Title: strings.Repeat("a", 256), Description: "xyz"},
			wantError: true,
			errorMsg:  "title must be at most 255 characters",
		},
		{
			name:      "Description too long",
			req:       models.CreateNoteRequest{Title: "abc", Description: strings.Repeat("d", 1001)},
			wantError: true,
			errorMsg:  "description must be at most 1000 characters",
		},
		{
			name:      "Lengths count characters not bytes",
			req:       models.CreateNoteRequest{Title: "äöü", Description: "日本語"},
			wantError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_ListNotesQuery(t *testing.T) {
	v := New()

	tests := []struct {
		name      string
		query     models.ListNotesQuery
		wantField string
	}{
		{"Defaults", models.ListNotesQuery{Limit: 10}, ""},
		{"Largest page", models.ListNotesQuery{Limit: 100}, ""},
		{"Limit too large", models.ListNotesQuery{Limit: 101}, "limit"},
		{"Limit zero", models.ListNotesQuery{Limit: 0}, "limit"},
		{"Negative skip", models.ListNotesQuery{Skip: -1, Limit: 10}, "skip"},
		{"Search too long", models.ListNotesQuery{Limit: 10, Search: strings.Repeat("s", 256)}, "search"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.query)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var errs ValidationErrors
			require.True(t, errors.As(err, &errs))
			assert.Equal(t, tt.wantField, errs[0].Field)
		})
	}
}

func TestValidator_NotePath(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&models.NotePath{ID: 1}))

	err := v.Validate(&models.NotePath{ID: 0})
	require.Error(t, err)
	assert.Equal(t, "id must be greater than 0", err.Error())
}

func TestField(t *testing.T) {
	errs := Field("id", "int", "id must be an integer", strings.Repeat("x", 100))

	require.Len(t, errs, 1)
	assert.Equal(t, "id", errs[0].Field)
	assert.Equal(t, "int", errs[0].Tag)
	assert.Len(t, []rune(errs[0].Value), 67)
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "title", Message: "title is required", Tag: "required"},
		{Field: "description", Message: "description must be at least 3 characters", Tag: "min"},
	}

	assert.Equal(t, "title is required; description must be at least 3 characters", errs.Error())
}
