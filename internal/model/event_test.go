package model_test

import (
	"testing"

	"festival-lineup/internal/model"
	apperrors "festival-lineup/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() *model.Event {
	return &model.Event{
		Name:        "The Midnight Owls",
		Genre:       "Rock",
		Image:       "https://img.example.com/owls.png",
		Description: "Loud guitars under the stars",
		WebsiteURL:  "https://owls.example.com",
	}
}

func strPtr(s string) *string { return &s }

func TestEvent_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, validEvent().Validate())
	})

	cases := map[string]func(e *model.Event){
		"name":        func(e *model.Event) { e.Name = "" },
		"genre":       func(e *model.Event) { e.Genre = "" },
		"image":       func(e *model.Event) { e.Image = "" },
		"description": func(e *model.Event) { e.Description = "   " },
		"websiteUrl":  func(e *model.Event) { e.WebsiteURL = "" },
	}
	for field, blank := range cases {
		t.Run("Missing_"+field, func(t *testing.T) {
			e := validEvent()
			blank(e)

			err := e.Validate()

			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Contains(t, err.Error(), field+" is required")
		})
	}
}

func TestUpdateEventParams(t *testing.T) {
	t.Run("EmptyParams", func(t *testing.T) {
		params := model.UpdateEventParams{}
		assert.True(t, params.IsEmpty())
		assert.NoError(t, params.Validate())
		assert.Empty(t, params.Fields())
	})

	t.Run("BlankSuppliedField", func(t *testing.T) {
		params := model.UpdateEventParams{Genre: strPtr(" ")}

		err := params.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "genre is required")
	})

	t.Run("ApplyMergesOnlySuppliedFields", func(t *testing.T) {
		e := validEvent()
		params := model.UpdateEventParams{Name: strPtr("Owls Reunion"), WebsiteURL: strPtr("https://reunion.example.com")}

		require.NoError(t, params.Validate())
		params.Apply(e)

		assert.Equal(t, "Owls Reunion", e.Name)
		assert.Equal(t, "https://reunion.example.com", e.WebsiteURL)
		assert.Equal(t, "Rock", e.Genre)
		assert.Equal(t, "Loud guitars under the stars", e.Description)
		assert.Equal(t, map[string]string{
			"name":       "Owls Reunion",
			"websiteUrl": "https://reunion.example.com",
		}, params.Fields())
	})
}

func TestUser_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		u := model.RegisterRequest{Name: "Ana", Email: "ana@example.com", Mobile: "555-0100"}.ToUser()
		assert.NoError(t, u.Validate())
	})

	t.Run("MissingMobile", func(t *testing.T) {
		u := model.RegisterRequest{Name: "Ana", Email: "ana@example.com"}.ToUser()

		err := u.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
		assert.Contains(t, err.Error(), "mobile is required")
	})
}
