package repository_test

import (
	"context"
	"testing"

	"festival-lineup/internal/model"
	apperrors "festival-lineup/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestEvent(name, genre string) *model.Event {
	return &model.Event{
		Name:        name,
		Genre:       genre,
		Image:       "https://img.example.com/" + name + ".png",
		Description: name + " live on the main stage",
		WebsiteURL:  "https://example.com/" + name,
	}
}

// unknownIDs covers ids of every driver's shape plus a malformed one.
func unknownIDs() []string {
	return []string{uuid.New().String(), primitive.NewObjectID().Hex(), "not-an-id"}
}

func strPtr(s string) *string { return &s }

func TestEventRepository_Create(t *testing.T) {
	ctx := context.Background()

	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			t.Run("Success", func(t *testing.T) {
				b.reset(t)

				input := newTestEvent("Aurora", "Rock")
				created, err := b.events.Create(ctx, input)

				require.NoError(t, err)
				assert.NotEmpty(t, created.ID)
				assert.Equal(t, input.Name, created.Name)
				assert.Equal(t, input.Genre, created.Genre)
				assert.Equal(t, input.Image, created.Image)
				assert.Equal(t, input.Description, created.Description)
				assert.Equal(t, input.WebsiteURL, created.WebsiteURL)
				assert.NotZero(t, created.CreatedAt)
				assert.NotZero(t, created.UpdatedAt)
			})

			t.Run("BlankFieldRejectedByStore", func(t *testing.T) {
				b.reset(t)

				input := newTestEvent("Aurora", "Rock")
				input.Genre = " "

				_, err := b.events.Create(ctx, input)

				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

				events, err := b.events.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, events)
			})
		})
	}
}

func TestEventRepository_List(t *testing.T) {
	ctx := context.Background()

	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			t.Run("EmptyList", func(t *testing.T) {
				b.reset(t)

				events, err := b.events.List(ctx)

				require.NoError(t, err)
				assert.NotNil(t, events)
				assert.Empty(t, events)
			})

			t.Run("OrderByCreation", func(t *testing.T) {
				b.reset(t)

				for _, name := range []string{"Event A", "Event B", "Event C"} {
					_, err := b.events.Create(ctx, newTestEvent(name, "Jazz"))
					require.NoError(t, err)
				}

				events, err := b.events.List(ctx)

				require.NoError(t, err)
				require.Len(t, events, 3)
				// 先建立的在前
				assert.Equal(t, "Event A", events[0].Name)
				assert.Equal(t, "Event B", events[1].Name)
				assert.Equal(t, "Event C", events[2].Name)
			})
		})
	}
}

func TestEventRepository_FindByID(t *testing.T) {
	ctx := context.Background()

	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			t.Run("Success", func(t *testing.T) {
				b.reset(t)

				created, err := b.events.Create(ctx, newTestEvent("Find Me", "Pop"))
				require.NoError(t, err)

				found, err := b.events.FindByID(ctx, created.ID)

				require.NoError(t, err)
				assert.Equal(t, created.ID, found.ID)
				assert.Equal(t, "Find Me", found.Name)
				assert.Equal(t, "Pop", found.Genre)
			})

			t.Run("NotFound", func(t *testing.T) {
				b.reset(t)

				for _, id := range unknownIDs() {
					_, err := b.events.FindByID(ctx, id)

					require.Error(t, err, id)
					assert.ErrorIs(t, err, apperrors.ErrEventNotFound, id)
				}
			})
		})
	}
}

func TestEventRepository_Update(t *testing.T) {
	ctx := context.Background()

	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			t.Run("Success_MergesSuppliedFields", func(t *testing.T) {
				b.reset(t)

				created, err := b.events.Create(ctx, newTestEvent("Original", "Rock"))
				require.NoError(t, err)

				updated, err := b.events.Update(ctx, created.ID, model.UpdateEventParams{
					Name:        strPtr("Renamed"),
					Description: strPtr("New description"),
				})

				require.NoError(t, err)
				assert.Equal(t, created.ID, updated.ID)
				assert.Equal(t, "Renamed", updated.Name)
				assert.Equal(t, "New description", updated.Description)
				assert.Equal(t, "Rock", updated.Genre)
				assert.Equal(t, created.WebsiteURL, updated.WebsiteURL)
				assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

				found, err := b.events.FindByID(ctx, created.ID)
				require.NoError(t, err)
				assert.Equal(t, "Renamed", found.Name)
				assert.Equal(t, "Rock", found.Genre)
			})

			t.Run("NotFound", func(t *testing.T) {
				b.reset(t)

				for _, id := range unknownIDs() {
					_, err := b.events.Update(ctx, id, model.UpdateEventParams{Name: strPtr("Any")})

					require.Error(t, err, id)
					assert.ErrorIs(t, err, apperrors.ErrEventNotFound, id)
				}
			})

			t.Run("InvalidInput_EmptyParams", func(t *testing.T) {
				b.reset(t)

				created, err := b.events.Create(ctx, newTestEvent("Event", "Rock"))
				require.NoError(t, err)

				_, err = b.events.Update(ctx, created.ID, model.UpdateEventParams{})

				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			})

			t.Run("InvalidInput_BlankField", func(t *testing.T) {
				b.reset(t)

				created, err := b.events.Create(ctx, newTestEvent("Event", "Rock"))
				require.NoError(t, err)

				_, err = b.events.Update(ctx, created.ID, model.UpdateEventParams{Genre: strPtr("")})

				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

				found, err := b.events.FindByID(ctx, created.ID)
				require.NoError(t, err)
				assert.Equal(t, "Rock", found.Genre)
			})
		})
	}
}

func TestEventRepository_Delete(t *testing.T) {
	ctx := context.Background()

	for _, b := range backends(t) {
		t.Run(b.name, func(t *testing.T) {
			t.Run("Success_ThenNotFound", func(t *testing.T) {
				b.reset(t)

				created, err := b.events.Create(ctx, newTestEvent("Short Lived", "Punk"))
				require.NoError(t, err)

				require.NoError(t, b.events.Delete(ctx, created.ID))

				_, err = b.events.FindByID(ctx, created.ID)
				assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

				err = b.events.Delete(ctx, created.ID)
				assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

				events, err := b.events.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, events)
			})

			t.Run("NotFound", func(t *testing.T) {
				b.reset(t)

				for _, id := range unknownIDs() {
					assert.ErrorIs(t, b.events.Delete(ctx, id), apperrors.ErrEventNotFound, id)
				}
			})
		})
	}
}
