package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"festival-lineup/internal/model"
	"festival-lineup/pkg/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func newServer(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return client.New(srv.URL + "/")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ListEvents(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/api/events", r.URL.Path)
		writeJSON(w, http.StatusOK, []model.Event{{ID: "a", Name: "A", WebsiteURL: "https://a.example.com"}})
	})

	events, err := c.ListEvents(context.Background())

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "a", events[0].ID)
	assert.Equal(t, "https://a.example.com", events[0].WebsiteURL)
}

func TestClient_GetEvent_NotFound(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/events/missing", r.URL.Path)
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "Event not found"})
	})

	_, err := c.GetEvent(context.Background(), "missing")

	require.Error(t, err)
	assert.True(t, client.IsNotFound(err))
	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Event not found", apiErr.Message)
}

func TestClient_CreateEvent(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "A", body["name"])
		assert.Equal(t, "https://a.example.com", body["websiteUrl"])
		assert.NotContains(t, body, "id")

		writeJSON(w, http.StatusCreated, model.Event{ID: "new-id", Name: body["name"]})
	})

	created, err := c.CreateEvent(context.Background(), &model.Event{
		Name: "A", Genre: "Rock", Image: "i", Description: "d", WebsiteURL: "https://a.example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, "new-id", created.ID)
}

func TestClient_CreateEvent_ValidationError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"message": "Error creating event",
			"error":   "invalid input: genre is required",
		})
	})

	_, err := c.CreateEvent(context.Background(), &model.Event{Name: "A"})

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "invalid input: genre is required", apiErr.Detail)
	assert.Equal(t, "400 Error creating event: invalid input: genre is required", apiErr.Error())
}

func TestClient_UpdateEvent_SendsOnlySuppliedFields(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "PUT", r.Method)
		assert.Equal(t, "/api/events/a", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]string{"genre": "Jazz"}, body)

		writeJSON(w, http.StatusOK, model.Event{ID: "a", Genre: "Jazz"})
	})

	updated, err := c.UpdateEvent(context.Background(), "a", model.UpdateEventParams{Genre: strPtr("Jazz")})

	require.NoError(t, err)
	assert.Equal(t, "Jazz", updated.Genre)
}

func TestClient_DeleteEvent(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "DELETE", r.Method)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Event deleted successfully"})
	})

	msg, err := c.DeleteEvent(context.Background(), "a")

	require.NoError(t, err)
	assert.Equal(t, "Event deleted successfully", msg)
}

func TestClient_Register(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/register", r.URL.Path)
			var req model.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "ana@example.com", req.Email)
			writeJSON(w, http.StatusCreated, map[string]string{"message": "Registration successful!"})
		})

		msg, err := c.Register(context.Background(), model.RegisterRequest{Name: "Ana", Email: "ana@example.com", Mobile: "1"})

		require.NoError(t, err)
		assert.Equal(t, "Registration successful!", msg)
	})

	t.Run("Duplicate", func(t *testing.T) {
		c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "Email already registered."})
		})

		_, err := c.Register(context.Background(), model.RegisterRequest{Name: "Ana", Email: "ana@example.com", Mobile: "1"})

		var apiErr *client.APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "Email already registered.", apiErr.Message)
	})
}

func TestClient_ListUsers_NonJSONError(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	})

	_, err := c.ListUsers(context.Background())

	var apiErr *client.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "Bad Gateway", apiErr.Message)
}
