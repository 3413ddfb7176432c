package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"festival-lineup/config"
	"festival-lineup/internal/handler"
	"festival-lineup/internal/model"
	"festival-lineup/internal/service/mocks"
	"festival-lineup/internal/web"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func TestRouter(t *testing.T) {
	eventService := mocks.NewEventServiceMock()
	userService := mocks.NewUserServiceMock()
	pages, err := web.NewPages()
	require.NoError(t, err)

	router := newRouter(config.LoadTestConfig(), routes{
		events: handler.NewEventHandler(eventService),
		users:  handler.NewUserHandler(userService),
		health: handler.NewHealthHandler(okPinger{}),
		pages:  pages,
	}, false)

	eventService.On("List", mock.Anything).Return([]*model.Event{}, nil)
	userService.On("List", mock.Anything).Return([]*model.User{}, nil)

	for _, path := range []string{"/health", "/ready", "/metrics", "/", "/dashboard", "/static/script.js", "/api/events", "/api/users"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}

	t.Run("RequestIDAndCORS", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/events", nil)
		req.Header.Set("Origin", "http://elsewhere.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	})
}
