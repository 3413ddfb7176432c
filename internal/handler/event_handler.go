package handler

import (
	"errors"
	"net/http"

	"festival-lineup/internal/model"
	"festival-lineup/internal/service"
	apperrors "festival-lineup/pkg/app_errors"
	"festival-lineup/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	msgCreateEvent  = "Error creating event"
	msgListEvents   = "Error fetching events"
	msgGetEvent     = "Error fetching event"
	msgUpdateEvent  = "Error updating event"
	msgDeleteEvent  = "Error deleting event"
	msgEventMissing = "Event not found"
	msgEventDeleted = "Event deleted successfully"
)

type EventHandler struct {
	service service.EventService
}

func NewEventHandler(service service.EventService) *EventHandler {
	return &EventHandler{service: service}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api")
	{
		router.GET("events", h.List)
		router.GET("events/:id", h.GetByID)
		router.POST("events", h.Create)
		router.PUT("events/:id", h.Update)
		router.DELETE("events/:id", h.Delete)
	}
}

// CreateEventRequest 建立活動請求；必填檢查交給 model.Event.Validate
type CreateEventRequest struct {
	Name        string `json:"name"`
	Genre       string `json:"genre"`
	Image       string `json:"image"`
	Description string `json:"description"`
	WebsiteURL  string `json:"websiteUrl"`
}

func (h *EventHandler) List(c *gin.Context) {
	events, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "List", msgListEvents)
		return
	}
	if events == nil {
		events = []*model.Event{}
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) GetByID(c *gin.Context) {
	event, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleError(c, err, "GetByID", msgGetEvent)
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := BindJson(c, &req, msgCreateEvent); err != nil {
		return
	}
	event := &model.Event{
		Name:        req.Name,
		Genre:       req.Genre,
		Image:       req.Image,
		Description: req.Description,
		WebsiteURL:  req.WebsiteURL,
	}
	created, err := h.service.Create(c.Request.Context(), event)
	if err != nil {
		h.handleError(c, err, "Create", msgCreateEvent)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Update 部分合併；body 為 {} 時回傳目前資料
func (h *EventHandler) Update(c *gin.Context) {
	var params model.UpdateEventParams
	if err := BindJson(c, &params, msgUpdateEvent); err != nil {
		return
	}
	updated, err := h.service.Update(c.Request.Context(), c.Param("id"), params)
	if err != nil {
		h.handleError(c, err, "Update", msgUpdateEvent)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *EventHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleError(c, err, "Delete", msgDeleteEvent)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgEventDeleted})
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation, message string) {
	log := logger.WithComponent("handler").With(
		zap.String("operation", operation),
		zap.String("event_id", c.Param("id")),
		zap.Error(err),
	)
	switch {
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"message": msgEventMissing})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, errorBody(message, err))
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, errorBody(message, err))
	}
}
