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
	msgRegistered    = "Registration successful!"
	msgDuplicate     = "Email already registered."
	msgRegisterError = "Error registering user"
	msgServerError   = "Server error. Please try again later."
	msgListUsers     = "Error fetching users"
)

type UserHandler struct {
	service service.UserService
}

func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	r.POST("/register", h.Register)
	r.GET("/api/users", h.List)
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := BindJson(c, &req, msgRegisterError); err != nil {
		return
	}
	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		h.handleError(c, err, "Register", msgServerError)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": msgRegistered})
}

func (h *UserHandler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "List", msgListUsers)
		return
	}
	if users == nil {
		users = []*model.User{}
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) handleError(c *gin.Context, err error, operation, message string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrEmailAlreadyRegistered):
		log.Warn("Duplicate registration")
		c.JSON(http.StatusBadRequest, gin.H{"message": msgDuplicate})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, errorBody(msgRegisterError, err))
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, errorBody(message, err))
	}
}
