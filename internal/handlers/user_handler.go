package handlers

import (
	"MoviesUsersAPI/internal/middleware"
	"MoviesUsersAPI/internal/models"
	"MoviesUsersAPI/internal/services"
	"MoviesUsersAPI/pkg/utils"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

const userResource = "User"

type UserHandler struct {
	UserService *services.UserService
	logger      *slog.Logger
}

func NewUserHandler(service *services.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{UserService: service, logger: logger}
}

func (h *UserHandler) GetUsers(ctx *gin.Context) {
	users, err := h.UserService.GetAllUsers(ctx.Request.Context())
	if err != nil {
		respondError(ctx, h.logger, userResource, err)
		return
	}
	ctx.JSON(http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		notFound(ctx, userResource)
		return
	}
	user, err := h.UserService.GetUserByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, h.logger, userResource, err)
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (h *UserHandler) CreateUser(ctx *gin.Context) {
	payload := middleware.Payload[models.UserPayload](ctx)
	if payload == nil {
		respondError(ctx, h.logger, userResource, errMissingPayload)
		return
	}
	user, err := h.UserService.CreateUser(ctx.Request.Context(), *payload)
	if err != nil {
		respondError(ctx, h.logger, userResource, err)
		return
	}
	ctx.JSON(http.StatusCreated, user)
}

func (h *UserHandler) UpdateUser(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		notFound(ctx, userResource)
		return
	}
	payload := middleware.Payload[models.UserPayload](ctx)
	if payload == nil {
		respondError(ctx, h.logger, userResource, errMissingPayload)
		return
	}
	if err := h.UserService.UpdateUser(ctx.Request.Context(), id, *payload); err != nil {
		respondError(ctx, h.logger, userResource, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *UserHandler) DeleteUser(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		notFound(ctx, userResource)
		return
	}
	if err := h.UserService.DeleteUser(ctx.Request.Context(), id); err != nil {
		respondError(ctx, h.logger, userResource, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
