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

const movieResource = "Movie"

type MovieHandler struct {
	MovieService *services.MovieService
	logger       *slog.Logger
}

func NewMovieHandler(service *services.MovieService, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{MovieService: service, logger: logger}
}

func (h *MovieHandler) GetMovies(ctx *gin.Context) {
	movies, err := h.MovieService.GetAllMovies(ctx.Request.Context())
	if err != nil {
		respondError(ctx, h.logger, movieResource, err)
		return
	}
	ctx.JSON(http.StatusOK, movies)
}

func (h *MovieHandler) GetMovieByID(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		notFound(ctx, movieResource)
		return
	}
	movie, err := h.MovieService.GetMovieByID(ctx.Request.Context(), id)
	if err != nil {
		respondError(ctx, h.logger, movieResource, err)
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

func (h *MovieHandler) CreateMovie(ctx *gin.Context) {
	payload := middleware.Payload[models.MoviePayload](ctx)
	if payload == nil {
		respondError(ctx, h.logger, movieResource, errMissingPayload)
		return
	}
	movie, err := h.MovieService.CreateMovie(ctx.Request.Context(), *payload)
	if err != nil {
		respondError(ctx, h.logger, movieResource, err)
		return
	}
	ctx.JSON(http.StatusCreated, movie)
}

func (h *MovieHandler) UpdateMovie(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		notFound(ctx, movieResource)
		return
	}
	payload := middleware.Payload[models.MoviePayload](ctx)
	if payload == nil {
		respondError(ctx, h.logger, movieResource, errMissingPayload)
		return
	}
	if err := h.MovieService.UpdateMovie(ctx.Request.Context(), id, *payload); err != nil {
		respondError(ctx, h.logger, movieResource, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

func (h *MovieHandler) DeleteMovie(ctx *gin.Context) {
	id, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		notFound(ctx, movieResource)
		return
	}
	if err := h.MovieService.DeleteMovie(ctx.Request.Context(), id); err != nil {
		respondError(ctx, h.logger, movieResource, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}
