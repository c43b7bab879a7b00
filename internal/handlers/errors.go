package handlers

import (
	"MoviesUsersAPI/internal/middleware"
	"MoviesUsersAPI/internal/services"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

var errMissingPayload = errors.New("validated payload missing from context")

// respondError is the only place that turns service errors into HTTP statuses.
func respondError(ctx *gin.Context, logger *slog.Logger, resource string, err error) {
	if errors.Is(err, services.ErrNotFound) {
		notFound(ctx, resource)
		return
	}

	logger.Error("Unhandled error", "resource", resource, "path", ctx.Request.URL.Path,
		"request_id", ctx.GetString(middleware.RequestIDKey), "error", err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

func notFound(ctx *gin.Context, resource string) {
	ctx.JSON(http.StatusNotFound, gin.H{"error": resource + " not found"})
}
