package handlers

import (
	"MoviesUsersAPI/internal/database"
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	DB     database.Pinger
	logger *slog.Logger
}

func NewHealthHandler(db database.Pinger, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{DB: db, logger: logger}
}

func (h *HealthHandler) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.DB.Ping(pingCtx); err != nil {
		h.logger.Warn("Database ping failed", "error", err)
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}
