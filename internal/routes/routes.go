package routes

import (
	"MoviesUsersAPI/internal/handlers"
	"MoviesUsersAPI/internal/middleware"
	"MoviesUsersAPI/internal/models"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	movieHandler *handlers.MovieHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
	logger *slog.Logger,
	allowedOrigins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recovery(logger),
		middleware.CORS(allowedOrigins),
	)

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	{
		api.GET("/movies", movieHandler.GetMovies)
		api.GET("/movies/:id", movieHandler.GetMovieByID)
		api.POST("/movies", middleware.Validate[models.MoviePayload](), movieHandler.CreateMovie)
		api.PUT("/movies/:id", middleware.Validate[models.MoviePayload](), movieHandler.UpdateMovie)
		api.DELETE("/movies/:id", movieHandler.DeleteMovie)

		api.GET("/users", userHandler.GetUsers)
		api.GET("/users/:id", userHandler.GetUserByID)
		api.POST("/users", middleware.Validate[models.UserPayload](), userHandler.CreateUser)
		api.PUT("/users/:id", middleware.Validate[models.UserPayload](), userHandler.UpdateUser)
		api.DELETE("/users/:id", userHandler.DeleteUser)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return r
}
