package services

import (
	"MoviesUsersAPI/internal/models"
	"context"
	"log/slog"
)

type MovieRepository interface {
	GetAllMovies(ctx context.Context) ([]models.Movie, error)
	GetMovieByID(ctx context.Context, id int) (models.Movie, error)
	CreateMovie(ctx context.Context, movie models.Movie) (int, error)
	UpdateMovie(ctx context.Context, movie models.Movie) error
	DeleteMovie(ctx context.Context, id int) error
}

type MovieService struct {
	MovieRepo MovieRepository
	logger    *slog.Logger
}

func NewMovieService(repo MovieRepository, logger *slog.Logger) *MovieService {
	return &MovieService{MovieRepo: repo, logger: logger}
}

func (s *MovieService) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	movies, err := s.MovieRepo.GetAllMovies(ctx)
	if err != nil {
		s.logger.Error("Failed to list movies", "error", err)
		return nil, err
	}
	return movies, nil
}

func (s *MovieService) GetMovieByID(ctx context.Context, id int) (models.Movie, error) {
	movie, err := s.MovieRepo.GetMovieByID(ctx, id)
	if err != nil {
		return movie, translate(err)
	}
	return movie, nil
}

func (s *MovieService) CreateMovie(ctx context.Context, payload models.MoviePayload) (models.Movie, error) {
	movie := payload.Movie(0)
	id, err := s.MovieRepo.CreateMovie(ctx, movie)
	if err != nil {
		s.logger.Error("Failed to create movie", "title", payload.Title, "error", err)
		return movie, err
	}
	movie.ID = id

	s.logger.Info("Movie created", "movie_id", id)
	return movie, nil
}

func (s *MovieService) UpdateMovie(ctx context.Context, id int, payload models.MoviePayload) error {
	if err := s.MovieRepo.UpdateMovie(ctx, payload.Movie(id)); err != nil {
		return translate(err)
	}

	s.logger.Info("Movie updated", "movie_id", id)
	return nil
}

func (s *MovieService) DeleteMovie(ctx context.Context, id int) error {
	if err := s.MovieRepo.DeleteMovie(ctx, id); err != nil {
		return translate(err)
	}

	s.logger.Info("Movie deleted", "movie_id", id)
	return nil
}
