package repositories

import (
	"MoviesUsersAPI/internal/database"
	"MoviesUsersAPI/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type MovieRepository struct {
	DB database.DBTX
}

func NewMovieRepository(db database.DBTX) *MovieRepository {
	return &MovieRepository{DB: db}
}

func (r *MovieRepository) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	rows, err := r.DB.Query(ctx, "SELECT id, title, director, year, color, duration FROM movies ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	movies := []models.Movie{}
	for rows.Next() {
		var movie models.Movie
		if err := rows.Scan(&movie.ID, &movie.Title, &movie.Director, &movie.Year, &movie.Color, &movie.Duration); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		movies = append(movies, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) GetMovieByID(ctx context.Context, id int) (models.Movie, error) {
	var movie models.Movie
	err := r.DB.QueryRow(ctx, "SELECT id, title, director, year, color, duration FROM movies WHERE id=$1", id).
		Scan(&movie.ID, &movie.Title, &movie.Director, &movie.Year, &movie.Color, &movie.Duration)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return movie, ErrRecordNotFound
		}
		return movie, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return movie, nil
}

func (r *MovieRepository) CreateMovie(ctx context.Context, movie models.Movie) (int, error) {
	var id int
	err := r.DB.QueryRow(ctx, "INSERT INTO movies (title, director, year, color, duration) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		movie.Title, movie.Director, movie.Year, movie.Color, movie.Duration).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create movie: %w", err)
	}
	return id, nil
}

// UpdateMovie replaces every column of the row. The affected row count
// decides whether the id existed, so no separate lookup is needed.
func (r *MovieRepository) UpdateMovie(ctx context.Context, movie models.Movie) error {
	tag, err := r.DB.Exec(ctx, "UPDATE movies SET title=$1, director=$2, year=$3, color=$4, duration=$5 WHERE id=$6",
		movie.Title, movie.Director, movie.Year, movie.Color, movie.Duration, movie.ID)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", movie.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *MovieRepository) DeleteMovie(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM movies WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}
