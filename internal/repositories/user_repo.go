package repositories

import (
	"MoviesUsersAPI/internal/database"
	"MoviesUsersAPI/internal/models"
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

type UserRepository struct {
	DB database.DBTX
}

func NewUserRepository(db database.DBTX) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.Query(ctx, "SELECT id, firstname, lastname, email, city, language FROM users ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.City, &user.Language); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id int) (models.User, error) {
	var user models.User
	err := r.DB.QueryRow(ctx, "SELECT id, firstname, lastname, email, city, language FROM users WHERE id=$1", id).
		Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.City, &user.Language)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user, ErrRecordNotFound
		}
		return user, fmt.Errorf("failed to get user %d: %w", id, err)
	}
	return user, nil
}

func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (int, error) {
	var id int
	err := r.DB.QueryRow(ctx, "INSERT INTO users (firstname, lastname, email, city, language) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		user.Firstname, user.Lastname, user.Email, user.City, user.Language).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to create user: %w", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user models.User) error {
	tag, err := r.DB.Exec(ctx, "UPDATE users SET firstname=$1, lastname=$2, email=$3, city=$4, language=$5 WHERE id=$6",
		user.Firstname, user.Lastname, user.Email, user.City, user.Language, user.ID)
	if err != nil {
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (r *UserRepository) DeleteUser(ctx context.Context, id int) error {
	tag, err := r.DB.Exec(ctx, "DELETE FROM users WHERE id=$1", id)
	if err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrRecordNotFound
	}
	return nil
}
