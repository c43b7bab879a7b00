package repositories

import (
	"MoviesUsersAPI/internal/models"
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userColumns = []string{"id", "firstname", "lastname", "email", "city", "language"}

func newUserRepo(t *testing.T) (*UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return NewUserRepository(mock), mock
}

func TestGetAllUsers(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users ORDER BY id").
		WillReturnRows(pgxmock.NewRows(userColumns).
			AddRow(1, "John", "Doe", "john.doe@example.com", "Paris", "English"))

	users, err := repo.GetAllUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, models.User{ID: 1, Firstname: "John", Lastname: "Doe", Email: "john.doe@example.com", City: "Paris", Language: "English"}, users[0])
}

func TestGetUserByIDNotFound(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM users WHERE id").WithArgs(0).WillReturnError(pgx.ErrNoRows)

	_, err := repo.GetUserByID(context.Background(), 0)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestCreateUser(t *testing.T) {
	repo, mock := newUserRepo(t)

	user := models.User{Firstname: "Rondoudou", Lastname: "Grodoudou", Email: "x@wild.co", City: "New York", Language: "Doudoudoudou"}
	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Rondoudou", "Grodoudou", "x@wild.co", "New York", "Doudoudoudou").
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(12))

	id, err := repo.CreateUser(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, 12, id)
}

func TestUpdateUser(t *testing.T) {
	repo, mock := newUserRepo(t)

	user := models.User{ID: 5, Firstname: "Max", Lastname: "Alan", Email: "esffes@gmail.com", City: "Nantes", Language: "français"}
	mock.ExpectExec("UPDATE users SET").
		WithArgs("Max", "Alan", "esffes@gmail.com", "Nantes", "français", 5).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateUser(context.Background(), user))
}

func TestUpdateUserNotFound(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec("UPDATE users SET").WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.UpdateUser(context.Background(), models.User{ID: 0})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestDeleteUser(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec("DELETE FROM users WHERE id").WithArgs(5).WillReturnResult(pgxmock.NewResult("DELETE", 1))
	assert.NoError(t, repo.DeleteUser(context.Background(), 5))

	mock.ExpectExec("DELETE FROM users WHERE id").WithArgs(5).WillReturnResult(pgxmock.NewResult("DELETE", 0))
	assert.ErrorIs(t, repo.DeleteUser(context.Background(), 5), ErrRecordNotFound)
}
