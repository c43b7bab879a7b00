// Package testutil holds in-memory repositories for handler and service tests.
package testutil

import (
	"MoviesUsersAPI/internal/models"
	"MoviesUsersAPI/internal/repositories"
	"context"
	"io"
	"log/slog"
	"sort"
	"sync"
)

// DiscardLogger returns a logger that drops every record.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MovieStore is a map-backed movie repository. Setting Err makes every call
// fail with it.
type MovieStore struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]models.Movie
	Err    error
}

func NewMovieStore(seed ...models.Movie) *MovieStore {
	s := &MovieStore{rows: map[int]models.Movie{}}
	for _, m := range seed {
		s.nextID++
		m.ID = s.nextID
		s.rows[m.ID] = m
	}
	return s
}

func (s *MovieStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *MovieStore) GetAllMovies(ctx context.Context) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	movies := []models.Movie{}
	for _, m := range s.rows {
		movies = append(movies, m)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

func (s *MovieStore) GetMovieByID(ctx context.Context, id int) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return models.Movie{}, s.Err
	}
	m, ok := s.rows[id]
	if !ok {
		return models.Movie{}, repositories.ErrRecordNotFound
	}
	return m, nil
}

func (s *MovieStore) CreateMovie(ctx context.Context, movie models.Movie) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.nextID++
	movie.ID = s.nextID
	s.rows[movie.ID] = movie
	return movie.ID, nil
}

func (s *MovieStore) UpdateMovie(ctx context.Context, movie models.Movie) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.rows[movie.ID]; !ok {
		return repositories.ErrRecordNotFound
	}
	s.rows[movie.ID] = movie
	return nil
}

func (s *MovieStore) DeleteMovie(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.rows[id]; !ok {
		return repositories.ErrRecordNotFound
	}
	delete(s.rows, id)
	return nil
}

type UserStore struct {
	mu     sync.Mutex
	nextID int
	rows   map[int]models.User
	Err    error
}

func NewUserStore(seed ...models.User) *UserStore {
	s := &UserStore{rows: map[int]models.User{}}
	for _, u := range seed {
		s.nextID++
		u.ID = s.nextID
		s.rows[u.ID] = u
	}
	return s
}

func (s *UserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.rows)
}

func (s *UserStore) GetAllUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	users := []models.User{}
	for _, u := range s.rows {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (s *UserStore) GetUserByID(ctx context.Context, id int) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return models.User{}, s.Err
	}
	u, ok := s.rows[id]
	if !ok {
		return models.User{}, repositories.ErrRecordNotFound
	}
	return u, nil
}

func (s *UserStore) CreateUser(ctx context.Context, user models.User) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.nextID++
	user.ID = s.nextID
	s.rows[user.ID] = user
	return user.ID, nil
}

func (s *UserStore) UpdateUser(ctx context.Context, user models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.rows[user.ID]; !ok {
		return repositories.ErrRecordNotFound
	}
	s.rows[user.ID] = user
	return nil
}

func (s *UserStore) DeleteUser(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.rows[id]; !ok {
		return repositories.ErrRecordNotFound
	}
	delete(s.rows, id)
	return nil
}

// Pinger is a database health probe stub.
type Pinger struct {
	Err error
}

func (p Pinger) Ping(ctx context.Context) error {
	return p.Err
}
