package services

import (
	"MoviesUsersAPI/internal/repositories"
	"errors"
)

var ErrNotFound = errors.New("resource not found")

// translate maps repository errors onto the error kinds the handlers act on.
func translate(err error) error {
	if errors.Is(err, repositories.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
