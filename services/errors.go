package services

import (
	"errors"
	"fmt"

	"github.com/cosmic-missions/models"
	"github.com/cosmic-missions/repositories"
)

var (
	ErrScientistNotFound = errors.New("scientist not found")
	ErrMissionNotFound   = errors.New("mission not found")
)

// IsValidation reports whether err should be answered as a client-side
// validation failure.
func IsValidation(err error) bool {
	var vErr *models.ValidationError
	return errors.As(err, &vErr) || errors.Is(err, repositories.ErrForeignKey)
}

func notFound(err, sentinel error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return sentinel
	}
	return err
}

func invalid(entity, field, message string) error {
	return &models.ValidationError{Entity: entity, Field: field, Message: message}
}

func wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", op, err)
}
