package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a lookup by id matches no row.
	ErrNotFound = errors.New("record not found")
	// ErrForeignKey is returned when a write references a missing parent row.
	ErrForeignKey = errors.New("foreign key violation")
)

// foreign_key_violation
const pgForeignKeyViolation = "23503"

// translate maps driver and gorm errors onto the repository error set.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.Join(ErrNotFound, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return errors.Join(ErrForeignKey, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return errors.Join(ErrForeignKey, err)
	}
	return err
}
