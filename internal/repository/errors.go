package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateID is returned when an insert collides on a primary key.
// Random ids (event suffixes, short-links) have a non-zero collision
// probability; callers retry with a fresh id.
var ErrDuplicateID = errors.New("duplicate id")

func translateUnique(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicateID
	}
	return err
}
