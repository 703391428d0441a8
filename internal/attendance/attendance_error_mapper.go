package attendance

import (
	"errors"

	attendanceerrors "go-attendance/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

const pgForeignKeyViolation = "23503"

// mapRepositoryError only translates what the caller can fix. Other storage
// failures pass through and surface as internal errors.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return attendanceerrors.ErrStudentNotFound.WithCause(err)
	}

	return err
}
