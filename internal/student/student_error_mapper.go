package student

import (
	"errors"
	"strings"

	studenterrors "go-attendance/internal/student/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return studenterrors.ErrStudentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return studenterrors.ErrRollAlreadyExists.WithCause(err)
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_students_roll") {
		return studenterrors.ErrRollAlreadyExists.WithCause(err)
	}

	return err
}
