package reporterrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
	ErrInvalidStudentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid student ID",
		http.StatusBadRequest,
	)
)
