package studenterrors

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
	ErrRollAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"A student with this roll already exists",
		http.StatusConflict,
	)
	ErrInvalidStudentID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid student ID",
		http.StatusBadRequest,
	)
)
