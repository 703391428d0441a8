package certificateerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrCertificateNotFound = apperror.New(
		apperror.CodeNotFound,
		"Certificate not found",
		http.StatusNotFound,
	)
	ErrInvalidCertificateID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid certificate ID",
		http.StatusBadRequest,
	)
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
	ErrCourseNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Course name is required",
		http.StatusBadRequest,
	)
)
