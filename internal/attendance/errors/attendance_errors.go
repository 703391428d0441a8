package attendanceerrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidAttendanceData = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance data",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance date",
		http.StatusBadRequest,
	)
	ErrNoValidRecords = apperror.New(
		apperror.CodeInvalidInput,
		"No valid attendance records to save",
		http.StatusBadRequest,
	)
	ErrStudentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Student not found",
		http.StatusNotFound,
	)
)
