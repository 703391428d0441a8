package autherrors

import (
	"net/http"

	"go-attendance/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials",
		http.StatusUnauthorized,
	)
	ErrInvalidSecretID = apperror.New(
		apperror.CodeForbidden,
		"Invalid Teacher Secret ID",
		http.StatusForbidden,
	)
	ErrTeacherExists = apperror.New(
		apperror.CodeConflict,
		"Teacher already exists",
		http.StatusConflict,
	)
	ErrTeacherNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"Not authorized, user not found",
		http.StatusUnauthorized,
	)
	ErrInvalidTeacherID = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid teacher id",
		http.StatusUnauthorized,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Not authorized",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		apperror.CodeUnauthorized,
		"Token expired",
		http.StatusUnauthorized,
	)
	ErrTokenNotFound = apperror.New(
		apperror.CodeUnauthorized,
		"No token provided",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
)
