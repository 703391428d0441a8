package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	autherrors "go-attendance/internal/auth/errors"
	"go-attendance/internal/auth/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

type Config struct {
	JWTSecret       string
	TeacherSecretID string
	TokenTTL        time.Duration
	BcryptCost      int
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AuthResponse, error)
	Login(ctx context.Context, name, password string) (AuthResponse, error)
	GetMe(ctx context.Context, teacherID string) (TeacherResponse, error)
}

type service struct {
	repo   Repository
	cfg    Config
	logger *zap.Logger
}

func NewService(repo Repository, cfg Config, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = 24 * time.Hour
	}
	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = bcrypt.DefaultCost
	}
	return &service{repo: repo, cfg: cfg, logger: l}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (AuthResponse, error) {
	if s.cfg.TeacherSecretID == "" ||
		subtle.ConstantTimeCompare([]byte(req.SecretID), []byte(s.cfg.TeacherSecretID)) != 1 {
		s.logger.Warn("signup rejected: bad teacher secret id", zap.String("name", req.Name))
		return AuthResponse{}, autherrors.ErrInvalidSecretID
	}

	name := strings.TrimSpace(req.Name)
	existing, err := s.repo.GetByName(ctx, name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("signup lookup failed", zap.Error(err))
		return AuthResponse{}, err
	}
	if existing != nil {
		return AuthResponse{}, autherrors.ErrTeacherExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cfg.BcryptCost)
	if err != nil {
		return AuthResponse{}, err
	}

	teacher := &Teacher{
		ID:       uuid.New(),
		Name:     name,
		Password: string(hashed),
		Role:     RoleTeacher,
	}
	if err := s.repo.Create(ctx, teacher); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return AuthResponse{}, autherrors.ErrTeacherExists.WithCause(err)
		}
		s.logger.Error("signup persist failed", zap.Error(err))
		return AuthResponse{}, err
	}

	s.logger.Info("teacher signed up", zap.String("teacher_id", teacher.ID.String()))
	return s.authResponse(teacher)
}

func (s *service) Login(ctx context.Context, name, password string) (AuthResponse, error) {
	teacher, err := s.repo.GetByName(ctx, strings.TrimSpace(name))
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login lookup failed", zap.Error(err))
		}
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teacher.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	return s.authResponse(teacher)
}

func (s *service) GetMe(ctx context.Context, teacherID string) (TeacherResponse, error) {
	id, err := uuid.Parse(teacherID)
	if err != nil {
		return TeacherResponse{}, autherrors.ErrInvalidTeacherID
	}

	teacher, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeacherResponse{}, autherrors.ErrTeacherNotFound
		}
		return TeacherResponse{}, err
	}

	return mapToTeacherResponse(teacher), nil
}

func (s *service) authResponse(teacher *Teacher) (AuthResponse, error) {
	raw, err := token.Issue(s.cfg.JWTSecret, teacher.ID.String(), teacher.Role, s.cfg.TokenTTL)
	if err != nil {
		s.logger.Error("issue token failed", zap.Error(err))
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed.WithCause(err)
	}
	return AuthResponse{
		Teacher: mapToTeacherResponse(teacher),
		Token:   raw,
	}, nil
}

func mapToTeacherResponse(t *Teacher) TeacherResponse {
	role := strings.ToUpper(strings.TrimSpace(t.Role))
	if role == "" {
		role = RoleTeacher
	}
	return TeacherResponse{
		ID:   t.ID.String(),
		Name: t.Name,
		Role: role,
	}
}
