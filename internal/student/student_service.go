package student

import (
	"context"
	"database/sql"
	"slices"
	"strings"

	"go-attendance/internal/classroom"
	studenterrors "go-attendance/internal/student/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CacheInvalidator drops cached reports that include the given students.
type CacheInvalidator interface {
	InvalidateStudents(ctx context.Context, studentIDs []string) error
}

//go:generate mockgen -source=student_service.go -destination=mock/student_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateStudentRequest) (StudentResponse, error)
	GetAll(ctx context.Context, filter classroom.Filter) ([]StudentResponse, error)
	GetByID(ctx context.Context, id string) (StudentResponse, error)
	Update(ctx context.Context, id string, req UpdateStudentRequest) (StudentResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	cache  CacheInvalidator
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, cache CacheInvalidator, logger ...*zap.Logger) Service {
	l := zap.L().Named("student.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("student.service")
	}
	return &service{db: db, repo: repo, cache: cache, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateStudentRequest) (StudentResponse, error) {
	st := &Student{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(req.Name),
		Roll:      strings.TrimSpace(req.Roll),
		ClassName: strings.TrimSpace(req.ClassName),
		Section:   strings.TrimSpace(req.Section),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
	}

	if err := s.repo.Create(ctx, st); err != nil {
		s.logger.Error("create student persist failed", zap.String("roll", st.Roll), zap.Error(err))
		return StudentResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("create student success", zap.String("student_id", st.ID.String()))
	return mapToResponse(*st), nil
}

func (s *service) GetAll(ctx context.Context, filter classroom.Filter) ([]StudentResponse, error) {
	students, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("get all students failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	slices.SortStableFunc(students, func(a, b Student) int {
		return CompareRolls(a.Roll, b.Roll)
	})

	resp := make([]StudentResponse, 0, len(students))
	for _, st := range students {
		resp = append(resp, mapToResponse(st))
	}
	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (StudentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StudentResponse{}, studenterrors.ErrInvalidStudentID
	}

	st, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*st), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateStudentRequest) (StudentResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return StudentResponse{}, studenterrors.ErrInvalidStudentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update student begin tx failed", zap.Error(err))
		return StudentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	st, err := qtx.FindByID(ctx, id)
	if err != nil {
		return StudentResponse{}, mapRepositoryError(err)
	}

	applyUpdate(st, req)

	if err := qtx.Update(ctx, st); err != nil {
		s.logger.Error("update student persist failed", zap.String("student_id", id), zap.Error(err))
		return StudentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update student commit failed", zap.Error(err))
		return StudentResponse{}, err
	}

	s.invalidate(ctx, []string{id})
	s.logger.Info("update student success", zap.String("student_id", id))
	return mapToResponse(*st), nil
}

// Delete removes the student; their attendance goes with them through the
// foreign key cascade.
func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return studenterrors.ErrInvalidStudentID
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Error("delete student failed", zap.String("student_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.invalidate(ctx, []string{id})
	s.logger.Info("delete student success", zap.String("student_id", id))
	return nil
}

func (s *service) invalidate(ctx context.Context, ids []string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateStudents(ctx, ids); err != nil {
		s.logger.Error("invalidate report cache failed", zap.Error(err))
	}
}

func applyUpdate(st *Student, req UpdateStudentRequest) {
	if req.Name != nil {
		st.Name = strings.TrimSpace(*req.Name)
	}
	if req.Roll != nil {
		st.Roll = strings.TrimSpace(*req.Roll)
	}
	if req.ClassName != nil {
		st.ClassName = strings.TrimSpace(*req.ClassName)
	}
	if req.Section != nil {
		st.Section = strings.TrimSpace(*req.Section)
	}
	if req.Email != nil {
		st.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		st.Phone = strings.TrimSpace(*req.Phone)
	}
}

func mapToResponse(st Student) StudentResponse {
	return StudentResponse{
		ID:        st.ID.String(),
		Name:      st.Name,
		Roll:      st.Roll,
		ClassName: st.ClassName,
		Section:   st.Section,
		Email:     st.Email,
		Phone:     st.Phone,
		CreatedAt: st.CreatedAt,
		UpdatedAt: st.UpdatedAt,
	}
}
