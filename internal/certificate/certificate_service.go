package certificate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	certificateerrors "go-attendance/internal/certificate/errors"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/report"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/shared/counter"
	"go-attendance/internal/student"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const numberFormat = "CERT-%06d"

//go:generate mockgen -source=certificate_service.go -destination=mock/certificate_service_mock.go -package=mock
type Service interface {
	Issue(ctx context.Context, teacherID string, req IssueCertificateRequest) (CertificateResponse, error)
	GetByID(ctx context.Context, id string) (CertificateResponse, error)
	ListByStudent(ctx context.Context, studentID string) ([]CertificateResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	students student.Repository
	reports  report.Service
	counter  counter.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	students student.Repository,
	reports report.Service,
	counterRepo counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("certificate.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("certificate.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		students: students,
		reports:  reports,
		counter:  counterRepo,
		outbox:   outboxRepo,
		logger:   l,
	}
}

func (s *service) Issue(ctx context.Context, teacherID string, req IssueCertificateRequest) (CertificateResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return CertificateResponse{}, certificateerrors.ErrInvalidStudentID
	}
	courseName := strings.TrimSpace(req.CourseName)
	if courseName == "" {
		return CertificateResponse{}, certificateerrors.ErrCourseNameRequired
	}

	st, err := s.students.FindByID(ctx, studentID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CertificateResponse{}, certificateerrors.ErrStudentNotFound
		}
		log.Error("issue certificate load student failed", zap.String("student_id", studentID.String()), zap.Error(err))
		return CertificateResponse{}, err
	}

	summary, err := s.reports.StudentSummary(ctx, studentID.String())
	if err != nil {
		log.Error("issue certificate summary failed", zap.String("student_id", studentID.String()), zap.Error(err))
		return CertificateResponse{}, err
	}

	nextVal, err := s.counter.GetNextValue(ctx, counter.TypeCertificateNumber)
	if err != nil {
		log.Error("issue certificate generate number failed", zap.Error(err))
		return CertificateResponse{}, err
	}

	includeSeal := true
	if req.IncludeSeal != nil {
		includeSeal = *req.IncludeSeal
	}

	now := time.Now().UTC()
	cert := &Certificate{
		ID:                uuid.New(),
		CertificateNumber: fmt.Sprintf(numberFormat, nextVal),
		StudentID:         studentID,
		RecipientName:     st.Name,
		Roll:              st.Roll,
		CourseName:        courseName,
		IncludeSeal:       includeSeal,
		TotalDays:         summary.TotalDays,
		PresentPercentage: summary.PresentPercentage,
		AbsentPercentage:  report.Percentage(summary.Absent, summary.TotalMarked),
		LateCount:         summary.Late,
		IssuedBy:          uuidPtr(teacherID),
		IssuedAt:          now,
		CreatedAt:         now,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("issue certificate begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, cert); err != nil {
		log.Error("issue certificate persist failed", zap.String("number", cert.CertificateNumber), zap.Error(err))
		return CertificateResponse{}, err
	}

	if s.outbox != nil {
		event := events.CertificateIssuedEvent{
			EventType:         "certificate_issued",
			RequestID:         rid,
			CertificateID:     cert.ID.String(),
			CertificateNumber: cert.CertificateNumber,
			StudentID:         studentID.String(),
			IssuedBy:          teacherID,
			OccurredAt:        now,
		}
		outboxEvent, err := kafka.NewOutboxEvent(rid, "certificate", cert.ID.String(), event.EventType, events.CertificateIssuedTopic, event)
		if err != nil {
			return CertificateResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			log.Error("issue certificate outbox persist failed", zap.String("certificate_id", cert.ID.String()), zap.Error(err))
			return CertificateResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("issue certificate commit failed", zap.String("request_id", rid), zap.Error(err))
		return CertificateResponse{}, err
	}

	log.Info("issue certificate success",
		zap.String("certificate_id", cert.ID.String()),
		zap.String("number", cert.CertificateNumber),
	)
	return mapToResponse(cert), nil
}

func (s *service) GetByID(ctx context.Context, id string) (CertificateResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return CertificateResponse{}, certificateerrors.ErrInvalidCertificateID
	}

	cert, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CertificateResponse{}, certificateerrors.ErrCertificateNotFound
		}
		return CertificateResponse{}, err
	}
	return mapToResponse(cert), nil
}

func (s *service) ListByStudent(ctx context.Context, studentID string) ([]CertificateResponse, error) {
	if _, err := uuid.Parse(studentID); err != nil {
		return nil, certificateerrors.ErrInvalidStudentID
	}

	rows, err := s.repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	resp := make([]CertificateResponse, 0, len(rows))
	for i := range rows {
		resp = append(resp, mapToResponse(&rows[i]))
	}
	return resp, nil
}

func mapToResponse(c *Certificate) CertificateResponse {
	resp := CertificateResponse{
		ID:                c.ID.String(),
		CertificateNumber: c.CertificateNumber,
		StudentID:         c.StudentID.String(),
		RecipientName:     c.RecipientName,
		Roll:              c.Roll,
		CourseName:        c.CourseName,
		IncludeSeal:       c.IncludeSeal,
		TotalDays:         c.TotalDays,
		PresentPercentage: c.PresentPercentage,
		AbsentPercentage:  c.AbsentPercentage,
		LateCount:         c.LateCount,
		IssuedAt:          c.IssuedAt.UTC().Format(time.RFC3339),
	}
	if c.IssuedBy != nil {
		resp.IssuedBy = c.IssuedBy.String()
	}
	return resp
}

func uuidPtr(v string) *uuid.UUID {
	id, err := uuid.Parse(v)
	if err != nil {
		return nil
	}
	return &id
}
