package attendance

import (
	"context"
	"database/sql"
	"strings"
	"time"

	attendanceerrors "go-attendance/internal/attendance/errors"
	"go-attendance/internal/classroom"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka"
	"go-attendance/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const savedMessage = "Attendance saved successfully"

// CacheInvalidator drops derived data that depends on the given students'
// attendance. It runs after commit and its failures are only logged.
type CacheInvalidator interface {
	InvalidateStudents(ctx context.Context, studentIDs []string) error
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	BulkMark(ctx context.Context, teacherID string, req BulkMarkRequest) (BulkMarkResponse, error)
	GetDaily(ctx context.Context, q DailySheetQuery) ([]DailyMarkResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	cache  CacheInvalidator
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	cache CacheInvalidator,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		cache:  cache,
		logger: l,
	}
}

func (s *service) BulkMark(ctx context.Context, teacherID string, req BulkMarkRequest) (BulkMarkResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	if strings.TrimSpace(req.Date) == "" || len(req.Records) == 0 {
		log.Warn("bulk mark rejected: missing date or records",
			zap.String("request_id", rid),
			zap.Int("records", len(req.Records)),
		)
		return BulkMarkResponse{}, attendanceerrors.ErrInvalidAttendanceData
	}

	parsed, ok := ParseDate(req.Date)
	if !ok {
		log.Warn("bulk mark rejected: unparseable date", zap.String("date", req.Date))
		return BulkMarkResponse{}, attendanceerrors.ErrInvalidDate
	}
	day := NormalizeDate(parsed)

	markedBy := uuidPtr(teacherID)
	rows := buildRows(req.Records, day, markedBy)
	if len(rows) == 0 {
		log.Warn("bulk mark rejected: no valid records",
			zap.String("request_id", rid),
			zap.Int("records", len(req.Records)),
		)
		return BulkMarkResponse{}, attendanceerrors.ErrNoValidRecords
	}
	if skipped := len(req.Records) - len(rows); skipped > 0 {
		log.Debug("bulk mark dropped records",
			zap.Int("received", len(req.Records)),
			zap.Int("kept", len(rows)),
		)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("bulk mark begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return BulkMarkResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).BulkUpsert(ctx, rows); err != nil {
		log.Error("bulk mark upsert failed", zap.String("date", DayKey(day)), zap.Error(err))
		return BulkMarkResponse{}, mapRepositoryError(err)
	}

	studentIDs := make([]string, len(rows))
	for i, row := range rows {
		studentIDs[i] = row.StudentID.String()
	}

	if s.outbox != nil {
		event := events.AttendanceMarkedEvent{
			EventType:  "attendance_marked",
			RequestID:  rid,
			TeacherID:  teacherID,
			Date:       DayKey(day),
			StudentIDs: studentIDs,
			Written:    len(rows),
			OccurredAt: time.Now().UTC(),
		}
		outboxEvent, err := kafka.NewOutboxEvent(rid, "attendance", DayKey(day), event.EventType, events.AttendanceMarkedTopic, event)
		if err != nil {
			log.Error("bulk mark build outbox event failed", zap.Error(err))
			return BulkMarkResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			log.Error("bulk mark outbox persist failed", zap.String("request_id", rid), zap.Error(err))
			return BulkMarkResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("bulk mark commit failed", zap.String("request_id", rid), zap.Error(err))
		return BulkMarkResponse{}, err
	}

	if s.cache != nil {
		if err := s.cache.InvalidateStudents(ctx, studentIDs); err != nil {
			log.Error("bulk mark cache invalidation failed", zap.Error(err))
		}
	}

	log.Info("bulk mark success",
		zap.String("request_id", rid),
		zap.String("date", DayKey(day)),
		zap.Int("written", len(rows)),
	)

	return BulkMarkResponse{
		Message: savedMessage,
		Date:    DayKey(day),
		Written: len(rows),
	}, nil
}

func (s *service) GetDaily(ctx context.Context, q DailySheetQuery) ([]DailyMarkResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	parsed, ok := ParseDate(q.Date)
	if !ok {
		return nil, attendanceerrors.ErrInvalidDate
	}
	day := NormalizeDate(parsed)

	rows, err := s.repo.FindByDate(ctx, day, classroom.Filter{ClassName: q.ClassName, Section: q.Section})
	if err != nil {
		log.Error("get daily attendance failed", zap.String("date", DayKey(day)), zap.Error(err))
		return nil, err
	}

	resp := make([]DailyMarkResponse, 0, len(rows))
	for _, row := range rows {
		resp = append(resp, mapToDailyResponse(row))
	}
	return resp, nil
}

// buildRows keeps records with a parseable student id and a known status.
// A student repeated in one batch keeps its first position and its last
// status, the same outcome as upserting the records one by one.
func buildRows(records []BulkRecordRequest, day time.Time, markedBy *uuid.UUID) []Attendance {
	now := time.Now().UTC()
	index := make(map[uuid.UUID]int, len(records))
	rows := make([]Attendance, 0, len(records))

	for _, rec := range records {
		studentID, err := uuid.Parse(strings.TrimSpace(rec.StudentID))
		if err != nil {
			continue
		}
		status, ok := ParseStatus(rec.Status)
		if !ok {
			continue
		}

		if i, seen := index[studentID]; seen {
			rows[i].Status = status
			continue
		}

		index[studentID] = len(rows)
		rows = append(rows, Attendance{
			ID:             uuid.New(),
			StudentID:      studentID,
			AttendanceDate: day,
			Status:         status,
			MarkedBy:       markedBy,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
	}

	return rows
}

func mapToDailyResponse(a Attendance) DailyMarkResponse {
	resp := DailyMarkResponse{
		StudentID: a.StudentID.String(),
		Date:      DayKey(a.AttendanceDate),
		Status:    string(a.Status),
	}
	if a.Student != nil {
		resp.StudentName = a.Student.Name
		resp.Roll = a.Student.Roll
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
