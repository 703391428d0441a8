package report

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-attendance/internal/attendance"
	"go-attendance/internal/classroom"
	reporterrors "go-attendance/internal/report/errors"
	"go-attendance/internal/shared/contextutil"
	"go-attendance/internal/student"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const defaultCacheTTL = 5 * time.Minute

//go:generate mockgen -source=report_service.go -destination=mock/report_service_mock.go -package=mock
type Service interface {
	StudentSummary(ctx context.Context, studentID string) (Summary, error)
	OverallSummary(ctx context.Context, filter classroom.Filter) (Summary, error)
	InvalidateStudents(ctx context.Context, studentIDs []string) error
}

type service struct {
	attendance attendance.Repository
	students   student.Repository
	rdb        *redis.Client
	ttl        time.Duration
	sf         *singleflight.Group
	logger     *zap.Logger
}

func NewService(
	attendanceRepo attendance.Repository,
	studentRepo student.Repository,
	rdb *redis.Client,
	ttl time.Duration,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("report.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.service")
	}
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &service{
		attendance: attendanceRepo,
		students:   studentRepo,
		rdb:        rdb,
		ttl:        ttl,
		sf:         &singleflight.Group{},
		logger:     l,
	}
}

func (s *service) StudentSummary(ctx context.Context, studentID string) (Summary, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(studentID); err != nil {
		return Summary{}, reporterrors.ErrInvalidStudentID
	}

	gen, cacheable := s.generation(ctx, StudentGenerationKey(studentID))
	key := StudentCacheKey(gen, studentID)
	if cacheable {
		if cached, ok := s.readCache(ctx, key); ok {
			return cached, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		// the result is shared with every waiter on key
		ctx := context.WithoutCancel(ctx)

		if _, err := s.students.FindByID(ctx, studentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Summary{}, reporterrors.ErrStudentNotFound
			}
			return Summary{}, err
		}

		records, err := s.attendance.FindByStudent(ctx, studentID)
		if err != nil {
			return Summary{}, err
		}

		summary := Summarize(records)
		if cacheable {
			s.writeCache(ctx, key, summary)
		}
		return summary, nil
	})
	if err != nil {
		log.Error("student summary failed", zap.String("student_id", studentID), zap.Error(err))
		return Summary{}, err
	}

	return v.(Summary), nil
}

func (s *service) OverallSummary(ctx context.Context, filter classroom.Filter) (Summary, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	filter = filter.Normalize()

	gen, cacheable := s.generation(ctx, OverallGenerationKey)
	key := OverallCacheKey(gen, filter)
	if cacheable {
		if cached, ok := s.readCache(ctx, key); ok {
			return cached, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (any, error) {
		ctx := context.WithoutCancel(ctx)

		ids, err := s.students.FindIDs(ctx, filter)
		if err != nil {
			return Summary{}, err
		}

		records, err := s.attendance.FindByStudentIDs(ctx, ids)
		if err != nil {
			return Summary{}, err
		}

		summary := Summarize(records)
		if cacheable {
			s.writeCache(ctx, key, summary)
		}
		return summary, nil
	})
	if err != nil {
		log.Error("overall summary failed",
			zap.String("class_name", filter.ClassName),
			zap.String("section", filter.Section),
			zap.Error(err),
		)
		return Summary{}, err
	}

	return v.(Summary), nil
}

// InvalidateStudents moves each student's entry and every overall entry to a
// new generation. Entries under older generations expire with their TTL.
func (s *service) InvalidateStudents(ctx context.Context, studentIDs []string) error {
	if s.rdb == nil {
		return nil
	}

	_, err := s.rdb.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range studentIDs {
			pipe.Incr(ctx, StudentGenerationKey(id))
		}
		pipe.Incr(ctx, OverallGenerationKey)
		return nil
	})
	return err
}

// generation reads a counter key; a missing key reads as "0". When the
// counter cannot be read the cache is bypassed.
func (s *service) generation(ctx context.Context, key string) (string, bool) {
	if s.rdb == nil {
		return "0", false
	}
	gen, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "0", true
		}
		s.logger.Warn("read report generation failed", zap.String("key", key), zap.Error(err))
		return "0", false
	}
	return gen, true
}

func (s *service) readCache(ctx context.Context, key string) (Summary, bool) {
	if s.rdb == nil {
		return Summary{}, false
	}

	raw, err := s.rdb.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("read report cache failed", zap.String("key", key), zap.Error(err))
		}
		return Summary{}, false
	}

	var summary Summary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return Summary{}, false
	}
	return summary, true
}

func (s *service) writeCache(ctx context.Context, key string, summary Summary) {
	if s.rdb == nil {
		return
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, key, string(raw), s.ttl).Err(); err != nil {
		s.logger.Warn("write report cache failed", zap.String("key", key), zap.Error(err))
	}
}
