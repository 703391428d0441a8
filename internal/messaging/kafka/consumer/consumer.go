package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"go-attendance/internal/bootstrap"
	"go-attendance/internal/events"
	"go-attendance/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is the part of *kafkago.Reader the consumers need.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeAuditTrail turns attendance and certificate events into audit
// entries. Messages that cannot be decoded are committed and skipped.
func ConsumeAuditTrail(
	ctx context.Context,
	reader MessageReader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.audit_trail")
	log.Info("audit trail consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("audit trail consumer stopped")
				return
			}
			log.Error("fetch audit message failed", zap.Error(err))
			continue
		}

		if err := handleMessage(ctx, msg, auditLogger); err != nil {
			log.Error("decode audit message failed",
				zap.String("topic", msg.Topic),
				zap.Int64("offset", msg.Offset),
				zap.Error(err),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit audit message failed", zap.Error(err))
			continue
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, auditLogger bootstrap.AuditLogger) error {
	switch msg.Topic {
	case events.AttendanceMarkedTopic:
		var event events.AttendanceMarkedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return err
		}
		ctx = contextutil.WithTeacherID(contextutil.WithRequestID(ctx, event.RequestID), event.TeacherID)
		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "ATTENDANCE_MARKED",
			Message: fmt.Sprintf("%d attendance records saved for %s", event.Written, event.Date),
			Meta: map[string]any{
				"date":        event.Date,
				"written":     event.Written,
				"student_ids": event.StudentIDs,
			},
		})
	case events.CertificateIssuedTopic:
		var event events.CertificateIssuedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return err
		}
		ctx = contextutil.WithTeacherID(contextutil.WithRequestID(ctx, event.RequestID), event.IssuedBy)
		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "CERTIFICATE_ISSUED",
			Message: "certificate " + event.CertificateNumber + " issued",
			Meta: map[string]any{
				"certificate_id": event.CertificateID,
				"student_id":     event.StudentID,
			},
		})
	default:
		return fmt.Errorf("unexpected topic %q", msg.Topic)
	}

	return nil
}
