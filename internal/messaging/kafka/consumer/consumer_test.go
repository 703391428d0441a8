package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"go-attendance/internal/bootstrap"
	"go-attendance/internal/events"
	"go-attendance/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingAudit struct {
	entries []bootstrap.AuditLog
	meta    []contextutil.Metadata
}

func (r *recordingAudit) Log(ctx context.Context, entry bootstrap.AuditLog) {
	r.entries = append(r.entries, entry)
	r.meta = append(r.meta, contextutil.ExtractMetadata(ctx))
}

// sliceReader serves queued messages and cancels the consumer once drained.
type sliceReader struct {
	msgs      []kafkago.Message
	committed []kafkago.Message
	cancel    context.CancelFunc
}

func (r *sliceReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	if len(r.msgs) == 0 {
		r.cancel()
		return kafkago.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *sliceReader) CommitMessages(ctx context.Context, msgs ...kafkago.Message) error {
	r.committed = append(r.committed, msgs...)
	return nil
}

func TestConsumeAuditTrail(t *testing.T) {
	marked, err := json.Marshal(events.AttendanceMarkedEvent{
		EventType:  "attendance_marked",
		RequestID:  "REQ-1",
		TeacherID:  "teacher-1",
		Date:       "2024-01-01",
		StudentIDs: []string{"s1", "s2"},
		Written:    2,
	})
	require.NoError(t, err)

	issued, err := json.Marshal(events.CertificateIssuedEvent{
		EventType:         "certificate_issued",
		CertificateID:     "cert-1",
		CertificateNumber: "CERT-000001",
		StudentID:         "s1",
		IssuedBy:          "teacher-1",
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reader := &sliceReader{
		cancel: cancel,
		msgs: []kafkago.Message{
			{Topic: events.AttendanceMarkedTopic, Value: marked},
			{Topic: events.AttendanceMarkedTopic, Value: []byte("not-json")},
			{Topic: events.CertificateIssuedTopic, Value: issued},
		},
	}
	audit := &recordingAudit{}

	ConsumeAuditTrail(ctx, reader, audit, zap.NewNop())

	assert.Len(t, reader.committed, 3)
	require.Len(t, audit.entries, 2)

	assert.Equal(t, "ATTENDANCE_MARKED", audit.entries[0].Action)
	assert.Equal(t, 2, audit.entries[0].Meta["written"])
	assert.Equal(t, "REQ-1", audit.meta[0].RequestID)
	assert.Equal(t, "teacher-1", audit.meta[0].TeacherID)

	assert.Equal(t, "CERTIFICATE_ISSUED", audit.entries[1].Action)
	assert.Equal(t, "certificate CERT-000001 issued", audit.entries[1].Message)
}

func TestHandleMessage_UnknownTopic(t *testing.T) {
	err := handleMessage(context.Background(), kafkago.Message{Topic: "other"}, &recordingAudit{})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, context.Canceled))
}
