package producer

import (
	"context"
	"errors"
	"testing"

	"go-attendance/internal/messaging/kafka"
	kafkaMock "go-attendance/internal/messaging/kafka/mock"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	failTopic string
	written   []kafkago.Message
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if m.Topic == w.failTopic {
			return errors.New("leader not available")
		}
		w.written = append(w.written, m)
	}
	return nil
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes and marks each event", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{}

		pending := []kafka.OutboxEvent{
			{ID: "ev-1", RequestID: "REQ-1", AggregateID: "2024-01-01", EventType: "attendance_marked", Topic: "a", Payload: []byte(`{}`)},
			{ID: "ev-2", AggregateID: "cert-1", EventType: "certificate_issued", Topic: "b", Payload: []byte(`{}`)},
		}
		repo.EXPECT().ListPending(ctx, batchSize).Return(pending, nil)
		repo.EXPECT().MarkSent(ctx, "ev-1").Return(nil)
		repo.EXPECT().MarkSent(ctx, "ev-2").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())
		assert.NoError(t, err)
		assert.Equal(t, 2, sent)
		assert.Len(t, writer.written, 2)
		assert.Equal(t, []byte("2024-01-01"), writer.written[0].Key)
		assert.Len(t, writer.written[0].Headers, 3)
		assert.Len(t, writer.written[1].Headers, 2)
	})

	t.Run("failed publish is marked failed and batch continues", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		writer := &fakeWriter{failTopic: "a"}

		pending := []kafka.OutboxEvent{
			{ID: "ev-1", Topic: "a", Payload: []byte(`{}`)},
			{ID: "ev-2", Topic: "b", Payload: []byte(`{}`)},
		}
		repo.EXPECT().ListPending(ctx, batchSize).Return(pending, nil)
		repo.EXPECT().MarkFailed(ctx, "ev-1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(ctx, "ev-2").Return(nil)

		sent, err := processPendingEvents(ctx, repo, writer, zap.NewNop())
		assert.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := kafkaMock.NewMockOutboxRepository(ctrl)
		repo.EXPECT().ListPending(ctx, batchSize).Return(nil, errors.New("db down"))

		_, err := processPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.Error(t, err)
	})
}
