package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go-attendance/internal/bootstrap"
	"go-attendance/internal/config"
	"go-attendance/internal/events"
	"go-attendance/internal/messaging/kafka/consumer"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// RunConsumer writes an audit entry for every attendance and certificate
// event until SIGINT or SIGTERM.
func RunConsumer(cfg *config.Config) error {
	logger := zap.L().Named("app.consumer")

	if cfg.Kafka.Broker == "" {
		return fmt.Errorf("KAFKA_BROKER is required")
	}

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		GroupID:        cfg.Kafka.ConsumerGroup,
		GroupTopics:    []string{events.AttendanceMarkedTopic, events.CertificateIssuedTopic},
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go consumer.ConsumeAuditTrail(ctx, reader, auditLogger, logger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("consumer shutting down")
	cancel()

	return nil
}
