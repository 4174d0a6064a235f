package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rhplus/internal/bootstrap"
	"rhplus/internal/config"
	"rhplus/internal/messaging/kafka"
	"rhplus/internal/messaging/kafka/producer"
	"rhplus/internal/shared/connection"

	"go.uber.org/zap"
)

// RunWorker relays the transactional outbox to Kafka until SIGINT/SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	_, sqlDB, err := connectDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka.Broker, cfg.Database.MaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(
		ctx,
		outboxRepo,
		kafkaWriter,
		logger,
		cfg.Kafka.OutboxPollInterval,
		cfg.Kafka.OutboxBatchSize,
	)

	bootstrap.NewStdoutAuditLogger("worker", logger).Log(context.Background(), bootstrap.AuditLog{
		Action:  "WORKER_SHUTDOWN",
		Message: "worker is shutting down",
	})
	log.Info("worker shut down")
	return nil
}
