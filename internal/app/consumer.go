package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"rhplus/internal/activity"
	"rhplus/internal/bootstrap"
	"rhplus/internal/config"
	"rhplus/internal/events"
	"rhplus/internal/messaging/kafka"
	"rhplus/internal/messaging/kafka/consumer"
	"rhplus/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func newReader(cfg *config.Config, topic, group string) *kafkago.Reader {
	return kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        []string{cfg.Kafka.Broker},
		Topic:          topic,
		GroupID:        cfg.Kafka.GroupID + "-" + group,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
}

// RunConsumer runs the payslip and activity consumers until SIGINT/SIGTERM
// or until one of them stalls on a message.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := NewInfra(ctx, cfg, logger, false)
	if err != nil {
		return err
	}
	defer deps.Close()

	outboxRepo := kafka.NewOutboxRepository(deps.DB)
	payrollService := payroll.NewService(deps.DB, payroll.NewRepository(deps.GormDB), outboxRepo, deps.Files, logger)
	activityService := activity.NewService(activity.NewRepository(deps.GormDB), logger)

	payslipReader := newReader(cfg, events.PayrollPayslipRequestedTopic, "payslips")
	defer payslipReader.Close()
	lifecycleReader := newReader(cfg, events.PayrollLifecycleTopic, "activity")
	defer lifecycleReader.Close()

	// A stalled consumer cancels the other one and the process exits
	// non-zero; uncommitted messages are redelivered on restart.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return consumer.ConsumePayrollPayslipRequested(gctx, payslipReader, payrollService, logger)
	})
	g.Go(func() error {
		return consumer.ConsumePayrollLifecycle(gctx, lifecycleReader, activityService, logger)
	})
	err = g.Wait()

	bootstrap.NewStdoutAuditLogger("consumer", logger).Log(context.Background(), bootstrap.AuditLog{
		Action:  "CONSUMER_SHUTDOWN",
		Message: "consumer is shutting down",
	})
	log.Info("consumer shut down", zap.Error(err))
	return err
}
