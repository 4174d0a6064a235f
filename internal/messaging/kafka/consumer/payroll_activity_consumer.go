package consumer

import (
	"context"
	"encoding/json"

	"rhplus/internal/activity"
	"rhplus/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollLifecycle records payroll lifecycle events in the activity
// feed.
func ConsumePayrollLifecycle(
	ctx context.Context,
	reader MessageReader,
	activityService activity.Service,
	logger *zap.Logger,
) error {
	log := logger.Named("kafka.consumer.payroll_activity")

	return consume(ctx, reader, "payroll_activity", func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return skip("decode payroll lifecycle event: %v", err)
		}
		if event.CompanyID == "" {
			return skip("payroll lifecycle event without company")
		}

		return activityService.RecordPayrollEvent(ctx, event)
	}, log)
}
