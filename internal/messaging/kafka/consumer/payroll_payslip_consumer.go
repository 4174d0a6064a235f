package consumer

import (
	"context"
	"encoding/json"
	"errors"

	"rhplus/internal/events"
	"rhplus/internal/payroll"
	payrollerrors "rhplus/internal/payroll/errors"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollPayslipRequested renders payslips for approved entries. It
// returns ErrStalled when a request keeps failing.
func ConsumePayrollPayslipRequested(
	ctx context.Context,
	reader MessageReader,
	payrollService payroll.Service,
	logger *zap.Logger,
) error {
	log := logger.Named("kafka.consumer.payroll_payslip")

	return consume(ctx, reader, "payroll_payslip", func(ctx context.Context, msg kafkago.Message) error {
		var event events.PayrollPayslipRequestedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			return skip("decode payslip request: %v", err)
		}
		if event.EntryID == "" || event.CompanyID == "" {
			return skip("payslip request without entry or company")
		}

		_, err := payrollService.GeneratePayslip(ctx, event.CompanyID, event.EntryID)
		switch {
		case errors.Is(err, payrollerrors.ErrEntryNotFound), errors.Is(err, payrollerrors.ErrEntryNotApproved):
			return skip("entry %s: %v", event.EntryID, err)
		case err != nil:
			return err
		}

		log.Info("payslip generated",
			zap.String("entry_id", event.EntryID),
			zap.String("company_id", event.CompanyID),
		)
		return nil
	}, log)
}
