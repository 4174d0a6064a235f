package cli

import (
	"fmt"

	"rhplus/internal/messaging/kafka"
	"rhplus/internal/payrollperiod"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(closePeriodCmd)
	closePeriodCmd.Flags().StringP("company", "c", "", "Company ID owning the period")
	closePeriodCmd.Flags().StringP("period", "p", "", "Payroll period ID")
	closePeriodCmd.Flags().StringP("actor", "a", "", "Employee ID recorded as the closer")
}

var closePeriodCmd = &cobra.Command{
	Use:   "close-period",
	Short: "Close a payroll period",
	Long: `Close a payroll period once every entry in it is approved. A
payroll_period_closed event is written to the outbox in the same transaction.`,
	Args: cobra.NoArgs,
	RunE: runClosePeriod,
}

func runClosePeriod(cmd *cobra.Command, args []string) error {
	companyID, err := requireFlag(cmd, "company")
	if err != nil {
		return err
	}
	periodID, err := requireFlag(cmd, "period")
	if err != nil {
		return err
	}
	actorID, err := requireFlag(cmd, "actor")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	svc := payrollperiod.NewService(
		e.infra.DB,
		payrollperiod.NewRepository(e.infra.GormDB),
		kafka.NewOutboxRepository(e.infra.DB),
		e.logger,
	)
	period, err := svc.Close(ctx, companyID, actorID, periodID)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "period %s (%s) closed at %s\n", period.Name, period.ID, *period.ClosedAt)
	return nil
}
