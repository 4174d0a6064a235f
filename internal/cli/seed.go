package cli

import (
	"fmt"
	"strings"

	"rhplus/internal/payrollitem"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(seedItemsCmd)
	seedItemsCmd.Flags().StringP("company", "c", "", "Company ID to seed")
}

var seedItemsCmd = &cobra.Command{
	Use:   "seed-items",
	Short: "Install the default payroll item catalog",
	Long: `Create the default earning and deduction items (BASIC_SALARY, OVERTIME,
HEALTH, PENSION, ...) for a company. Codes that already exist are skipped, so
the command can be run repeatedly.`,
	Args: cobra.NoArgs,
	RunE: runSeedItems,
}

func runSeedItems(cmd *cobra.Command, args []string) error {
	companyID, err := requireFlag(cmd, "company")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	e, err := setup(ctx)
	if err != nil {
		return err
	}
	defer e.close()

	svc := payrollitem.NewService(e.infra.DB, payrollitem.NewRepository(e.infra.GormDB), e.infra.Redis, e.logger)
	result, err := svc.SeedDefaults(ctx, companyID)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "created: %d %s\n", len(result.Created), strings.Join(result.Created, ", "))
	fmt.Fprintf(out, "skipped: %d %s\n", len(result.Skipped), strings.Join(result.Skipped, ", "))
	return nil
}
