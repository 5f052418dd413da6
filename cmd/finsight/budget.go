package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/castlewood/finsight/internal/budget"
	"github.com/castlewood/finsight/internal/cli"
	"github.com/castlewood/finsight/internal/config"
)

func budgetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Build a realistic monthly budget from your spending history",
		Long: `Derive a monthly budget from actual behavior rather than idealistic
percentages: essential expenses from the recognized essential categories,
a savings target carved out of what remains, and per-category budgets set
to observed monthly averages.

Stored goals get a savings timeline against the derived savings target.

Examples:
  finsight budget
  finsight budget --salary 5200
  finsight budget --savings-rate 0.25`,
		RunE: runBudget,
	}

	cmd.Flags().Float64("salary", 0, "monthly salary (default: stored profile)")
	cmd.Flags().Float64("savings-rate", 0, "savings share of discretionary income")
	_ = viper.BindPFlag("policy.savings_rate", cmd.Flags().Lookup("savings-rate"))

	return cmd
}

func runBudget(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	salaryFlag, _ := cmd.Flags().GetFloat64("salary")

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	profile, err := loadProfile(ctx, store, salaryFlag, 0)
	if err != nil {
		return err
	}

	history, err := loadHistory(ctx, store)
	if err != nil {
		return err
	}

	goals, err := store.ListGoals(ctx)
	if err != nil {
		return err
	}

	built, err := budget.NewBuilder(config.LoadPolicy()).Build(profile.MonthlySalary, history, goals)
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderBudget(built))
	return nil
}
