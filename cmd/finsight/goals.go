package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/budget"
	"github.com/castlewood/finsight/internal/cli"
	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/goals"
)

func goalsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goals",
		Short: "Manage savings goals and their timelines",
		Long: `Track named savings goals against your realistic monthly savings
capacity. Timelines come from the budget derived from actual spending,
so "6.0 months" means six months at the rate you really save, not the
rate you wish you saved.`,
		RunE: runGoalsList,
	}

	cmd.PersistentFlags().Float64("salary", 0, "monthly salary (default: stored profile)")

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add or update a savings goal",
		Args:  cobra.ExactArgs(1),
		RunE:  runGoalsAdd,
	}
	add.Flags().Float64("target", 0, "target amount to save")
	_ = add.MarkFlagRequired("target")

	cmd.AddCommand(add)
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "Show goal timelines at current savings capacity",
		RunE:  runGoalsList,
	})

	return cmd
}

func runGoalsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	target, _ := cmd.Flags().GetFloat64("target")
	if target <= 0 {
		return common.NewInvalidInputError("target", "must be positive")
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveGoal(ctx, args[0], target); err != nil {
		return err
	}

	fmt.Printf("Saved goal %q with target $%.2f\n", args[0], target)
	return nil
}

func runGoalsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	salaryFlag, _ := cmd.Flags().GetFloat64("salary")

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	stored, err := store.ListGoals(ctx)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		fmt.Println("No goals yet; add one with 'finsight goals add <name> --target <amount>'")
		return nil
	}

	profile, err := loadProfile(ctx, store, salaryFlag, 0)
	if err != nil {
		return err
	}

	history, err := loadHistory(ctx, store)
	if err != nil {
		return err
	}

	built, err := budget.NewBuilder(config.LoadPolicy()).Build(profile.MonthlySalary, history, nil)
	if err != nil {
		return err
	}

	timelines, err := goals.Timelines(stored, built.SavingsTarget, time.Now().UTC())
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderTimelines(timelines))
	return nil
}
