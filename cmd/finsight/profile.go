package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/common"
)

func profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage your financial profile",
		Long: `Store the salary and savings figures every budget and affordability
decision is evaluated against. Both can be overridden per command with
flags; the stored profile is the default.`,
		RunE: runProfileShow,
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Set salary and savings",
		RunE:  runProfileSet,
	}
	set.Flags().Float64("salary", 0, "monthly salary")
	set.Flags().Float64("savings", -1, "current savings")

	cmd.AddCommand(set)
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the stored profile",
		RunE:  runProfileShow,
	})

	return cmd
}

func runProfileSet(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	salary, _ := cmd.Flags().GetFloat64("salary")
	savings, _ := cmd.Flags().GetFloat64("savings")

	if salary <= 0 && savings < 0 {
		return common.NewInvalidInputError("profile", "pass --salary and/or --savings")
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	profile, err := store.GetProfile(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return err
	}

	if salary > 0 {
		profile.MonthlySalary = salary
	}
	if savings >= 0 {
		profile.CurrentSavings = savings
	}
	if profile.MonthlySalary <= 0 {
		return common.NewInvalidInputError("salary", "must be positive")
	}

	if err := store.SaveProfile(ctx, profile); err != nil {
		return err
	}

	fmt.Printf("Profile saved: salary $%.2f/month, savings $%.2f\n",
		profile.MonthlySalary, profile.CurrentSavings)
	return nil
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	profile, err := store.GetProfile(ctx)
	if errors.Is(err, common.ErrNotFound) {
		fmt.Println("No profile yet; set one with 'finsight profile set --salary <amount>'")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Monthly salary:  $%.2f\n", profile.MonthlySalary)
	fmt.Printf("Current savings: $%.2f\n", profile.CurrentSavings)
	return nil
}
