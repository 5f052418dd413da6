package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/aggregate"
	"github.com/castlewood/finsight/internal/budget"
	"github.com/castlewood/finsight/internal/cli"
	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/storage"
)

func trackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "track",
		Short: "Compare actual spending against the derived budget",
		Long: `Score one month of actual spending against the budget derived from
history. Every budgeted category gets a status, over or under, with the
share of its budget consumed; spending in categories the budget never
covered is listed separately.

The month defaults to the newest month present in the stored history, so
tracking stays meaningful even when imports lag behind the calendar.

Examples:
  finsight track
  finsight track --month 2026-07`,
		RunE: runTrack,
	}

	cmd.Flags().Float64("salary", 0, "monthly salary (default: stored profile)")
	cmd.Flags().String("month", "", "month to score, formatted YYYY-MM (default: newest month in history)")

	return cmd
}

func runTrack(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	salaryFlag, _ := cmd.Flags().GetFloat64("salary")
	monthFlag, _ := cmd.Flags().GetString("month")

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

	window, err := resolveTrackWindow(ctx, store, monthFlag)
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

	report := budget.Track(built, history, window)
	fmt.Print(cli.RenderPerformance(report))
	return nil
}

// resolveTrackWindow anchors the default window at the newest transaction in
// the store rather than the wall clock, so a stale import still scores a
// month that has data in it.
func resolveTrackWindow(ctx context.Context, store *storage.SQLiteStorage, month string) (aggregate.Window, error) {
	if month != "" {
		t, err := time.Parse("2006-01", month)
		if err != nil {
			return aggregate.Window{}, common.NewInvalidInputError("month", "must be formatted YYYY-MM")
		}
		return aggregate.MonthWindow(t.Year(), t.Month()), nil
	}

	newest, err := store.NewestTransactionDate(ctx)
	if err != nil {
		return aggregate.Window{}, fmt.Errorf("resolving newest month: %w", err)
	}
	return aggregate.MonthWindow(newest.Year(), newest.Month()), nil
}
