package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/aggregate"
	"github.com/castlewood/finsight/internal/budget"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/model"
	"github.com/castlewood/finsight/internal/sheets"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export reports to external destinations",
	}

	gs := &cobra.Command{
		Use:   "sheets",
		Short: "Export the budget report to Google Sheets",
		Long: `Write the derived budget, goal timelines, and, when a month is given,
budget performance to a Google Sheets spreadsheet. Authentication uses
either a service account key file or an OAuth2 refresh token from the
sheets section of the config file.`,
		RunE: runExportSheets,
	}
	gs.Flags().Float64("salary", 0, "monthly salary (default: stored profile)")
	gs.Flags().String("month", "", "also export performance for this month (YYYY-MM)")

	cmd.AddCommand(gs)
	return cmd
}

func runExportSheets(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	salaryFlag, _ := cmd.Flags().GetFloat64("salary")
	monthFlag, _ := cmd.Flags().GetString("month")

	sheetsConfig, err := sheets.LoadConfig()
	if err != nil {
		return err
	}

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

	var performance *model.PerformanceReport
	if monthFlag != "" {
		window, windowErr := parseMonthWindow(monthFlag)
		if windowErr != nil {
			return windowErr
		}
		performance = budget.Track(built, history, window)
	}

	writer, err := sheets.NewWriter(ctx, sheetsConfig, slog.Default())
	if err != nil {
		return fmt.Errorf("failed to create sheets writer: %w", err)
	}

	exportCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if err := writer.Write(exportCtx, built, performance); err != nil {
		return fmt.Errorf("failed to export to sheets: %w", err)
	}

	fmt.Println("Budget report exported to Google Sheets")
	return nil
}

func parseMonthWindow(month string) (aggregate.Window, error) {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return aggregate.Window{}, fmt.Errorf("invalid month %q, expected YYYY-MM", month)
	}
	return aggregate.MonthWindow(t.Year(), t.Month()), nil
}
