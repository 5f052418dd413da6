package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/analyzer"
	"github.com/castlewood/finsight/internal/cli"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/insights"
)

func insightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "insights",
		Short: "Surface actionable observations from spending history",
		Long: `Scan the analyzed spending history for patterns worth acting on:
dominant categories, elevated discretionary spend, rising trends, and
irregular one-off expenses.`,
		RunE: runInsights,
	}

	cmd.Flags().String("timeframe", "all", "history window to analyze (e.g. 6months, all)")

	return cmd
}

func runInsights(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	timeframe, _ := cmd.Flags().GetString("timeframe")

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	history, err := loadHistory(ctx, store)
	if err != nil {
		return err
	}

	stats, err := analyzer.New(config.LoadPolicy()).Analyze(history, timeframe)
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderInsights(insights.Generate(stats)))
	return nil
}
