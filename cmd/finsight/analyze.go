package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/analyzer"
	"github.com/castlewood/finsight/internal/cli"
	"github.com/castlewood/finsight/internal/config"
)

func analyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze spending patterns in your transaction history",
		Long: `Analyze imported transactions for per-category monthly averages, trend
directions, irregular expenses and income stability.

Requires at least two distinct months of history; trends cannot be read from
a single month.

Examples:
  # Analyze the whole history
  finsight analyze

  # Only look at the last three months
  finsight analyze --timeframe 3months`,
		RunE: runAnalyze,
	}

	cmd.Flags().String("timeframe", "", "lookback window (e.g. 3months; default: all history)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
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

	fmt.Print(cli.RenderStats(stats))
	return nil
}
