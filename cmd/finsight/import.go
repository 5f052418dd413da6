package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/ingest"
	"github.com/castlewood/finsight/internal/model"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a CSV or OFX file",
		Long: `Import transaction history into the local database.

CSV files use columns: date,amount,category,description (header optional).
OFX/QFX bank exports are parsed with credits recorded as income.

Duplicate transactions are detected by content hash and skipped, so
re-importing the same file is safe.

Examples:
  finsight import transactions.csv
  finsight import statement.ofx`,
		Args: cobra.ExactArgs(1),
		RunE: runImport,
	}
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	path := args[0]

	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	var transactions []model.Transaction
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ofx", ".qfx":
		transactions, err = ingest.ParseOFX(f)
	default:
		transactions, err = ingest.ParseCSV(f)
	}
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(transactions) == 0 {
		return fmt.Errorf("no transactions found in %s", path)
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	bar := progressbar.Default(int64(len(transactions)), "importing")

	inserted := 0
	// Save in small batches so the progress bar tracks real work
	const batchSize = 100
	for i := 0; i < len(transactions); i += batchSize {
		end := i + batchSize
		if end > len(transactions) {
			end = len(transactions)
		}
		n, err := store.SaveTransactions(ctx, transactions[i:end])
		if err != nil {
			return fmt.Errorf("failed to save transactions: %w", err)
		}
		inserted += n
		_ = bar.Add(end - i)
	}
	_ = bar.Finish()

	fmt.Printf("Imported %d new transactions (%d duplicates skipped)\n",
		inserted, len(transactions)-inserted)
	return nil
}
