package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/viper"

	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/decision"
	"github.com/castlewood/finsight/internal/model"
	"github.com/castlewood/finsight/internal/narrative"
	"github.com/castlewood/finsight/internal/storage"
)

// openStore opens the database and brings the schema up to date.
func openStore(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDatabasePath()
	}

	store, err := storage.NewSQLiteStorage(config.ExpandPath(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// loadHistory returns the full stored transaction history ordered by date.
func loadHistory(ctx context.Context, store *storage.SQLiteStorage) ([]model.Transaction, error) {
	txns, err := store.ListTransactions(ctx, time.Time{}, time.Time{})
	if err != nil {
		return nil, err
	}
	if len(txns) == 0 {
		return nil, common.NewInsufficientDataError("history",
			"no transactions imported yet; run 'finsight import' first")
	}
	return txns, nil
}

// loadProfile resolves the user's salary and savings from the store, with
// optional flag overrides taking precedence.
func loadProfile(ctx context.Context, store *storage.SQLiteStorage, salaryOverride, savingsOverride float64) (storage.Profile, error) {
	profile, err := store.GetProfile(ctx)
	if err != nil && !errors.Is(err, common.ErrNotFound) {
		return storage.Profile{}, err
	}

	if salaryOverride > 0 {
		profile.MonthlySalary = salaryOverride
	}
	if savingsOverride > 0 {
		profile.CurrentSavings = savingsOverride
	}

	if profile.MonthlySalary <= 0 {
		return storage.Profile{}, common.NewInvalidInputError("salary",
			"not set; run 'finsight profile set --salary' or pass --salary")
	}

	return profile, nil
}

// newEngine assembles the decision engine with the configured narrator.
// Narrator construction failures degrade to offline reasoning: the engine
// works fully without the enrichment capability.
func newEngine(policy config.Policy) *decision.Engine {
	narrator, err := narrative.NewNarrator(narrative.Config{
		Provider:    viper.GetString("narrative.provider"),
		APIKey:      viper.GetString("narrative.api_key"),
		Model:       viper.GetString("narrative.model"),
		Temperature: viper.GetFloat64("narrative.temperature"),
		MaxTokens:   viper.GetInt("narrative.max_tokens"),
	})
	if err != nil {
		slog.Warn("Narrator unavailable, verdicts will use templated reasoning", "error", err)
		narrator = nil
	}

	return decision.New(policy, narrator)
}
