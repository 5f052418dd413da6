package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/analyzer"
	"github.com/castlewood/finsight/internal/budget"
	"github.com/castlewood/finsight/internal/cli"
	"github.com/castlewood/finsight/internal/config"
	"github.com/castlewood/finsight/internal/decision"
	"github.com/castlewood/finsight/internal/storage"
)

func affordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "afford",
		Short: "Evaluate whether a financial decision is affordable",
		Long: `Evaluate an affordability question against your salary, savings, and
spending history. Each verdict states the decision, the numbers behind
it, and, when the answer is no, a savings plan that would get you there.

Decisions never consider anything you have not supplied: no market data,
no credit products, just your own numbers against fixed rules.`,
	}

	cmd.PersistentFlags().Float64("salary", 0, "monthly salary (default: stored profile)")
	cmd.PersistentFlags().Float64("savings", 0, "current savings (default: stored profile)")

	cmd.AddCommand(affordTripCmd())
	cmd.AddCommand(affordPurchaseCmd())
	cmd.AddCommand(affordSubscriptionCmd())
	cmd.AddCommand(affordHousingCmd())
	cmd.AddCommand(affordCareerCmd())

	return cmd
}

func affordTripCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trip <destination>",
		Short: "Can I afford this trip?",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, _ := cmd.Flags().GetFloat64("cost")
			return withDecisionProfile(cmd, func(ctx context.Context, engine *decision.Engine, profile decision.Profile) error {
				verdict, err := engine.EvaluateTrip(ctx, decision.TripRequest{
					Destination: args[0],
					Cost:        cost,
					Profile:     profile,
				})
				if err != nil {
					return err
				}
				fmt.Print(cli.RenderVerdict(verdict))
				return nil
			})
		},
	}
	cmd.Flags().Float64("cost", 0, "total trip cost")
	_ = cmd.MarkFlagRequired("cost")
	return cmd
}

func affordPurchaseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "purchase <item>",
		Short: "Can I afford this purchase?",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, _ := cmd.Flags().GetFloat64("cost")
			category, _ := cmd.Flags().GetString("category")
			return withDecisionProfile(cmd, func(ctx context.Context, engine *decision.Engine, profile decision.Profile) error {
				verdict, err := engine.EvaluatePurchase(ctx, decision.PurchaseRequest{
					Item:     args[0],
					Category: category,
					Cost:     cost,
					Profile:  profile,
				})
				if err != nil {
					return err
				}
				fmt.Print(cli.RenderVerdict(verdict))
				return nil
			})
		},
	}
	cmd.Flags().Float64("cost", 0, "purchase cost")
	cmd.Flags().String("category", "", "spending category, for budget context")
	_ = cmd.MarkFlagRequired("cost")
	return cmd
}

func affordSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subscription <name>",
		Short: "Is this recurring subscription advisable?",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cost, _ := cmd.Flags().GetFloat64("cost")
			return withDecisionStore(cmd, func(ctx context.Context, store *storage.SQLiteStorage, engine *decision.Engine, profile decision.Profile) error {
				existing, err := store.ListSubscriptions(ctx)
				if err != nil {
					return err
				}
				verdict, err := engine.EvaluateSubscription(ctx, decision.SubscriptionRequest{
					Name:        args[0],
					MonthlyCost: cost,
					Existing:    existing,
					Profile:     profile,
				})
				if err != nil {
					return err
				}
				fmt.Print(cli.RenderVerdict(verdict))
				return nil
			})
		},
	}
	cmd.Flags().Float64("cost", 0, "monthly subscription cost")
	_ = cmd.MarkFlagRequired("cost")
	return cmd
}

func affordHousingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "housing",
		Short: "Should I rent or buy?",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rent, _ := cmd.Flags().GetFloat64("rent")
			price, _ := cmd.Flags().GetFloat64("price")
			down, _ := cmd.Flags().GetFloat64("down")
			return withDecisionProfile(cmd, func(ctx context.Context, engine *decision.Engine, profile decision.Profile) error {
				verdict, err := engine.EvaluateHousing(ctx, decision.HousingRequest{
					MonthlyRent:   rent,
					PurchasePrice: price,
					DownPayment:   down,
					Profile:       profile,
				})
				if err != nil {
					return err
				}
				fmt.Print(cli.RenderVerdict(verdict))
				return nil
			})
		},
	}
	cmd.Flags().Float64("rent", 0, "monthly rent of the comparable home")
	cmd.Flags().Float64("price", 0, "purchase price")
	cmd.Flags().Float64("down", 0, "available down payment")
	_ = cmd.MarkFlagRequired("rent")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("down")
	return cmd
}

func affordCareerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "career",
		Short: "Does this job change improve my finances?",
		RunE: func(cmd *cobra.Command, _ []string) error {
			newSalary, _ := cmd.Flags().GetFloat64("new-salary")
			colDelta, _ := cmd.Flags().GetFloat64("cost-of-living-delta")
			return withDecisionProfile(cmd, func(ctx context.Context, engine *decision.Engine, profile decision.Profile) error {
				verdict, err := engine.EvaluateCareerMove(ctx, decision.CareerMoveRequest{
					NewSalary:         newSalary,
					CostOfLivingDelta: colDelta,
					Profile:           profile,
				})
				if err != nil {
					return err
				}
				fmt.Print(cli.RenderVerdict(verdict))
				return nil
			})
		},
	}
	cmd.Flags().Float64("new-salary", 0, "monthly salary of the new role")
	cmd.Flags().Float64("cost-of-living-delta", 0, "monthly living-cost change from the move")
	_ = cmd.MarkFlagRequired("new-salary")
	return cmd
}

// withDecisionProfile runs fn with the engine and a profile assembled from
// the store plus any flag overrides.
func withDecisionProfile(cmd *cobra.Command, fn func(context.Context, *decision.Engine, decision.Profile) error) error {
	return withDecisionStore(cmd, func(ctx context.Context, _ *storage.SQLiteStorage, engine *decision.Engine, profile decision.Profile) error {
		return fn(ctx, engine, profile)
	})
}

func withDecisionStore(cmd *cobra.Command, fn func(context.Context, *storage.SQLiteStorage, *decision.Engine, decision.Profile) error) error {
	ctx := cmd.Context()
	salaryFlag, _ := cmd.Flags().GetFloat64("salary")
	savingsFlag, _ := cmd.Flags().GetFloat64("savings")

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	stored, err := loadProfile(ctx, store, salaryFlag, savingsFlag)
	if err != nil {
		return err
	}

	policy := config.LoadPolicy()
	profile := decision.Profile{
		MonthlySalary:  stored.MonthlySalary,
		CurrentSavings: stored.CurrentSavings,
	}

	// Spending history enriches the verdict but is not required for it;
	// decisions still work on a fresh database.
	if history, histErr := loadHistory(ctx, store); histErr == nil {
		if stats, statsErr := analyzer.New(policy).Analyze(history, "all"); statsErr == nil {
			profile.Stats = stats
		} else {
			slog.Debug("Skipping spending context", "error", statsErr)
		}
		goals, goalsErr := store.ListGoals(ctx)
		if goalsErr != nil {
			return goalsErr
		}
		if built, buildErr := budget.NewBuilder(policy).Build(stored.MonthlySalary, history, goals); buildErr == nil {
			profile.Budget = built
		}
	}

	return fn(ctx, store, newEngine(policy), profile)
}
