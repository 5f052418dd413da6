package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/castlewood/finsight/internal/cli"
	"github.com/castlewood/finsight/internal/common"
	"github.com/castlewood/finsight/internal/decision"
)

func subscriptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscriptions",
		Aliases: []string{"subs"},
		Short:   "Manage recurring subscriptions",
		Long: `Record the recurring subscriptions you already pay for. The afford
subscription command counts these toward the recurring-spend cap when
judging whether a new subscription fits.`,
		RunE: runSubscriptionsList,
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Record an existing subscription",
		Args:  cobra.ExactArgs(1),
		RunE:  runSubscriptionsAdd,
	}
	add.Flags().Float64("cost", 0, "monthly cost")
	_ = add.MarkFlagRequired("cost")

	cmd.AddCommand(add)
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded subscriptions",
		RunE:  runSubscriptionsList,
	})

	return cmd
}

func runSubscriptionsAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cost, _ := cmd.Flags().GetFloat64("cost")
	if cost <= 0 {
		return common.NewInvalidInputError("cost", "must be positive")
	}

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveSubscription(ctx, decision.Subscription{Name: args[0], MonthlyCost: cost}); err != nil {
		return err
	}

	fmt.Printf("Recorded subscription %q at $%.2f/month\n", args[0], cost)
	return nil
}

func runSubscriptionsList(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := openStore(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	subs, err := store.ListSubscriptions(ctx)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("No subscriptions recorded")
		return nil
	}

	total := 0.0
	fmt.Println(cli.TitleStyle.Render("Subscriptions"))
	for _, sub := range subs {
		total += sub.MonthlyCost
		fmt.Printf("  %-24s $%.2f/month\n", sub.Name, sub.MonthlyCost)
	}
	fmt.Printf("  %-24s $%.2f/month\n", cli.BoldStyle.Render("Total"), total)
	return nil
}
