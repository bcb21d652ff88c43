package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/winnerway/winnerway-cli/internal/cli"
	"github.com/winnerway/winnerway-cli/internal/payment"
	"github.com/winnerway/winnerway-cli/internal/progress"
)

var (
	upgradeEmailFlag   string
	upgradeAmountFlag  int
	upgradeProductFlag string
)

var upgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Get unlimited analysis (opens a hosted checkout)",
	Long: `Upgrade creates a hosted checkout session for Tennis Analysis Pro:
unlimited AI analysis, detailed feedback, and personalized training
recommendations. Payment happens entirely on the provider's page; this
command only hands you the checkout URL.`,
	Run: runUpgrade,
}

func init() {
	upgradeCmd.Flags().StringVarP(&upgradeEmailFlag, "email", "e", "", "Email for the purchase receipt")
	upgradeCmd.Flags().IntVar(&upgradeAmountFlag, "amount", payment.DefaultAmount, "Price in cents")
	upgradeCmd.Flags().StringVar(&upgradeProductFlag, "product", payment.DefaultProductName, "Product name")
	rootCmd.AddCommand(upgradeCmd)
}

func runUpgrade(cmd *cobra.Command, args []string) {
	client, _ := newBackend()

	email := upgradeEmailFlag
	if email == "" {
		email = cli.PromptLine(os.Stdin, "Email address")
	}

	checkoutURL, err := payment.Checkout(context.Background(), client, email, upgradeAmountFlag, upgradeProductFlag)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Complete your purchase here:")
	fmt.Println()
	fmt.Printf("  %s\n", checkoutURL)
	fmt.Println()
	fmt.Printf("Price: $%.2f - %s\n", float64(upgradeAmountFlag)/100, upgradeProductFlag)
	fmt.Println()

	// Countdown mirrors the post-payment success view: continue to a new
	// analysis after ten seconds, Ctrl+C to stay.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	completed := progress.Countdown(ctx, 10, func(remaining int) {
		fmt.Printf("\rContinuing in %2d seconds (Ctrl+C to stay)...", remaining)
	})
	fmt.Println()
	if completed {
		fmt.Println(`Once paid, run "winnerway analyze" to use your unlimited access.`)
	}
}
