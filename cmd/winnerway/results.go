package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winnerway/winnerway-cli/internal/analysis"
	"github.com/winnerway/winnerway-cli/internal/api"
	"github.com/winnerway/winnerway-cli/internal/cli"
	"github.com/winnerway/winnerway-cli/internal/render"
	"github.com/winnerway/winnerway-cli/internal/session"
)

var resultsVideoIDFlag string

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Fetch and display analysis results for an uploaded video",
	Run:   runResults,
}

func init() {
	resultsCmd.Flags().StringVar(&resultsVideoIDFlag, "video-id", "", "Video identifier returned by the upload")
	rootCmd.AddCommand(resultsCmd)
}

func runResults(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	client, sess := newBackend()

	if !fetchAndRender(ctx, client, sess, resultsVideoIDFlag) {
		os.Exit(1)
	}
	offerDrills(sess, resultsVideoIDFlag)
}

// fetchAndRender drives the analysis fetcher to a terminal state and
// renders the result. Failures offer a manual retry, except the upgrade
// gate, which routes to the purchase flow instead.
func fetchAndRender(ctx context.Context, client *api.Client, sess *session.Store, videoID string) bool {
	fetcher := analysis.NewFetcher(client, sess, videoID, printProgress("Analyzing your shot"))

	err := fetcher.Load(ctx)
	for err != nil {
		fmt.Println()
		if errors.Is(err, analysis.ErrNoVideoID) {
			fmt.Println("Invalid request: no video ID provided for analysis.")
			return false
		}
		var upgrade *api.UpgradeRequiredError
		if errors.As(err, &upgrade) {
			fmt.Println(upgrade.Error())
			fmt.Println(`Get unlimited analysis with: winnerway upgrade`)
			return false
		}
		fmt.Printf("Analysis failed: %v\n", err)
		if !cli.Confirm(os.Stdin, "Try again?") {
			return false
		}
		err = fetcher.Retry(ctx)
	}

	videoURL := fetcher.VideoURL(ctx)
	fmt.Println()
	render.Analysis(os.Stdout, fetcher.Result(), videoURL)
	return true
}
