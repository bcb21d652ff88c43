package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/winnerway/winnerway-cli/internal/analysis"
	"github.com/winnerway/winnerway-cli/internal/drills"
	"github.com/winnerway/winnerway-cli/internal/render"
)

var drillsVideoIDFlag string

var drillsCmd = &cobra.Command{
	Use:   "drills",
	Short: "Step through the personalized training drills for a video",
	Long: `Drills opens the training playground for an analyzed video: one drill at
a time, with next/previous/jump/restart navigation and overall progress.`,
	Run: runDrills,
}

func init() {
	drillsCmd.Flags().StringVar(&drillsVideoIDFlag, "video-id", "", "Video identifier returned by the upload")
	rootCmd.AddCommand(drillsCmd)
}

func runDrills(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	client, sess := newBackend()

	if drillsVideoIDFlag == "" {
		fmt.Println("Invalid request: no video ID provided.")
		os.Exit(1)
	}

	// Populate the session cache; a previously analyzed video costs one
	// fetch, an unanalyzed one triggers analysis.
	fetcher := analysis.NewFetcher(client, sess, drillsVideoIDFlag, printProgress("Loading drills"))
	if err := fetcher.Load(ctx); err != nil {
		fmt.Println()
		fmt.Println(err)
		os.Exit(1)
	}

	nav, err := drills.ForVideo(sess, drillsVideoIDFlag)
	if err != nil {
		if errors.Is(err, drills.ErrNoDrills) {
			fmt.Println("No drills available for this analysis. Analyze a video first.")
			os.Exit(0)
		}
		fmt.Println(err)
		os.Exit(1)
	}

	runDrillLoop(nav)
}

// runDrillLoop is the interactive drill playground.
func runDrillLoop(nav *drills.Navigator) {
	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Println()
		render.Drill(os.Stdout, nav.Current(), nav.Index(), nav.Count())
		fmt.Printf("Progress: %.0f%% (%d of %d)\n", nav.Progress(), nav.Index()+1, nav.Count())
		fmt.Print("[n]ext, [p]revious, [j]ump <num>, [r]estart, [q]uit: ")

		line, err := reader.ReadString('\n')
		if err != nil {
			return
		}
		fields := strings.Fields(strings.ToLower(strings.TrimSpace(line)))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "n", "next":
			if !nav.Next() {
				fmt.Println("Already on the last drill - training complete!")
			}
		case "p", "prev", "previous":
			if !nav.Previous() {
				fmt.Println("Already on the first drill.")
			}
		case "j", "jump":
			if len(fields) < 2 {
				fmt.Println("Usage: j <drill number>")
				continue
			}
			num, err := strconv.Atoi(fields[1])
			if err != nil || !nav.JumpTo(num-1) {
				fmt.Printf("Pick a drill between 1 and %d.\n", nav.Count())
			}
		case "r", "restart":
			nav.Restart()
		case "q", "quit":
			return
		default:
			fmt.Println("Unknown command.")
		}
	}
}
