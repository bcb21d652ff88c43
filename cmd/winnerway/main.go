package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/winnerway/winnerway-cli/internal/api"
	"github.com/winnerway/winnerway-cli/internal/config"
	"github.com/winnerway/winnerway-cli/internal/logging"
	"github.com/winnerway/winnerway-cli/internal/progress"
	"github.com/winnerway/winnerway-cli/internal/session"
)

// rootCmd is the main Cobra command for the winnerway CLI.
var rootCmd = &cobra.Command{
	Use:   "winnerway",
	Short: "AI tennis stroke analysis - upload, get feedback, train",
	Long: `WinnerWay analyzes a video of your tennis stroke with AI: it compares
your technique against professional players and returns structured feedback
plus personalized training drills.

Record a rally from behind (max 1 minute, .mp4/.mov/.avi, up to 25MB),
then:

  winnerway analyze                 # guided: fill the form, pick the video
  winnerway analyze -v swing.mp4 --email you@example.com \
      --stroke backhand --backhand-type 1h --hand righty \
      --level intermediate --gender men
  winnerway results --video-id <id> # revisit results for an uploaded video
  winnerway drills --video-id <id>  # step through your training drills
  winnerway upgrade                 # unlimited analysis (hosted checkout)`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newBackend wires the backend client and a fresh session store. The
// session lives for this process, mirroring a single browser tab.
func newBackend() (*api.Client, *session.Store) {
	cfg := config.Load()
	sess := session.New()
	log.Debug().Str("baseUrl", cfg.BaseURL).Str("sessionId", sess.ID()).Msg("Session started")
	return api.NewClient(cfg.BaseURL), sess
}

// printProgress renders a single-line progress indicator on stdout.
func printProgress(label string) progress.Func {
	return func(percent int) {
		fmt.Printf("\r%s... %3d%%", label, percent)
		if percent >= 100 {
			fmt.Println()
		}
	}
}
