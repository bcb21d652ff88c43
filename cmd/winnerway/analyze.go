package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/winnerway/winnerway-cli/internal/cli"
	"github.com/winnerway/winnerway-cli/internal/drills"
	"github.com/winnerway/winnerway-cli/internal/intake"
	"github.com/winnerway/winnerway-cli/internal/session"
	"github.com/winnerway/winnerway-cli/internal/upload"
)

// CLI flags
var (
	videoFlag        string
	emailFlag        string
	strokeFlag       string
	backhandTypeFlag string
	handFlag         string
	levelFlag        string
	genderFlag       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Upload a stroke video and get AI analysis",
	Long: `Analyze uploads a video of your stroke and fetches the AI analysis:
shots detected, your closest professional match, strengths and areas to
improve, and personalized training drills.

Fields not given as flags are prompted interactively. The video can only
be selected once the rest of the form is complete.`,
	Run: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&videoFlag, "video", "v", "", "Path to your stroke video (.mp4, .mov, .avi, max 25MB)")
	analyzeCmd.Flags().StringVarP(&emailFlag, "email", "e", "", "Your email address")
	analyzeCmd.Flags().StringVar(&strokeFlag, "stroke", "", "Stroke to analyze: forehand or backhand")
	analyzeCmd.Flags().StringVar(&backhandTypeFlag, "backhand-type", "", "Backhand type: 1h or 2h (required with --stroke backhand)")
	analyzeCmd.Flags().StringVar(&handFlag, "hand", "", "Dominant hand: righty or lefty")
	analyzeCmd.Flags().StringVar(&levelFlag, "level", "", "Experience level: beginner, intermediate, or advanced")
	analyzeCmd.Flags().StringVar(&genderFlag, "gender", "", "Compare against: men or women")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	client, sess := newBackend()

	form := collectForm()

	if err := selectVideo(form); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	uploader := upload.New(client, sess, printProgress("Processing video"))
	result, err := uploader.Submit(ctx, form)
	if err != nil {
		fmt.Println()
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Printf("Uploaded %s (video %s, status %s)\n", result.Filename, result.VideoID, result.Status)
	if result.UserInfo.IsNewUser {
		fmt.Printf("Welcome to WinnerWay, %s!\n", result.UserInfo.Email)
	}
	fmt.Println()

	if !fetchAndRender(ctx, client, sess, result.VideoID) {
		os.Exit(1)
	}

	offerDrills(sess, result.VideoID)
}

// collectForm builds the intake form from flags, prompting for anything
// missing. The video is handled separately because its selection is gated
// on the rest of the form.
func collectForm() *intake.Form {
	form := &intake.Form{
		Email:      emailFlag,
		Stroke:     intake.Stroke(strokeFlag),
		Backhand:   intake.BackhandVariant(backhandTypeFlag),
		Hand:       intake.Hand(handFlag),
		Experience: intake.Experience(levelFlag),
		Gender:     intake.Gender(genderFlag),
	}

	if form.Email == "" {
		form.Email = cli.PromptLine(os.Stdin, "Email address")
	}
	if form.Stroke == "" {
		form.Stroke = intake.Stroke(cli.PromptChoice(os.Stdin, "Stroke to analyze", "forehand", "backhand"))
	}
	if form.Stroke == intake.StrokeBackhand && form.Backhand == "" {
		form.Backhand = intake.BackhandVariant(cli.PromptChoice(os.Stdin, "Backhand type", "1h", "2h"))
	}
	if form.Hand == "" {
		form.Hand = intake.Hand(cli.PromptChoice(os.Stdin, "Dominant hand", "righty", "lefty"))
	}
	if form.Experience == "" {
		form.Experience = intake.Experience(cli.PromptChoice(os.Stdin, "Experience level", "beginner", "intermediate", "advanced"))
	}
	if form.Gender == "" {
		form.Gender = intake.Gender(cli.PromptChoice(os.Stdin, "Compare against", "men", "women"))
	}

	return form
}

// selectVideo attaches the stroke video to the form, opening the native
// file picker when no --video flag was given. No file registers while the
// rest of the form is incomplete, whether it arrives via the picker or the
// --video flag.
func selectVideo(form *intake.Form) error {
	if !form.FieldsComplete() {
		return errors.New(intake.PickerGateMessage)
	}

	path := videoFlag
	if path == "" {
		picked, err := cli.PickVideoFile()
		if err != nil {
			return err
		}
		path = picked
	}

	video, err := intake.LoadVideoFile(path)
	if err != nil {
		return err
	}
	form.Video = video
	return nil
}

// offerDrills starts the drill playground when the analysis carries drills
// and the user wants to train now.
func offerDrills(sess *session.Store, videoID string) {
	nav, err := drills.ForVideo(sess, videoID)
	if err != nil {
		return
	}
	fmt.Println()
	if cli.Confirm(os.Stdin, fmt.Sprintf("Start training drills now? (%d available)", nav.Count())) {
		runDrillLoop(nav)
	} else {
		fmt.Printf("Run them later with: winnerway drills --video-id %s\n", videoID)
	}
}
