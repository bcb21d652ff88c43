// Package render prints analysis results and drills to the terminal.
// Purely derived output: it reads the payload, it never mutates it.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/winnerway/winnerway-cli/internal/api"
)

const divider = "--------------------------------------------"
const banner = "============================================"

// Analysis prints the full analysis report. videoURL may be empty, in
// which case the video section shows an unavailable state.
func Analysis(w io.Writer, res *api.AnalysisResponse, videoURL string) {
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "Your Tennis Analysis Results")
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Shots detected: %d\n", res.ShotsDetected)

	a := res.Analysis

	if a.BestMatch != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Best match: %s (%.0f%% similarity)\n",
			a.BestMatch.ProName, a.BestMatch.OverallSimilarity*100)
	}
	if len(a.AllMatches) > 0 {
		fmt.Fprintln(w, divider)
		fmt.Fprintln(w, "Pro comparisons")
		for i, m := range a.AllMatches {
			fmt.Fprintf(w, "   %2d. %-24s %.0f%%\n", i+1, m.ProName, m.OverallSimilarity*100)
		}
	}

	if a.Scores != nil {
		if len(a.Scores.Strengths) > 0 {
			fmt.Fprintln(w, divider)
			fmt.Fprintln(w, "Your Strengths")
			for _, s := range a.Scores.Strengths {
				fmt.Fprintf(w, "   + %s (%.1f)\n", s.Aspect, s.Score)
				fmt.Fprintf(w, "     %s\n", s.Comment)
			}
		}
		if len(a.Scores.AreasForImprovement) > 0 {
			fmt.Fprintln(w, divider)
			fmt.Fprintln(w, "Areas to Improve")
			for _, s := range a.Scores.AreasForImprovement {
				fmt.Fprintf(w, "   - %s (%.1f)\n", s.Aspect, s.Score)
				fmt.Fprintf(w, "     %s\n", s.Comment)
			}
		}
	}

	if ai := usableAssessment(a.AIAnalysis); ai != nil {
		fmt.Fprintln(w, divider)
		fmt.Fprintln(w, "AI Technical Analysis")
		fmt.Fprintln(w)
		fmt.Fprintln(w, ai.OverallAssessment)
		if obs := usableList(ai.KeyObservations); len(obs) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Key observations:")
			for i, o := range obs {
				fmt.Fprintf(w, "   %d. %s\n", i+1, o)
			}
		}
		if recs := usableList(ai.SpecificRecommendations); len(recs) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintln(w, "Recommendations:")
			for _, r := range recs {
				fmt.Fprintf(w, "   - %s\n", r)
			}
		}
		if areas := usableList(ai.FocusAreas); len(areas) > 0 {
			fmt.Fprintln(w)
			fmt.Fprintf(w, "Practice focus: %s\n", strings.Join(areas, ", "))
		}
	}

	fmt.Fprintln(w, divider)
	if videoURL != "" {
		fmt.Fprintf(w, "Your shot video: %s\n", videoURL)
	} else {
		fmt.Fprintln(w, "Video not available")
	}

	if n := len(a.PersonalizedDrills); n > 0 {
		fmt.Fprintf(w, "%d personalized drill(s) ready - run the drill playground to train.\n", n)
	}
	fmt.Fprintln(w, banner)
}

// Drill prints one drill card with its position in the sequence.
func Drill(w io.Writer, d api.Drill, index, count int) {
	fmt.Fprintln(w, banner)
	fmt.Fprintf(w, "Drill %d of %d: %s\n", index+1, count, d.Title)
	fmt.Fprintln(w, banner)
	if d.Objective != "" {
		fmt.Fprintf(w, "Objective: %s\n", d.Objective)
	}
	if d.Description != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, d.Description)
	}
	if d.BiomechanicalFocus != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Biomechanical focus: %s\n", d.BiomechanicalFocus)
	}
	if len(d.Steps) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Training steps:")
		for i, step := range d.Steps {
			fmt.Fprintf(w, "   %d. %s\n", i+1, step)
		}
	}
	if len(d.CoachingCues) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Coaching cues:")
		for _, cue := range d.CoachingCues {
			fmt.Fprintf(w, "   * %q\n", cue)
		}
	}
	if d.Progression != "" {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Progression: %s\n", d.Progression)
	}
}

// Placeholder fragments the backend emits when AI generation failed; those
// sections are hidden rather than shown to the user.
var placeholderFragments = []string{
	"Error generating",
	"temporarily unavailable",
	"try again later",
	"pending",
}

func isPlaceholder(s string) bool {
	for _, frag := range placeholderFragments {
		if strings.Contains(s, frag) {
			return true
		}
	}
	return false
}

// usableAssessment returns the AI assessment when present and not a
// generation-failure placeholder.
func usableAssessment(a *api.AIAnalysis) *api.AIAssessment {
	if a == nil || a.AIAnalysis == nil {
		return nil
	}
	if isPlaceholder(a.AIAnalysis.OverallAssessment) {
		return nil
	}
	return a.AIAnalysis
}

// usableList drops a list entirely if any entry is a placeholder.
func usableList(items []string) []string {
	for _, item := range items {
		if isPlaceholder(item) {
			return nil
		}
	}
	return items
}
