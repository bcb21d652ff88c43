// Package cli provides interactive prompt helpers for filling in intake
// fields that were not supplied as flags.
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog/log"
)

// PromptLine prompts for a free-text value and returns the trimmed input.
// Returns "" when reading fails or the user enters nothing.
func PromptLine(r io.Reader, label string) string {
	fmt.Printf("%s: ", label)

	reader := bufio.NewReader(r)
	input, err := reader.ReadString('\n')
	if err != nil {
		log.Warn().Err(err).Str("field", label).Msg("Failed to read input")
		return ""
	}
	return strings.TrimSpace(input)
}

// PromptChoice prompts until the user enters one of the allowed options
// (case-insensitive). Returns "" on read failure or EOF so callers can fall
// through to validation.
func PromptChoice(r io.Reader, label string, options ...string) string {
	reader := bufio.NewReader(r)
	for {
		fmt.Printf("%s (%s): ", label, strings.Join(options, "/"))

		input, err := reader.ReadString('\n')
		if err != nil {
			log.Warn().Err(err).Str("field", label).Msg("Failed to read input")
			return ""
		}
		input = strings.ToLower(strings.TrimSpace(input))
		if input == "" {
			return ""
		}
		for _, opt := range options {
			if input == opt {
				return opt
			}
		}
		fmt.Printf("Please enter one of: %s\n", strings.Join(options, ", "))
	}
}

// Confirm prompts for a yes/no answer, defaulting to no.
func Confirm(r io.Reader, label string) bool {
	fmt.Printf("%s (y/N): ", label)

	reader := bufio.NewReader(r)
	input, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	input = strings.ToLower(strings.TrimSpace(input))
	return input == "y" || input == "yes"
}
