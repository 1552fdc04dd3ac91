/*
Copyright © 2025 Jetstream Contributors
SPDX-License-Identifier: Apache-2.0
*/
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// Prompter defines the interface for user prompting
type Prompter interface {
	ConfirmCleanup(stackName string) (bool, error)
}

// StdinPrompter implements Prompter using standard input
type StdinPrompter struct {
	input io.Reader
}

// NewStdinPrompter creates a new prompter that reads from stdin
func NewStdinPrompter() *StdinPrompter {
	return &StdinPrompter{input: os.Stdin}
}

// NewPrompterWithInput creates a prompter reading from the given reader (for testing)
func NewPrompterWithInput(input io.Reader) *StdinPrompter {
	return &StdinPrompter{input: input}
}

// ConfirmCleanup asks whether the failed run's resources should be deleted.
// Answering no keeps the stack around for debugging.
func (p *StdinPrompter) ConfirmCleanup(stackName string) (bool, error) {
	fmt.Printf("\nDelete stack %s and its bucket? Answering no keeps them for debugging. [y/N]: ", stackName)

	scanner := bufio.NewScanner(p.input)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}
		// EOF or empty input - treat as "no"
		return false, nil
	}

	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return response == "y" || response == "yes", nil
}
