// Package terminal provides small helpers for terminal control sequences.
package terminal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const fallbackWidth = 80

// ClearPreviousLines removes a previously printed prompt from the terminal.
// textLength is the number of characters that were printed, prompt and typed
// input together; the helper works out how many rows that occupied at the
// current terminal width and clears each one with ANSI escape sequences.
//
// The row the cursor landed on after Enter is cleared as well.
func ClearPreviousLines(textLength int) {
	width := fallbackWidth
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	rows := (textLength + width - 1) / width
	if rows < 1 {
		rows = 1
	}
	// One extra row for the newline the Enter key produced.
	rows++

	for i := 0; i < rows; i++ {
		fmt.Print("\r\x1b[2K") // move to start and clear the entire line
		if i < rows-1 {
			fmt.Print("\x1b[1A") // move up, except on the last iteration
		}
	}
}
