package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"golang.org/x/term"

	"shelterapp/cli/internal/terminal"
)

// stdinReader is shared across prompts so buffered input is not lost between
// consecutive reads.
var stdinReader = bufio.NewReader(os.Stdin)

// startInlineSpinner animates a stick spinner next to text on the current
// terminal line, redrawing in place at the given interval. The returned
// function stops the animation, blanks the line and waits for the spinner
// goroutine to exit.
func startInlineSpinner(w io.Writer, text string, frames []string, interval time.Duration) func() {
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		i := 0
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				line := fmt.Sprintf("%s %s", frames[i%len(frames)], text)
				// Clear the spinner line completely, then return
				fmt.Fprintf(w, "\r%*s\r", len(line), "")
				return
			case <-ticker.C:
				fmt.Fprintf(w, "\r%s %s", frames[i%len(frames)], text)
				i++
			}
		}
	}()
	return func() {
		close(stop)
		wg.Wait()
	}
}

// promptLine shows prompt and reads one line of input, trimming surrounding
// whitespace. The prompt and the typed input are cleared from the terminal
// afterwards.
func promptLine(prompt string) string {
	fmt.Print(prompt)
	raw, _ := stdinReader.ReadString('\n')
	value := strings.TrimSpace(raw)

	// Clear the prompt and user input from terminal
	terminal.ClearPreviousLines(len(prompt) + len(value))
	return value
}

// promptPassword shows prompt and reads a password without echoing it.
// The prompt line is cleared from the terminal afterwards.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}

	terminal.ClearPreviousLines(len(prompt))
	return string(raw), nil
}
