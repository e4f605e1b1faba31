package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
)

// renderMarkdown converts markdown text to terminal-formatted output. It
// falls back to the raw text when the renderer cannot be built.
func renderMarkdown(text string, width int) string {
	if width <= 0 {
		width = 100
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return text
	}

	out, err := r.Render(text)
	if err != nil {
		return text
	}

	return strings.TrimRight(out, "\n")
}

// printReply writes the model reply to w, rendered as markdown when asked.
func printReply(w io.Writer, text string, render bool) error {
	if render {
		text = renderMarkdown(text, 0)
	}

	_, err := fmt.Fprintln(w, text)

	return err
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorPrefix, errorStyle.Render(err.Error()))
}
