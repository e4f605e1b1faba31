package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
)

var errEmptyPrompt = errors.New("empty prompt")

// askPrompt asks for a prompt interactively. Replaced in tests.
var askPrompt = func() (string, error) {
	var prompt string

	if err := huh.NewForm(huh.NewGroup(
		huh.NewText().
			Title("Prompt").
			Description("Sent to the model as a single user message.").
			Value(&prompt),
	)).Run(); err != nil {
		return "", err
	}

	return prompt, nil
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolvePrompt picks the prompt from the flag, then piped stdin, then an
// interactive form. Trailing newlines from stdin are dropped. Only a prompt
// with nothing left to send is rejected; whitespace is passed through.
func resolvePrompt(flagPrompt string, stdin io.Reader, interactive bool) (string, error) {
	if flagPrompt != "" {
		return flagPrompt, nil
	}

	var (
		prompt string
		err    error
	)

	if interactive {
		prompt, err = askPrompt()
	} else {
		var data []byte
		data, err = io.ReadAll(stdin)
		prompt = strings.TrimRight(string(data), "\r\n")
	}

	if err != nil {
		return "", fmt.Errorf("read prompt: %w", err)
	}

	if prompt == "" {
		return "", errEmptyPrompt
	}

	return prompt, nil
}
