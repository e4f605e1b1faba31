package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/evalbridge/pkg/modeladapter"
)

// thinkingMessages are displayed while the model is generating.
var thinkingMessages = []string{
	"Thinking...",
	"Consulting the gateway...",
	"Brewing a response...",
	"Assembling words...",
	"Crunching tokens...",
	"Weaving thoughts...",
}

// resultMsg carries the asynchronous generation result into the program.
type resultMsg modeladapter.Result

// waitModel is a bubbletea model that shows a spinner until a generation
// result arrives or the user interrupts.
type waitModel struct {
	spinner spinner.Model
	label   string
	results <-chan modeladapter.Result
	cancel  context.CancelFunc

	result modeladapter.Result
	done   bool
}

func newWaitModel(model string, results <-chan modeladapter.Result, cancel context.CancelFunc) waitModel {
	return waitModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(spinnerStyle),
		),
		label:   fmt.Sprintf("%s %s", model, thinkingMessages[rand.IntN(len(thinkingMessages))]), //nolint:gosec // cosmetic randomness
		results: results,
		cancel:  cancel,
	}
}

func waitForResult(ch <-chan modeladapter.Result) tea.Cmd {
	return func() tea.Msg {
		res, ok := <-ch
		if !ok {
			return resultMsg{Err: modeladapter.ErrNoResult}
		}
		return resultMsg(res)
	}
}

func (m waitModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, waitForResult(m.results))
}

func (m waitModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.result = modeladapter.Result(msg)
		m.done = true
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" || msg.String() == "esc" {
			m.cancel()
			m.result = modeladapter.Result{Err: context.Canceled}
			m.done = true
			return m, tea.Quit
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m waitModel) View() string {
	if m.done {
		return ""
	}

	return m.spinner.View() + " " + dimStyle.Render(m.label) + "\n"
}

// awaitWithSpinner starts an asynchronous generation and shows a spinner on
// stderr until it completes.
func awaitWithSpinner(ctx context.Context, model modeladapter.Model, prompt string) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	results := model.AGenerate(ctx, prompt)

	p := tea.NewProgram(
		newWaitModel(model.GetModelName(), results, cancel),
		tea.WithOutput(os.Stderr),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		// The program could not drive the terminal; fall back to waiting.
		return modeladapter.Await(ctx, results)
	}

	wm, ok := final.(waitModel)
	if !ok || !wm.done {
		return modeladapter.Await(ctx, results)
	}

	return wm.result.Text, wm.result.Err
}
