package main

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/germanamz/evalbridge/pkg/modeladapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitModel_Result(t *testing.T) {
	m := newWaitModel("vendor/model", nil, func() {})

	assert.Contains(t, m.View(), "vendor/model")

	next, cmd := m.Update(resultMsg{Text: "hello"})
	wm, ok := next.(waitModel)
	require.True(t, ok)

	assert.True(t, wm.done)
	assert.Equal(t, "hello", wm.result.Text)
	assert.Empty(t, wm.View())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWaitModel_CtrlCCancels(t *testing.T) {
	cancelled := false
	m := newWaitModel("vendor/model", nil, func() { cancelled = true })

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	wm, ok := next.(waitModel)
	require.True(t, ok)

	assert.True(t, cancelled)
	assert.ErrorIs(t, wm.result.Err, context.Canceled)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestWaitModel_OtherKeysIgnored(t *testing.T) {
	m := newWaitModel("vendor/model", nil, func() { t.Fatal("unexpected cancel") })

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	wm, ok := next.(waitModel)
	require.True(t, ok)

	assert.False(t, wm.done)
	assert.Nil(t, cmd)
}

func TestWaitModel_SpinnerTicks(t *testing.T) {
	m := newWaitModel("vendor/model", nil, func() {})

	tick, ok := m.spinner.Tick().(spinner.TickMsg)
	require.True(t, ok)

	_, cmd := m.Update(tick)
	assert.NotNil(t, cmd)
}

func TestWaitForResult(t *testing.T) {
	ch := make(chan modeladapter.Result, 1)
	ch <- modeladapter.Result{Err: errors.New("boom")}

	msg := waitForResult(ch)()
	res, ok := msg.(resultMsg)
	require.True(t, ok)
	assert.EqualError(t, res.Err, "boom")
}

func TestWaitForResult_Closed(t *testing.T) {
	ch := make(chan modeladapter.Result)
	close(ch)

	res, ok := waitForResult(ch)().(resultMsg)
	require.True(t, ok)
	assert.ErrorIs(t, res.Err, modeladapter.ErrNoResult)
	assert.NotErrorIs(t, res.Err, context.Canceled)
}
