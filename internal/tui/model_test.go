package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ShayneJG/number-combination-solver/internal/cli/config"
	"github.com/ShayneJG/number-combination-solver/pkg/solver"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		MaxInt:     25,
		Multiply:   true,
		Subtract:   true,
		Divide:     true,
		MaxNumbers: 6,
		TopN:       5,
	}
}

func TestNewSeedsFormFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Exclude = []int64{7, 13}
	m := New(cfg)

	assert.Equal(t, "25", m.inputs[fieldMaxInt].Value())
	assert.Equal(t, "7,13", m.inputs[fieldExclude].Value())
	assert.Equal(t, "6", m.inputs[fieldMaxNumbers].Value())
	assert.Equal(t, "5", m.inputs[fieldTop].Value())
	assert.Equal(t, []bool{true, true, true, false, false}, m.toggles)
	assert.Equal(t, stateForm, m.state)
}

func TestFormOptions(t *testing.T) {
	m := New(testConfig())
	m.inputs[fieldTarget].SetValue("24")
	m.inputs[fieldExclude].SetValue("3, 5")

	opts, target, err := m.formOptions()
	require.NoError(t, err)

	assert.Equal(t, int64(24), target)
	assert.Equal(t, int64(24), opts.Target)
	assert.Equal(t, 25, opts.MaxInt)
	assert.Equal(t, []int64{3, 5}, opts.Exclude)
	assert.True(t, opts.Operators.Multiply)
	assert.False(t, opts.Operators.Exponentiate)
	assert.False(t, opts.Exhaustive)
}

func TestFormOptionsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Model)
	}{
		{"empty target", func(_ *Model) {}},
		{"non-numeric target", func(m *Model) { m.inputs[fieldTarget].SetValue("abc") }},
		{"zero max int", func(m *Model) {
			m.inputs[fieldTarget].SetValue("5")
			m.inputs[fieldMaxInt].SetValue("0")
		}},
		{"bad exclude", func(m *Model) {
			m.inputs[fieldTarget].SetValue("5")
			m.inputs[fieldExclude].SetValue("3,x")
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(testConfig())
			tt.mutate(&m)
			_, _, err := m.formOptions()
			assert.Error(t, err)
		})
	}
}

func TestFocusCyclesThroughFieldsAndToggles(t *testing.T) {
	m := New(testConfig())
	total := numInputs + len(toggleLabels)

	var model tea.Model = m
	for i := 0; i < total; i++ {
		model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	assert.Equal(t, 0, model.(Model).focus, "tab should wrap around")

	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, total-1, model.(Model).focus)
}

func TestSpaceTogglesOperator(t *testing.T) {
	m := New(testConfig())
	m.setFocus(numInputs) // multiply

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, model.(Model).toggles[0])

	model, _ = model.(Model).Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, model.(Model).toggles[0])
}

func TestProgressAndResultsMessages(t *testing.T) {
	m := New(testConfig())
	m.state = stateSearching
	m.events = make(chan tea.Msg, 1)

	model, _ := m.Update(progressMsg("Searching 2 numbers..."))
	assert.Equal(t, []string{"Searching 2 numbers..."}, model.(Model).progress)

	sols := []solver.Solution{{Expression: "5 + 5", Result: 10, OpCount: 1}}
	model, _ = model.(Model).Update(resultsMsg{solutions: sols})
	result := model.(Model)
	assert.Equal(t, stateResults, result.state)
	assert.Equal(t, sols, result.results)
}

func TestViewShowsResults(t *testing.T) {
	m := New(testConfig())
	m.state = stateResults
	m.target = 10
	m.results = []solver.Solution{{Expression: "5 + 5", Result: 10, OpCount: 1}}

	view := m.View()
	assert.Contains(t, view, "Solutions for 10")
	assert.Contains(t, view, "5 + 5")
}

func TestViewShowsNoSolutions(t *testing.T) {
	m := New(testConfig())
	m.state = stateResults
	m.target = 99

	assert.Contains(t, m.View(), "No solutions found for 99.")
}

func TestViewFormListsAllFields(t *testing.T) {
	m := New(testConfig())
	view := m.View()

	for _, label := range inputLabels {
		assert.Contains(t, view, label)
	}
	for _, label := range toggleLabels {
		assert.Contains(t, view, label)
	}
	assert.True(t, strings.Contains(view, "[x] multiply"))
	assert.True(t, strings.Contains(view, "[ ] exponent"))
}

func TestAbandonSearchUnblocksSender(t *testing.T) {
	m := New(testConfig())
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.events = make(chan tea.Msg, 1)
	m.events <- progressMsg("Searching 1 numbers...") // fill the buffer

	m.abandonSearch()

	// The drainer must keep consuming so the search goroutine's sends
	// never block after the UI quits.
	select {
	case m.events <- progressMsg("Searching 2 numbers..."):
	case <-time.After(5 * time.Second):
		t.Fatal("send blocked after the search was abandoned")
	}

	select {
	case <-ctx.Done():
	default:
		t.Error("abandoning a search should cancel its context")
	}
}
