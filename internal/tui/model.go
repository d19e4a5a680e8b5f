// Package tui implements the interactive full-screen solver built on
// bubbletea. The user fills in a search form, watches progress while the
// search runs, and pages through the ranked solutions.
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ShayneJG/number-combination-solver/internal/cli/config"
	"github.com/ShayneJG/number-combination-solver/pkg/solver"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// state tracks which screen the model is showing.
type state int

const (
	stateForm state = iota
	stateSearching
	stateResults
)

// Text-input fields, in focus order. Toggles follow them.
const (
	fieldTarget = iota
	fieldMaxInt
	fieldExclude
	fieldMaxNumbers
	fieldTop
	numInputs
)

// toggleLabels names the boolean fields in focus order after the inputs.
var toggleLabels = []string{"multiply", "subtract", "divide", "exponent", "exhaustive"}

// progressMsg carries one progress line from the running search.
type progressMsg string

// resultsMsg signals the search finished.
type resultsMsg struct {
	solutions []solver.Solution
	err       error
}

// Model is the bubbletea model for the interactive solver.
type Model struct {
	inputs  []textinput.Model
	toggles []bool
	focus   int

	spin     spinner.Model
	state    state
	target   int64
	progress []string
	events   chan tea.Msg
	cancel   context.CancelFunc

	results []solver.Solution
	err     error

	width  int
	height int

	styles formStyles
}

type formStyles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	focused  lipgloss.Style
	muted    lipgloss.Style
	errText  lipgloss.Style
	solution lipgloss.Style
}

func newFormStyles() formStyles {
	return formStyles{
		title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		label:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		focused:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")),
		muted:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		errText:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		solution: lipgloss.NewStyle().Foreground(lipgloss.Color("86")),
	}
}

// New creates the model with form fields seeded from the configuration.
func New(cfg *config.Config) Model {
	inputs := make([]textinput.Model, numInputs)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 32
		ti.Width = 20
		inputs[i] = ti
	}
	inputs[fieldTarget].Placeholder = "target"
	inputs[fieldMaxInt].SetValue(strconv.Itoa(cfg.MaxInt))
	inputs[fieldExclude].Placeholder = "e.g. 7,13"
	inputs[fieldExclude].SetValue(joinInt64s(cfg.Exclude))
	inputs[fieldMaxNumbers].SetValue(strconv.Itoa(cfg.MaxNumbers))
	inputs[fieldTop].SetValue(strconv.Itoa(cfg.TopN))
	inputs[fieldTarget].Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		inputs:  inputs,
		toggles: []bool{cfg.Multiply, cfg.Subtract, cfg.Divide, cfg.Exponent, cfg.Exhaustive},
		spin:    sp,
		state:   stateForm,
		styles:  newFormStyles(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case spinner.TickMsg:
		if m.state != stateSearching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case progressMsg:
		m.progress = append(m.progress, string(msg))
		return m, m.listen()

	case resultsMsg:
		m.state = stateResults
		m.results = msg.solutions
		m.err = msg.err
		m.cancel = nil
		m.events = nil
		return m, nil
	}

	return m.updateFocused(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.abandonSearch()
		return m, tea.Quit

	case "q":
		// q quits except while typing into a field.
		if m.state != stateForm {
			m.abandonSearch()
			return m, tea.Quit
		}

	case "esc":
		switch m.state {
		case stateSearching:
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		case stateResults:
			m.state = stateForm
			m.err = nil
			m.progress = nil
			return m, nil
		default:
			return m, tea.Quit
		}
	}

	switch m.state {
	case stateForm:
		return m.handleFormKey(msg)
	case stateResults:
		if msg.String() == "enter" {
			m.state = stateForm
			m.err = nil
			m.progress = nil
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	total := numInputs + len(m.toggles)

	switch msg.String() {
	case "tab", "down":
		m.setFocus((m.focus + 1) % total)
		return m, nil
	case "shift+tab", "up":
		m.setFocus((m.focus + total - 1) % total)
		return m, nil
	case " ":
		if m.focus >= numInputs {
			m.toggles[m.focus-numInputs] = !m.toggles[m.focus-numInputs]
			return m, nil
		}
	case "enter":
		return m.startSearch()
	}

	return m.updateFocused(msg)
}

func (m *Model) setFocus(focus int) {
	m.focus = focus
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state != stateForm || m.focus >= numInputs {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// startSearch validates the form and kicks off the solver goroutine. The
// goroutine reports through the events channel so Update stays single
// threaded.
func (m Model) startSearch() (tea.Model, tea.Cmd) {
	opts, target, err := m.formOptions()
	if err != nil {
		m.err = err
		return m, nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg, 16)
	opts.Progress = func(msg string) {
		// Progress is droppable; never let the search goroutine block on
		// a UI that has stopped listening.
		select {
		case events <- progressMsg(msg):
		case <-ctx.Done():
		}
	}

	m.state = stateSearching
	m.target = target
	m.progress = nil
	m.results = nil
	m.err = nil
	m.events = events
	m.cancel = cancel

	go func() {
		solutions, err := solver.Search(ctx, opts)
		events <- resultsMsg{solutions: solutions, err: err}
		close(events)
	}()

	return m, tea.Batch(m.spin.Tick, m.listen())
}

// listen waits for the next message from the search goroutine.
func (m Model) listen() tea.Cmd {
	events := m.events
	return func() tea.Msg {
		return <-events
	}
}

// abandonSearch cancels a running search and drains its channel so the
// goroutine can finish after the UI stops listening.
func (m Model) abandonSearch() {
	if m.cancel != nil {
		m.cancel()
	}
	if m.events != nil {
		events := m.events
		go func() {
			for range events {
			}
		}()
	}
}

// formOptions parses the form into solver options.
func (m Model) formOptions() (solver.Options, int64, error) {
	var opts solver.Options

	target, err := strconv.ParseInt(strings.TrimSpace(m.inputs[fieldTarget].Value()), 10, 64)
	if err != nil {
		return opts, 0, fmt.Errorf("target must be a whole number")
	}

	maxInt, err := parsePositive(m.inputs[fieldMaxInt].Value(), "max int")
	if err != nil {
		return opts, 0, err
	}
	maxNumbers, err := parsePositive(m.inputs[fieldMaxNumbers].Value(), "max numbers")
	if err != nil {
		return opts, 0, err
	}
	topN, err := parsePositive(m.inputs[fieldTop].Value(), "top")
	if err != nil {
		return opts, 0, err
	}
	exclude, err := parseInt64List(m.inputs[fieldExclude].Value())
	if err != nil {
		return opts, 0, fmt.Errorf("exclude must be comma-separated whole numbers")
	}

	opts = solver.DefaultOptions(target)
	opts.MaxInt = maxInt
	opts.MaxNumbers = maxNumbers
	opts.TopN = topN
	opts.Exclude = exclude
	opts.Operators.Multiply = m.toggles[0]
	opts.Operators.Subtract = m.toggles[1]
	opts.Operators.Divide = m.toggles[2]
	opts.Operators.Exponentiate = m.toggles[3]
	opts.Exhaustive = m.toggles[4]
	return opts, target, nil
}

func parsePositive(value, name string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive whole number", name)
	}
	return n, nil
}

func parseInt64List(value string) ([]int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	var out []int64
	for _, field := range strings.Split(value, ",") {
		v, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func joinInt64s(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, ",")
}
