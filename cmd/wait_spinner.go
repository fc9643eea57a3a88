package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type waitDoneMsg struct {
	err error
}

// waitLabelMsg replaces the spinner label. An empty label hides the
// spinner, e.g. while a question is asked on the terminal.
type waitLabelMsg struct {
	label string
}

type waitSpinnerModel struct {
	spinner spinner.Model
	label   string
	work    tea.Cmd
	err     error
	done    bool
}

func newWaitSpinnerModel(label string, work tea.Cmd) waitSpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	return waitSpinnerModel{
		spinner: s,
		label:   label,
		work:    work,
	}
}

func (m waitSpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m waitSpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case waitLabelMsg:
		m.label = msg.label
		return m, nil
	case waitDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m waitSpinnerModel) View() string {
	if m.done || m.label == "" {
		return ""
	}

	return fmt.Sprintf("%s %s", m.spinner.View(), m.label)
}

// spinnerLabel forwards label changes to a running spinner program.
type spinnerLabel struct {
	mu      sync.Mutex
	program *tea.Program
}

func (l *spinnerLabel) Set(label string) {
	l.mu.Lock()
	program := l.program
	l.mu.Unlock()

	if program != nil {
		program.Send(waitLabelMsg{label: label})
	}
}

func (l *spinnerLabel) attach(program *tea.Program) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.program = program
}

// runWaitSpinner shows a spinner on output while work runs. work may change
// the label through the spinnerLabel it receives.
func runWaitSpinner(ctx context.Context, output io.Writer, label string, work func(context.Context, *spinnerLabel) error) error {
	labels := &spinnerLabel{}
	workCmd := func() tea.Msg {
		return waitDoneMsg{err: work(ctx, labels)}
	}

	p := tea.NewProgram(
		newWaitSpinnerModel(label, workCmd),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)
	labels.attach(p)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(waitSpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
