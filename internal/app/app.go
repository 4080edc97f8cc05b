// Package app implements the interactive conversion flow: pick a
// direction, point at a file, pick the NDC column from its header, name
// the output, run. One pass, then exit.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JonMunkholm/ndcconv/internal/config"
	"github.com/JonMunkholm/ndcconv/internal/run"
)

type step int

const (
	stepDirection step = iota
	stepFile
	stepColumn
	stepOutput
	stepRunning
	stepDone
)

// Messages delivered by commands.
type (
	columnsMsg []string
	resultMsg  *run.Result
	errMsg     struct{ err error }
)

type model struct {
	cfg  *config.Config
	step step

	cursor    int
	direction run.Direction

	fileInput   textinput.Model
	columns     []string
	column      string
	outputInput textinput.Model
	spin        spinner.Model

	result *run.Result
	err    error
}

var directions = []run.Direction{run.TenToEleven, run.ElevenToTen}

func initialModel(cfg *config.Config) model {
	fi := textinput.New()
	fi.Placeholder = "path/to/medications.csv"
	fi.Width = 60

	oi := textinput.New()
	oi.Placeholder = "press enter for default"
	oi.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return model{
		cfg:         cfg,
		step:        stepDirection,
		fileInput:   fi,
		outputInput: oi,
		spin:        sp,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case columnsMsg:
		m.columns = msg
		m.cursor = 0
		m.step = stepColumn
		return m, nil

	case resultMsg:
		m.result = msg
		m.step = stepDone
		return m, nil

	case errMsg:
		m.err = msg.err
		if m.step == stepRunning {
			m.step = stepDone
			return m, nil
		}
		// A bad file path keeps the user on the file prompt.
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	switch m.step {
	case stepDirection:
		return m.updateDirection(msg)
	case stepFile:
		return m.updateFile(msg)
	case stepColumn:
		return m.updateColumn(msg)
	case stepOutput:
		return m.updateOutput(msg)
	case stepDone:
		return m, tea.Quit
	}

	return m, nil
}

func (m model) updateDirection(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(directions)-1 {
			m.cursor++
		}
	case "enter":
		m.direction = directions[m.cursor]
		m.step = stepFile
		m.err = nil
		return m, m.fileInput.Focus()
	}
	return m, nil
}

func (m model) updateFile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.step = stepDirection
		m.cursor = 0
		m.err = nil
		m.fileInput.Blur()
		return m, nil
	case tea.KeyEnter:
		path := strings.TrimSpace(m.fileInput.Value())
		if path == "" {
			return m, nil
		}
		m.err = nil
		return m, loadColumns(path)
	}

	var cmd tea.Cmd
	m.fileInput, cmd = m.fileInput.Update(msg)
	return m, cmd
}

func (m model) updateColumn(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.step = stepFile
		m.err = nil
		return m, m.fileInput.Focus()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.columns)-1 {
			m.cursor++
		}
	case "enter":
		m.column = m.columns[m.cursor]
		m.step = stepOutput
		return m, m.outputInput.Focus()
	}
	return m, nil
}

func (m model) updateOutput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.step = stepColumn
		m.outputInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.step = stepRunning
		return m, tea.Batch(m.spin.Tick, m.runConversion())
	}

	var cmd tea.Cmd
	m.outputInput, cmd = m.outputInput.Update(msg)
	return m, cmd
}

// loadColumns reads the file header so the user can pick a column by
// number, the way the tool always has.
func loadColumns(path string) tea.Cmd {
	return func() tea.Msg {
		cols, err := run.Columns(path)
		if err != nil {
			return errMsg{err: err}
		}
		if len(cols) == 0 {
			return errMsg{err: fmt.Errorf("no columns found in %s", path)}
		}
		return columnsMsg(cols)
	}
}

func (m model) runConversion() tea.Cmd {
	input := strings.TrimSpace(m.fileInput.Value())
	output := strings.TrimSpace(m.outputInput.Value())

	req := run.Request{
		InputPath:    input,
		Column:       m.column,
		Direction:    m.direction,
		OutputPath:   output,
		OutputSuffix: m.cfg.Convert.OutputSuffix,
		SampleSize:   m.cfg.Convert.SampleSize,
		MaxFileSize:  m.cfg.Convert.MaxFileSize,
	}

	return func() tea.Msg {
		res, err := run.Run(context.Background(), req)
		if err != nil {
			return errMsg{err: err}
		}
		return resultMsg(res)
	}
}

// Run starts the interactive session and blocks until it finishes.
func Run(cfg *config.Config) error {
	final, err := tea.NewProgram(initialModel(cfg)).Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.result == nil && m.err != nil {
		return m.err
	}
	return nil
}
