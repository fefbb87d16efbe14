// ============================================================================
// limonaca - Limonaca language front end
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model of the interactive parser
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package repl

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/limonaca/foundation/limonaca"
	"github.com/msto63/limonaca/internal/render"
	"github.com/msto63/limonaca/pkg/core/version"
)

// Defaults
const (
	DefaultPrompt       = "limonaca> "
	DefaultHistoryLimit = 200
)

// Config holds REPL configuration
type Config struct {
	Engine       *limonaca.Engine
	Prompt       string
	HistoryLimit int
	Style        render.Style
}

// Model is the main Bubbletea model of the REPL
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// History
	history      []Entry
	historyLimit int
	recall       []string // Previous inputs, oldest first
	recallIndex  int      // len(recall) when not recalling

	// Counters
	parsed int
	failed int

	// Configuration
	engine *limonaca.Engine
	prompt string
	style  render.Style
}

// New creates a new REPL model
func New(cfg Config) Model {
	if cfg.Engine == nil {
		cfg.Engine = limonaca.New(limonaca.Options{})
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.HistoryLimit <= 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}

	ti := textinput.New()
	ti.Prompt = cfg.Prompt
	ti.Placeholder = "devprint (1 + 2) * x;"
	ti.Focus()

	return Model{
		input:        ti,
		historyLimit: cfg.HistoryLimit,
		engine:       cfg.Engine,
		prompt:       cfg.Prompt,
		style:        cfg.Style,
	}
}

// Run starts the REPL in the alternate screen
func Run(cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithAltScreen()).Run()
	return err
}

// History returns the evaluated entries, oldest first
func (m Model) History() []Entry {
	return m.history
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, next, cmd := m.handleKeyPress(msg); handled {
			return next, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 4 // Title panel
		footerHeight := 4 // Input, status bar and help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - len(m.prompt) - 4
		m.updateViewportContent()

	case parsedMsg:
		m.history = append(m.history, msg.entry)
		if over := len(m.history) - m.historyLimit; over > 0 {
			m.history = m.history[over:]
		}
		if msg.entry.Failed {
			m.failed++
		} else {
			m.parsed++
		}
		m.updateViewportContent()
		m.viewport.GotoBottom()

	case clearMsg:
		m.history = nil
		m.updateViewportContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keys the REPL owns; all others go to the input
func (m Model) handleKeyPress(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return true, m, tea.Quit

	case tea.KeyCtrlL:
		return true, m, func() tea.Msg { return clearMsg{} }

	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		if line == "" {
			return true, m, nil
		}
		m.input.Reset()
		m.recall = append(m.recall, line)
		m.recallIndex = len(m.recall)
		return true, m, m.evaluate(line)

	case tea.KeyUp:
		if m.recallIndex > 0 {
			m.recallIndex--
			m.input.SetValue(m.recall[m.recallIndex])
			m.input.CursorEnd()
		}
		return true, m, nil

	case tea.KeyDown:
		if m.recallIndex < len(m.recall)-1 {
			m.recallIndex++
			m.input.SetValue(m.recall[m.recallIndex])
			m.input.CursorEnd()
		} else {
			m.recallIndex = len(m.recall)
			m.input.Reset()
		}
		return true, m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return true, m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return true, m, nil
	}

	return false, m, nil
}

// evaluate parses line as one statement
func (m Model) evaluate(line string) tea.Cmd {
	engine := m.engine
	style := m.style

	return func() tea.Msg {
		var out bytes.Buffer
		entry := Entry{Input: line}

		result, err := engine.Parse(line)
		if err != nil {
			_ = render.Error(&out, err, line, style)
			entry.Failed = true
		} else {
			_ = render.Tree(&out, result.Statements, style)
		}

		entry.Output = strings.TrimRight(out.String(), "\n")
		return parsedMsg{entry: entry}
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Starting REPL..."
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	b.WriteString(HistoryPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")

	b.WriteString(m.input.View())
	b.WriteString("\n")

	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")

	b.WriteString(m.renderHelpBar())

	return b.String()
}

func (m Model) renderHeader() string {
	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		strings.Repeat(" ", 3),
		SubHeaderStyle.Render("v"+version.Version+" - one statement per line"),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

func (m Model) renderStatusBar() string {
	ok := StatusOKStyle.Render(fmt.Sprintf("%d parsed", m.parsed))
	bad := StatusErrorStyle.Render(fmt.Sprintf("%d errors", m.failed))
	kept := HelpDescStyle.Render(fmt.Sprintf("history %d/%d", len(m.history), m.historyLimit))
	return StatusBarStyle.Width(m.width - 2).Render(ok + "  " + bad + "  " + kept)
}

func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("Enter", "Parse"),
		RenderKeyHint("Up/Down", "Recall"),
		RenderKeyHint("PgUp/PgDn", "Scroll"),
		RenderKeyHint("Ctrl+L", "Clear"),
		RenderKeyHint("Esc", "Quit"),
	}
	return strings.Join(items, "  ")
}

// updateViewportContent renders the history into the viewport
func (m *Model) updateViewportContent() {
	var content strings.Builder

	for _, e := range m.history {
		content.WriteString(PromptStyle.Render(m.prompt))
		content.WriteString(InputEchoStyle.Render(e.Input))
		content.WriteString("\n")
		if e.Output != "" {
			content.WriteString(e.Output)
			content.WriteString("\n")
		}
	}

	m.viewport.SetContent(content.String())
}
