package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Nomadcxx/titlesink/internal/parser"
	"github.com/Nomadcxx/titlesink/internal/reporter"
)

// Model is the interactive parse preview: a single input line whose parse
// result re-renders on every keystroke.
type Model struct {
	parser    *parser.Parser
	input     textinput.Model
	result    parser.Result
	titleCase bool
	hasInput  bool
	width     int
}

// NewModel creates the interactive TUI model
func NewModel(p *parser.Parser, titleCase bool) Model {
	ti := textinput.New()
	ti.Placeholder = "Paste a release name..."
	ti.CharLimit = 300
	ti.Width = 70
	ti.Focus()

	return Model{
		parser:    p,
		input:     ti,
		titleCase: titleCase,
	}
}

// Result returns the most recent parse result
func (m Model) Result() parser.Result {
	return m.result
}

// Init initializes the TUI
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	value := strings.TrimSpace(m.input.Value())
	m.hasInput = value != ""
	if m.hasInput {
		m.result = m.parser.Parse(value)
	}

	return m, cmd
}

// View renders the TUI
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(HeaderStyle.Render("titlesink") + "\n\n")
	b.WriteString(m.input.View() + "\n\n")

	if m.hasInput {
		b.WriteString(PaneStyle.Render(m.renderResult()) + "\n\n")
	} else {
		b.WriteString(MutedStyle.Render("Waiting for input...") + "\n\n")
	}

	b.WriteString(FooterStyle.Render(FormatKeybinding("esc", "quit")))

	return b.String()
}

// renderResult renders the current parse result
func (m Model) renderResult() string {
	var b strings.Builder

	title := m.result.Title
	if m.titleCase {
		title = reporter.DisplayTitle(title)
	}
	if title == "" {
		title = MutedStyle.Render("(empty)")
	} else {
		title = TitleStyle.Render(title)
	}
	b.WriteString(FieldStyle.Render("title") + "  " + title)

	for _, field := range reporter.FieldNames(m.result.Fields) {
		value := fmt.Sprintf("%v", m.result.Fields[field])
		b.WriteString("\n" + FieldStyle.Render(field) + "  " + ValueStyle.Render(value))
	}

	return b.String()
}

// Run starts the interactive TUI
func Run(p *parser.Parser, titleCase bool) error {
	program := tea.NewProgram(NewModel(p, titleCase))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
