package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zephyrtronium/deskcalc/internal/keypad"
	"github.com/zephyrtronium/deskcalc/internal/logging"
	"github.com/zephyrtronium/deskcalc/internal/session"
)

type screen int

const (
	screenCalc screen = iota
	screenHistory
)

type model struct {
	theme Theme
	deps  Deps
	keys  keyMap
	help  help.Model

	scr screen

	// row and col select a button in the current layout.
	row, col int
	errMsg   string

	// history is the rendered full history while screenHistory is shown.
	history string
}

// Run starts the interactive calculator and blocks until the user quits.
// Each evaluation happens synchronously inside Update.
func Run(deps Deps) error {
	p := tea.NewProgram(newModel(deps), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Session == nil {
		deps.Session = session.New(session.Options{})
	}
	if deps.Logger == nil {
		deps.Logger = logging.NewNop()
	}
	t := DefaultTheme()
	if deps.Theme != nil {
		t = *deps.Theme
	}
	return model{
		theme: t,
		deps:  deps,
		keys:  defaultKeys(),
		help:  help.New(),
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		if m.scr == screenHistory {
			if key.Matches(msg, m.keys.Back, m.keys.History) {
				m.scr = screenCalc
				m.history = ""
			}
			return m, nil
		}
		return m.handleCalcKey(msg), nil
	}
	return m, nil
}

func (m model) handleCalcKey(msg tea.KeyMsg) model {
	rows := keypad.Layout(m.deps.Session.Scientific())
	switch {
	case key.Matches(msg, m.keys.Up):
		m.row = max(m.row-1, 0)
	case key.Matches(msg, m.keys.Down):
		m.row = min(m.row+1, len(rows)-1)
	case key.Matches(msg, m.keys.Left):
		m.col = max(m.col-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.col++
	case key.Matches(msg, m.keys.Press):
		return m.clampCursor().press(rows[m.row][min(m.col, len(rows[m.row])-1)])
	case key.Matches(msg, m.keys.Eval):
		return m.press(keypad.Equals)
	case key.Matches(msg, m.keys.Mode):
		return m.press(keypad.Mode)
	case key.Matches(msg, m.keys.History):
		return m.press(keypad.Hist)
	default:
		k := msg.String()
		if b, ok := keypad.FromKey(k); ok {
			return m.press(b)
		}
		if keypad.Typable(k) {
			m.deps.Session.Type(k)
			m.errMsg = ""
		}
	}
	return m.clampCursor()
}

// press applies a button through the session and updates what is shown.
func (m model) press(b keypad.Button) model {
	o := m.deps.Session.Press(b)
	switch o.Action {
	case keypad.Evaluate:
		m.errMsg = o.Message
	case keypad.ToggleMode:
		m = m.clampCursor()
	case keypad.ShowHistory:
		m.scr = screenHistory
		m.history = m.renderHistory()
	default:
		m.errMsg = ""
	}
	return m
}

func (m model) clampCursor() model {
	rows := keypad.Layout(m.deps.Session.Scientific())
	m.row = min(max(m.row, 0), len(rows)-1)
	m.col = min(max(m.col, 0), len(rows[m.row])-1)
	return m
}

func (m model) renderHistory() string {
	md := HistoryMarkdown(m.deps.Session.History())
	if m.deps.Render == nil {
		return md
	}
	out, err := m.deps.Render(md)
	if err != nil {
		m.deps.Logger.Warn("tui.render_history", "error", err)
		return md
	}
	return out
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	mode := "basic"
	if m.deps.Session.Scientific() {
		mode = "scientific"
	}
	header := m.theme.Title.Render("deskcalc") + "  " + m.theme.Subtitle.Render(mode) + "\n"

	if m.scr == screenHistory {
		return wrap.Render(header + "\n" + m.history + "\n" + m.theme.Help.Render("esc back • ctrl+c quit"))
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(m.theme.Display.Render(m.deps.Session.Display()))
	b.WriteByte('\n')
	if m.errMsg != "" {
		b.WriteString(m.theme.Error.Render(m.errMsg))
	}
	b.WriteString("\n\n")
	b.WriteString(m.viewGrid())
	b.WriteString("\n\n")
	b.WriteString(m.viewRecent())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return wrap.Render(b.String())
}

func (m model) viewGrid() string {
	rows := keypad.Layout(m.deps.Session.Scientific())
	lines := make([]string, len(rows))
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, btn := range row {
			style := m.theme.Button
			if i == m.row && j == m.col {
				style = m.theme.Selected
			}
			cells[j] = style.Render(string(btn))
		}
		lines[i] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return strings.Join(lines, "\n")
}

func (m model) viewRecent() string {
	recent := m.deps.Session.Recent()
	if len(recent) == 0 {
		return m.theme.Card.Render(m.theme.Help.Render("No calculations yet."))
	}
	lines := make([]string, len(recent))
	for i, e := range recent {
		lines[i] = e.String()
	}
	title := m.theme.Subtitle.Render(fmt.Sprintf("last %d", len(recent)))
	return m.theme.Card.Render(title + "\n" + strings.Join(lines, "\n"))
}
