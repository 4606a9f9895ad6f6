package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/deskcalc/internal/keypad"
	"github.com/zephyrtronium/deskcalc/internal/session"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m model, msgs ...tea.Msg) model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(model)
	}
	return m
}

// typeText sends each rune of s as its own key press.
func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	for _, r := range s {
		m = send(t, m, runes(string(r)))
	}
	return m
}

func testModel(render func(string) (string, error)) (model, *session.Session) {
	s := session.New(session.Options{Recent: 3})
	return newModel(Deps{Session: s, Render: render}), s
}

func TestTypeAndEvaluate(t *testing.T) {
	m, s := testModel(nil)
	m = typeText(t, m, "12+7")
	assert.Equal(t, "12+7", s.Display())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "19", s.Display())
	assert.Empty(t, m.errMsg)
	assert.Contains(t, m.View(), "12+7 = 19")
}

func TestTypeFunctionName(t *testing.T) {
	m, s := testModel(nil)
	m = typeText(t, m, "sqrt16=")
	assert.Equal(t, "4", s.Display())
	m = typeText(t, m, "*")
	m = typeText(t, m, "exp0")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	// "exp0" after "4*" is not a single expression.
	assert.Equal(t, "4*exp0", s.Display())
	assert.Contains(t, m.errMsg, "Invalid operation")
}

func TestErrorKeepsDisplay(t *testing.T) {
	m, s := testModel(nil)
	m = typeText(t, m, "5/0")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "5/0", s.Display())
	assert.Contains(t, m.errMsg, "Math error")
	assert.Contains(t, m.View(), "division by zero")
	assert.Empty(t, s.History())

	// Editing clears the message.
	m = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "5/", s.Display())
	assert.Empty(t, m.errMsg)
}

func TestCursorPress(t *testing.T) {
	m, s := testModel(nil)
	right := tea.KeyMsg{Type: tea.KeyRight}
	down := tea.KeyMsg{Type: tea.KeyDown}
	space := tea.KeyMsg{Type: tea.KeySpace}
	m = send(t, m, right, right, down, space)
	assert.Equal(t, 1, m.row)
	assert.Equal(t, 2, m.col)
	assert.Equal(t, "6", s.Display())

	// Moving past the edge stays on the last button.
	for range 10 {
		m = send(t, m, right)
	}
	assert.Equal(t, len(keypad.Basic[1])-1, m.col)
	m = send(t, m, space)
	assert.Equal(t, "6-", s.Display())

	for range 10 {
		m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, 0, m.row)
}

func TestModeClampsCursor(t *testing.T) {
	m, s := testModel(nil)
	tab := tea.KeyMsg{Type: tea.KeyTab}
	m = send(t, m, tab)
	require.True(t, s.Scientific())
	assert.Contains(t, m.View(), "scientific")
	assert.Contains(t, m.View(), "sin")

	down := tea.KeyMsg{Type: tea.KeyDown}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyRight})
	for range 10 {
		m = send(t, m, down)
	}
	rows := keypad.Layout(true)
	assert.Equal(t, len(rows)-1, m.row)
	assert.Equal(t, len(rows[m.row])-1, m.col)

	m = send(t, m, tab)
	require.False(t, s.Scientific())
	assert.Equal(t, len(keypad.Basic)-1, m.row)
	assert.NotContains(t, m.View(), "sin")
}

func TestHistoryScreen(t *testing.T) {
	var got string
	render := func(md string) (string, error) {
		got = md
		return "RENDERED HISTORY", nil
	}
	m, _ := testModel(render)
	m = typeText(t, m, "2^10")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, screenHistory, m.scr)
	assert.Contains(t, got, "`2^10 = 1024`")
	assert.Contains(t, m.View(), "RENDERED HISTORY")

	// Keys other than back do nothing on the history screen.
	m = typeText(t, m, "1")
	assert.Equal(t, screenHistory, m.scr)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenCalc, m.scr)
	assert.NotContains(t, m.View(), "RENDERED HISTORY")
}

func TestHistoryRenderFallback(t *testing.T) {
	render := func(string) (string, error) { return "", errors.New("no style") }
	m, _ := testModel(render)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, screenHistory, m.scr)
	assert.Contains(t, m.history, "_No calculations yet._")
}

func TestQuit(t *testing.T) {
	m, _ := testModel(nil)
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlD} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
	}
}

func TestRecentPanel(t *testing.T) {
	m, _ := testModel(nil)
	for _, expr := range []string{"1+1", "2+2", "3+3", "4+4"} {
		m = typeText(t, m, expr)
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
		m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	}
	v := m.View()
	assert.NotContains(t, v, "1+1 = 2")
	assert.Contains(t, v, "2+2 = 4")
	assert.Contains(t, v, "4+4 = 8")
	assert.Contains(t, v, "last 3")
	assert.Equal(t, 1, strings.Count(v, "3+3 = 6"))
}
