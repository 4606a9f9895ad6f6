package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Press   key.Binding
	Eval    key.Binding
	Mode    key.Binding
	History key.Binding
	Back    key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑/↓/←/→", "select button")),
		Down:    key.NewBinding(key.WithKeys("down")),
		Left:    key.NewBinding(key.WithKeys("left")),
		Right:   key.NewBinding(key.WithKeys("right")),
		Press:   key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "press button")),
		Eval:    key.NewBinding(key.WithKeys("enter", "="), key.WithHelp("enter", "evaluate")),
		Mode:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "scientific")),
		History: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "history")),
		Back:    key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("esc", "back")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "ctrl+d"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Press, k.Eval, k.Mode, k.History, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Press, k.Eval},
		{k.Mode, k.History, k.Quit},
	}
}
