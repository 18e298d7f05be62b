package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up       key.Binding
	down     key.Binding
	enter    key.Binding
	back     key.Binding
	register key.Binding
	drop     key.Binding
	student  key.Binding
	quit     key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit")),
		back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		register: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "register")),
		drop:     key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "drop")),
		student:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "student")),
		quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.register, k.drop, k.student, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.register, k.drop, k.student},
		{k.back, k.quit},
	}
}
