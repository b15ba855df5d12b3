package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	toggle     key.Binding
	genres     key.Binding
	years      key.Binding
	favourites key.Binding
	clear      key.Binding
	clearAll   key.Binding
	back       key.Binding
	quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "artist")),
		toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "favourite")),
		genres:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "genres")),
		years:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "year")),
		favourites: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "favourites")),
		clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filter")),
		clearAll:   key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
		back:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter, k.toggle},
		{k.genres, k.years, k.favourites},
		{k.clear, k.clearAll, k.back, k.quit},
	}
}
