package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	esc       key.Binding
	tab       key.Binding
	backtab   key.Binding
	quit      key.Binding
	forceQuit key.Binding
	next      key.Binding
	previous  key.Binding
	tableNext key.Binding
	tablePrev key.Binding
	reload    key.Binding
	copy      key.Binding
	buildInfo key.Binding
	tableInfo key.Binding
}

var keys = keyMap{
	up:        key.NewBinding(key.WithKeys("up")),
	down:      key.NewBinding(key.WithKeys("down")),
	enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "set url")),
	esc:       key.NewBinding(key.WithKeys("esc")),
	tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	backtab:   key.NewBinding(key.WithKeys("shift+tab")),
	quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	forceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	next:      key.NewBinding(key.WithKeys("pgdown", "ctrl+n"), key.WithHelp("pgdn", "next")),
	previous:  key.NewBinding(key.WithKeys("pgup", "ctrl+p"), key.WithHelp("pgup", "previous")),
	tableNext: key.NewBinding(key.WithKeys("right", "n"), key.WithHelp("→/n", "next")),
	tablePrev: key.NewBinding(key.WithKeys("left", "p"), key.WithHelp("←/p", "previous")),
	reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	copy:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy email")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "about")),
	tableInfo: key.NewBinding(key.WithKeys("v")),
}

func helpLine(bindings ...key.Binding) string {
	out := ""
	for i, b := range bindings {
		if i > 0 {
			out += "  "
		}
		h := b.Help()
		out += h.Key + " " + h.Desc
	}
	return out
}
