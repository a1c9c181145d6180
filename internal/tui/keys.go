package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	left        key.Binding
	right       key.Binding
	extendLeft  key.Binding
	extendRight key.Binding
	home        key.Binding
	end         key.Binding
	selectAll   key.Binding
	backspace   key.Binding
	deleteNext  key.Binding
	newline     key.Binding
	next        key.Binding
	prev        key.Binding
	copy        key.Binding
	paste       key.Binding
	submit      key.Binding
	info        key.Binding
	esc         key.Binding
	quit        key.Binding
	yes         key.Binding
	no          key.Binding
}

var keys = keyMap{
	left:        key.NewBinding(key.WithKeys("left")),
	right:       key.NewBinding(key.WithKeys("right")),
	extendLeft:  key.NewBinding(key.WithKeys("shift+left")),
	extendRight: key.NewBinding(key.WithKeys("shift+right")),
	home:        key.NewBinding(key.WithKeys("home", "ctrl+home")),
	end:         key.NewBinding(key.WithKeys("end", "ctrl+end")),
	selectAll:   key.NewBinding(key.WithKeys("ctrl+a")),
	backspace:   key.NewBinding(key.WithKeys("backspace")),
	deleteNext:  key.NewBinding(key.WithKeys("delete")),
	newline:     key.NewBinding(key.WithKeys("enter")),
	next:        key.NewBinding(key.WithKeys("tab")),
	prev:        key.NewBinding(key.WithKeys("shift+tab")),
	copy:        key.NewBinding(key.WithKeys("ctrl+y")),
	paste:       key.NewBinding(key.WithKeys("ctrl+v")),
	submit:      key.NewBinding(key.WithKeys("ctrl+s")),
	info:        key.NewBinding(key.WithKeys("ctrl+b")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	quit:        key.NewBinding(key.WithKeys("ctrl+c")),
	yes:         key.NewBinding(key.WithKeys("y")),
	no:          key.NewBinding(key.WithKeys("n", "esc")),
}
