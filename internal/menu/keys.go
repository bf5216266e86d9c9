package menu

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Prev     key.Binding
	Next     key.Binding
	Day      key.Binding
	Category key.Binding
	Clear    key.Binding
	Choose   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev exercise")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next exercise")),
		Day:      key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "filter day")),
		Category: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "filter type")),
		Clear:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		Choose:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Choose, k.Day, k.Category, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Day, k.Category, k.Clear},
		{k.Choose, k.Help, k.Quit},
	}
}
