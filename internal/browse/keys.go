package browse

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Reset  key.Binding
	Next   key.Binding
	Prev   key.Binding
	Limit  key.Binding
	Up     key.Binding
	Down   key.Binding
	Expand key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Reset:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "reset search")),
		Next:   key.NewBinding(key.WithKeys("ctrl+n", "pgdown"), key.WithHelp("ctrl+n", "next page")),
		Prev:   key.NewBinding(key.WithKeys("ctrl+p", "pgup"), key.WithHelp("ctrl+p", "prev page")),
		Limit:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "page size")),
		Up:     key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:   key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
		Expand: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "specialties")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Reset, k.Prev, k.Next, k.Limit, k.Expand, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp(), {k.Up, k.Down}}
}
