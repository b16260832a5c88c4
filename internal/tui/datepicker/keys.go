package datepicker

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the picker's key bindings.
type KeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Years  key.Binding
	Today  key.Binding
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Choose key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev:   key.NewBinding(key.WithKeys("[", "<", "pgup"), key.WithHelp("[", "prev month")),
		Next:   key.NewBinding(key.WithKeys("]", ">", "pgdown"), key.WithHelp("]", "next month")),
		Years:  key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "years")),
		Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "pick")),
		Close:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Years, k.Today, k.Choose}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Years, k.Today},
		{k.Up, k.Down, k.Left, k.Right, k.Choose, k.Close},
	}
}
