package sell

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the sell screen.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Filter   key.Binding
	Add      key.Binding
	Cart     key.Binding
	Remove   key.Binding
	Customer key.Binding
	Checkout key.Binding
	Clear    key.Binding
	Reload   key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap is the default set of keybindings.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Top: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("gg", "jump to top"),
	),
	Bottom: key.NewBinding(
		key.WithKeys("G"),
		key.WithHelp("G", "jump to bottom"),
	),
	Filter: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "filter catalog"),
	),
	Add: key.NewBinding(
		key.WithKeys("enter", "a"),
		key.WithHelp("enter/a", "add to cart"),
	),
	Cart: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch catalog/cart"),
	),
	Remove: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "remove cart line"),
	),
	Customer: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "choose customer"),
	),
	Checkout: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "checkout"),
	),
	Clear: key.NewBinding(
		key.WithKeys("X"),
		key.WithHelp("X", "clear cart"),
	),
	Reload: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reload products"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ShortHelp returns keybindings to be shown in the compact help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Checkout, k.Filter, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},
		{k.Filter, k.Add, k.Cart, k.Remove},
		{k.Customer, k.Checkout, k.Clear, k.Reload},
		{k.Help, k.Quit},
	}
}
