package surface

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	LoadMore key.Binding
	Filter   key.Binding
	Bigger   key.Binding
	Smaller  key.Binding
	Top      key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		LoadMore: key.NewBinding(key.WithKeys("m", "enter"), key.WithHelp("m", "load more")),
		Filter:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Bigger:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+/-", "page size")),
		Smaller:  key.NewBinding(key.WithKeys("-", "_")),
		Top:      key.NewBinding(key.WithKeys("t", "home"), key.WithHelp("t", "top")),
		Quit:     key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LoadMore, k.Filter, k.Bigger, k.Top, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
