package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the application keymap. Keys the focused scroll control handles
// never reach it.
type KeyMap struct {
	Quit        key.Binding
	ForceQuit   key.Binding
	FocusNext   key.Binding
	FocusThumb  key.Binding
	GotoOffset  key.Binding
	GotoPercent key.Binding
	Top         key.Binding
	Bottom      key.Binding
	Remeasure   key.Binding
	Help        key.Binding
}

// DefaultKeyMap returns the keymap; vertical picks "line" over "column"
// wording for the goto prompt.
func DefaultKeyMap(vertical bool) KeyMap {
	unit := "column"
	if vertical {
		unit = "line"
	}
	return KeyMap{
		Quit:        key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:   key.NewBinding(key.WithKeys("ctrl+c")),
		FocusNext:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
		FocusThumb:  key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "focus thumb")),
		GotoOffset:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "goto "+unit)),
		GotoPercent: key.NewBinding(key.WithKeys("%"), key.WithHelp("%", "goto percent")),
		Top:         key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "start")),
		Bottom:      key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "end")),
		Remeasure:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "re-measure")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.GotoOffset, k.GotoPercent, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.FocusNext, k.FocusThumb},
		{k.GotoOffset, k.GotoPercent, k.Top, k.Bottom},
		{k.Remeasure, k.Help, k.Quit},
	}
}
