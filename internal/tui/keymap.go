package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PlayStop    key.Binding
	Reverse     key.Binding
	NextMode    key.Binding
	PrevMode    key.Binding
	ScrubLeft   key.Binding
	ScrubRight  key.Binding
	IconsOnly   key.Binding
	ReloadIcons key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		PlayStop: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play/stop"),
		),
		Reverse: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reverse"),
		),
		NextMode: key.NewBinding(
			key.WithKeys("m", "tab"),
			key.WithHelp("m", "next mode"),
		),
		PrevMode: key.NewBinding(
			key.WithKeys("M", "shift+tab"),
			key.WithHelp("M", "prev mode"),
		),
		ScrubLeft: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "scrub back"),
		),
		ScrubRight: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "scrub forward"),
		),
		IconsOnly: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "icons only"),
		),
		ReloadIcons: key.NewBinding(
			key.WithKeys("I"),
			key.WithHelp("I", "reload icons"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PlayStop, k.Reverse, k.NextMode, k.IconsOnly, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PlayStop, k.Reverse, k.ScrubLeft, k.ScrubRight},
		{k.NextMode, k.PrevMode, k.IconsOnly, k.ReloadIcons, k.Quit},
	}
}
