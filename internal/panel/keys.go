package panel

import "github.com/charmbracelet/bubbles/key"

// panelKeyMap defines key bindings for the instrument panel.
type panelKeyMap struct {
	StepUp     key.Binding
	StepDown   key.Binding
	Tune       key.Binding
	MuteToggle key.Binding
	MonoToggle key.Binding
	Refresh    key.Binding
	Reload     key.Binding
	Preset     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k panelKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StepUp, k.StepDown, k.Tune, k.MuteToggle, k.Quit, k.Help}
}

// FullHelp returns keybindings for the expanded help view.
func (k panelKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.StepUp, k.StepDown, k.Tune, k.Preset},
		{k.MuteToggle, k.MonoToggle, k.Refresh, k.Reload},
		{k.Help, k.Quit},
	}
}

func newPanelKeyMap() panelKeyMap {
	return panelKeyMap{
		StepUp: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/+", "step up"),
		),
		StepDown: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/-", "step down"),
		),
		Tune: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "tune"),
		),
		MuteToggle: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute/unmute"),
		),
		MonoToggle: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "force mono"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Reload: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "reload presets"),
		),
		Preset: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "preset"),
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
}
